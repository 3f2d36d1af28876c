// Package unique wraps a generator with retry-until-unique semantics.
//
// A Tracker remembers every value it has returned. Generate calls the
// generator until it produces a value that is neither in the tracker's store
// nor in the per-call exclusion list, then records and returns it. The loop is
// bounded by a wall-clock budget (MaxTime) and an attempt budget
// (MaxRetries); whichever runs out first ends the call with an
// *ExhaustedError that matches ErrExhausted.
//
//	names := unique.New[string]()
//	name, err := names.Generate(f.Name.FirstName, nil)
//	if errors.Is(err, unique.ErrExhausted) {
//		// the generator ran out of fresh values
//	}
//
// Uniqueness is scoped to one Tracker. Share the instance to share the
// history. The store only grows; Clear empties it explicitly.
//
// A Tracker is not safe for concurrent use.
package unique
