package random

import "sync"

type lockedEngine struct {
	mu   sync.Mutex
	next Engine
}

// Synchronized wraps engine so concurrent callers see strictly ordered draws.
// Determinism across goroutines still depends on the callers' own ordering.
func Synchronized(engine Engine) Engine {
	return &lockedEngine{next: engine}
}

func (l *lockedEngine) Seed(seed uint32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.next.Seed(seed)
}

func (l *lockedEngine) SeedArray(key []uint32) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.next.SeedArray(key)
}

func (l *lockedEngine) Uint32() uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.next.Uint32()
}

func (l *lockedEngine) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.next.Float64()
}
