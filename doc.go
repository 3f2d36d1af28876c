// Package faker generates realistic fake data (names, addresses, lorem text,
// e-mail addresses, credit card numbers and so on) from locale tables.
//
// Every value is drawn from a seedable Mersenne Twister, so a Faker seeded
// with the same value replays the same sequence of results:
//
//	f, err := faker.New(faker.WithLocale("de"), faker.WithSeed(42))
//	if err != nil {
//		return err
//	}
//	fmt.Println(f.Name.FullName())
//	fmt.Println(f.Fake("{{name.lastName}}, {{address.city}}"))
//
// Generators are grouped in modules exposed as fields: Helpers, Datatype,
// Name, Address, Lorem, Internet, Database, Finance, Phone, Company and Time.
// The same generators are reachable by name through Call and inside Fake
// templates, e.g. "address.cityPrefix". Helpers also composes them into
// records such as Transaction and UserCard.
//
// Time reads the clock given to WithClock and never draws, so it is the one
// module a seed does not make reproducible.
//
// # Locales
//
// Locale data comes from a locale.Registry. Keys missing from the selected
// locale are looked up in its base language and then in the fallback locale
// (English unless WithFallback says otherwise).
//
// # Concurrency
//
// A Faker is not safe for concurrent use. Give each goroutine its own
// instance, or share one draw sequence through WithRandom and a
// random.Synchronized engine. Default returns a lazily built package-level
// instance for quick scripts.
package faker
