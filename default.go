package faker

import "sync"

var defaultFaker = sync.OnceValue(func() *Faker {
	f, err := New()
	if err != nil {
		// Only a broken embedded locale can get here.
		panic(err)
	}
	return f
})

// Default returns a shared English Faker, created on first use with an
// entropy seed. It is not safe for concurrent use.
func Default() *Faker {
	return defaultFaker()
}
