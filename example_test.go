package faker_test

import (
	"fmt"

	"github.com/mshima/faker"
)

func ExampleFaker_Fake() {
	f, err := faker.New(faker.WithSeed(1))
	if err != nil {
		panic(err)
	}

	fmt.Println(f.Fake("{{unknown.token}} stays as written"))
	// Output: {{unknown.token}} stays as written
}

func ExampleFaker_Seed() {
	f, err := faker.New()
	if err != nil {
		panic(err)
	}

	f.Seed(2024)
	first := f.Name.FullName()
	f.Seed(2024)
	fmt.Println(first == f.Name.FullName())
	// Output: true
}
