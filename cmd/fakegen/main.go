// Command fakegen prints fake records generated by the faker module.
//
//	fakegen -locale de -seed 42 -n 3 name.fullName address.city
//	fakegen -format json -template "{{name.firstName}}@example.com" -n 5
//	fakegen -format yaml -record userCard -n 2
//	fakegen -list
//
// Defaults come from the FAKER_* environment variables (and a .env file in
// the working directory); flags override them.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mshima/faker"
)

func main() {
	cfg, err := faker.LoadConfig()
	if err != nil {
		exitf("load config: %v", err)
	}
	opts, err := parseFlags(flag.CommandLine, os.Args[1:], cfg)
	if err != nil {
		exitf("parse flags: %v", err)
	}
	if err := run(opts, os.Stdout, os.Stderr); err != nil {
		exitf("%v", err)
	}
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "fakegen: "+format+"\n", args...)
	os.Exit(1)
}
