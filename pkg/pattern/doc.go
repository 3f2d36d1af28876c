// Package pattern expands template strings into random values.
//
// Supported tokens:
//
//	#           one digit 0-9 (the symbol is configurable)
//	!           one digit 2-9
//	?           one uppercase letter A-Z
//	*           one digit or one uppercase letter
//	[min-max]   a decimal integer in the inclusive range
//	x{n}        the preceding character repeated n times
//	x{min,max}  the preceding character repeated min..max times
//	L           Luhn check digit (credit card patterns only)
//
// Each function scans its input once from left to right; text produced by a
// substitution is never scanned again by the same pass.
//
//	pattern.ReplaceSymbolWithNumber(r, "!##-####", 0)          // "482-0917"
//	pattern.RegexpStyleStringParse(r, "#{3}-[1-5]")            // "###-4"
//	pattern.ReplaceCreditCardSymbols(r, "4###-####-####-###L", 0)
//
// All functions draw through Source, which random.Random satisfies.
package pattern
