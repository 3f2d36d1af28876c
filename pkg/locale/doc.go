// Package locale holds the data tables generators pick from: names, cities,
// lorem words, formats and so on, grouped per locale.
//
// Tables are plain YAML documents. Each top-level key other than "title" is a
// module, each module maps keys to lists of strings:
//
//	title: English
//	name:
//	  first_name: [Ada, Grace]
//	  name: ["{{name.firstName}} {{name.lastName}}"]
//
// The English ("en") and German ("de") tables are embedded in the binary.
// Additional locales can be registered at run time with Register or
// RegisterYAML.
//
// # Locale codes
//
// Codes are BCP 47 tags written with underscores: "en", "en_US", "de_AT".
// Normalize accepts either separator and any letter case.
//
// # Fallback
//
// Resolve merges a chain of locales into one Definitions value. For
// "de_AT" with fallback "en" the chain is de_AT, de, en: every key is taken
// from the first locale in the chain that defines it, so a partial locale
// borrows whatever it lacks.
package locale
