package faker

import (
	"strings"
	"unicode"

	"github.com/mshima/faker/pkg/mustache"
	"github.com/mshima/faker/pkg/pattern"
	"github.com/mshima/faker/pkg/random"
	"github.com/mshima/faker/pkg/unique"
)

// Helpers exposes the pattern and collection primitives the other modules
// are built on.
type Helpers struct {
	f *Faker
}

// Slugify replaces spaces with hyphens and drops every character other than
// ASCII word characters, '.', '-' and Japanese script.
//
//	Slugify("Hello world!") // "Hello-world"
func (h *Helpers) Slugify(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == ' ':
			return '-'
		case r == '.', r == '-', r == '_', r == 'ー':
			return r
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			return r
		case unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana):
			return r
		default:
			return -1
		}
	}, s)
}

// ReplaceSymbolWithNumber replaces symbol with digits 0-9 and '!' with digits
// 2-9. A zero symbol means '#'.
func (h *Helpers) ReplaceSymbolWithNumber(s string, symbol rune) string {
	return pattern.ReplaceSymbolWithNumber(h.f.rand, s, symbol)
}

// ReplaceSymbols replaces '#' with a digit, '?' with a letter and '*' with
// either.
func (h *Helpers) ReplaceSymbols(s string) string {
	return pattern.ReplaceSymbols(h.f.rand, s)
}

// ReplaceCreditCardSymbols fills a card pattern and appends the Luhn digit
// at 'L'.
func (h *Helpers) ReplaceCreditCardSymbols(s string, symbol rune) string {
	return pattern.ReplaceCreditCardSymbols(h.f.rand, s, symbol)
}

// RepeatString returns s repeated n times.
func (h *Helpers) RepeatString(s string, n int) (string, error) {
	return pattern.RepeatString(s, n)
}

// RegexpStyleStringParse expands x{n}, x{min,max} and [min-max] tokens.
func (h *Helpers) RegexpStyleStringParse(s string) string {
	return pattern.RegexpStyleStringParse(h.f.rand, s)
}

// Shuffle permutes s in place and returns it.
func (h *Helpers) Shuffle(s []string) []string {
	return random.Shuffle(h.f.rand, s)
}

// ArrayElement returns a random element of s, or "" for an empty slice.
func (h *Helpers) ArrayElement(s []string) string {
	return random.Element(h.f.rand, s)
}

// ArrayElements returns n distinct positions of s in random order.
func (h *Helpers) ArrayElements(s []string, n int) []string {
	return random.Elements(h.f.rand, s, n)
}

// UniqueArray returns up to n distinct values of source in random order.
func (h *Helpers) UniqueArray(source []string, n int) []string {
	seen := make(map[string]struct{}, len(source))
	distinct := make([]string, 0, len(source))
	for _, v := range source {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		distinct = append(distinct, v)
	}
	return random.Elements(h.f.rand, distinct, n)
}

// UniqueArrayFunc calls fn until it has n distinct values. When the
// generator keeps repeating itself, the values collected so far are returned
// with the *unique.ExhaustedError that stopped the search.
func (h *Helpers) UniqueArrayFunc(fn func() string, n int) ([]string, error) {
	t := unique.New[string]()
	out := make([]string, 0, max(n, 0))
	for len(out) < n {
		v, err := t.Generate(fn, nil)
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Mustache fills {{name}} placeholders in s from data.
func (h *Helpers) Mustache(s string, data mustache.Data) string {
	return mustache.Render(s, data)
}
