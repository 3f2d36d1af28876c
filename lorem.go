package faker

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"github.com/mshima/faker/pkg/random"
)

const (
	// DefaultParagraphSeparator joins paragraphs when no separator is given.
	DefaultParagraphSeparator = "\n"
	defaultSentenceSeparator  = " "
)

// Lorem generates placeholder text from the locale's word list.
type Lorem struct {
	f *Faker
}

func (l *Lorem) Word() string { return l.f.pick("lorem", "words") }

// WordOfLength returns a word of exactly n characters, or "" when the locale
// has none.
func (l *Lorem) WordOfLength(n int) string {
	var words []string
	for _, w := range l.f.defs.Values("lorem", "words") {
		if utf8.RuneCountInString(w) == n {
			words = append(words, w)
		}
	}
	return random.Element(l.f.rand, words)
}

// Words returns n words separated by spaces.
func (l *Lorem) Words(n int) string {
	words := make([]string, 0, max(n, 0))
	for range n {
		words = append(words, l.Word())
	}
	return strings.Join(words, " ")
}

// Sentence returns n words, capitalized and ending with a period. For n <= 0
// the length is drawn from [3, 10].
func (l *Lorem) Sentence(n int) string {
	if n <= 0 {
		n = l.f.between(3, 10)
	}
	words := l.Words(n)
	first, rest, _ := strings.Cut(words, " ")
	first = cases.Title(l.f.tag).String(first)
	if rest == "" {
		return first + "."
	}
	return first + " " + rest + "."
}

// Sentences returns n sentences joined by sep. For n <= 0 the count is drawn
// from [2, 6]; an empty sep means a single space.
func (l *Lorem) Sentences(n int, sep string) string {
	if n <= 0 {
		n = l.f.between(2, 6)
	}
	if sep == "" {
		sep = defaultSentenceSeparator
	}
	sentences := make([]string, 0, n)
	for range n {
		sentences = append(sentences, l.Sentence(0))
	}
	return strings.Join(sentences, sep)
}

// Paragraph returns between n and n+3 sentences. For n <= 0, n is 3.
func (l *Lorem) Paragraph(n int) string {
	if n <= 0 {
		n = 3
	}
	return l.Sentences(n+l.f.between(0, 3), " ")
}

// Paragraphs returns n paragraphs joined by sep. For n <= 0, n is 3; an
// empty sep means DefaultParagraphSeparator.
func (l *Lorem) Paragraphs(n int, sep string) string {
	if n <= 0 {
		n = 3
	}
	if sep == "" {
		sep = DefaultParagraphSeparator
	}
	paragraphs := make([]string, 0, n)
	for range n {
		paragraphs = append(paragraphs, l.Paragraph(0))
	}
	return strings.Join(paragraphs, sep)
}

// Slug returns n words joined by hyphens.
func (l *Lorem) Slug(n int) string {
	return l.f.Helpers.Slugify(l.Words(n))
}

// Lines returns n sentences, one per line. For n <= 0 the count is drawn
// from [1, 5].
func (l *Lorem) Lines(n int) string {
	if n <= 0 {
		n = l.f.between(1, 5)
	}
	return l.Sentences(n, "\n")
}

// Text returns the output of a randomly chosen Lorem generator.
func (l *Lorem) Text() string {
	generators := []func() string{
		l.Word,
		func() string { return l.Words(3) },
		func() string { return l.Sentence(0) },
		func() string { return l.Sentences(0, "") },
		func() string { return l.Paragraph(0) },
		func() string { return l.Paragraphs(0, "") },
		func() string { return l.Lines(0) },
	}
	return generators[l.f.rand.IntN(len(generators))]()
}
