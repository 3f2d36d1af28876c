// Package mustache fills {{name}} placeholders from a map of literals and
// resolver functions.
//
// Rendering is a single left-to-right pass. Substituted text is never
// scanned again, so a value containing "{{...}}" comes out verbatim.
// Resolution never fails as a whole: a token whose name is missing, whose
// value has an unsupported type, or whose resolver returns an error or panics
// is left in the output exactly as written.
package mustache

import (
	"fmt"
	"strings"
)

const (
	openDelim  = "{{"
	closeDelim = "}}"
)

// Data maps placeholder names to values. Supported value types:
//
//	string
//	fmt.Stringer
//	func() string
//	func() (string, error)
//	func(token string) string   // token is the full "{{name}}" text
type Data map[string]any

// Render replaces every {{name}} in template with its resolved value.
// Whitespace around the name is ignored, so "{{ name }}" matches "name".
func Render(template string, data Data) string {
	if !strings.Contains(template, openDelim) {
		return template
	}

	var b strings.Builder
	b.Grow(len(template))

	rest := template
	for {
		start := strings.Index(rest, openDelim)
		if start < 0 {
			b.WriteString(rest)
			break
		}
		end := strings.Index(rest[start+len(openDelim):], closeDelim)
		if end < 0 {
			b.WriteString(rest)
			break
		}
		end += start + len(openDelim)
		// Innermost opener wins; a stray "{{" before it stays literal.
		start = strings.LastIndex(rest[:end], openDelim)

		b.WriteString(rest[:start])
		token := rest[start : end+len(closeDelim)]
		name := strings.TrimSpace(rest[start+len(openDelim) : end])

		if v, ok := resolve(data, name, token); ok {
			b.WriteString(v)
		} else {
			b.WriteString(token)
		}
		rest = rest[end+len(closeDelim):]
	}

	return b.String()
}

// resolve looks up and evaluates a single token.
func resolve(data Data, name, token string) (out string, ok bool) {
	value, found := data[name]
	if !found || name == "" {
		return "", false
	}

	defer func() {
		if r := recover(); r != nil {
			out, ok = "", false
		}
	}()

	switch v := value.(type) {
	case string:
		return v, true
	case func() string:
		return v(), true
	case func() (string, error):
		s, err := v()
		if err != nil {
			return "", false
		}
		return s, true
	case func(string) string:
		return v(token), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}
