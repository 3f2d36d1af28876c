package pattern

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultSymbol is replaced by a digit when no other symbol is requested.
const DefaultSymbol = '#'

const upperAlpha = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// MaxRepeat is the largest count a single x{n} or x{min,max} token, or
// RepeatString, will expand.
const MaxRepeat = 1 << 20

// Source supplies uniform integers in [0, n).
type Source interface {
	IntN(n int) int
}

var (
	rangeRepeatRe = regexp.MustCompile(`(.)\{(\d+),(\d+)\}`)
	repeatRe      = regexp.MustCompile(`(.)\{(\d+)\}`)
	rangeRe       = regexp.MustCompile(`\[(\d+)-(\d+)\]`)
)

// ReplaceSymbolWithNumber replaces every symbol with a digit 0-9 and every
// '!' with a digit 2-9. A zero symbol means DefaultSymbol.
func ReplaceSymbolWithNumber(src Source, s string, symbol rune) string {
	if symbol == 0 {
		symbol = DefaultSymbol
	}
	if !strings.ContainsRune(s, symbol) && !strings.ContainsRune(s, '!') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, c := range s {
		switch c {
		case symbol:
			b.WriteByte(byte('0' + src.IntN(10)))
		case '!':
			b.WriteByte(byte('2' + src.IntN(8)))
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// ReplaceSymbols replaces '#' with a digit, '?' with an uppercase letter and
// '*' with either. '*' takes two draws: one for the kind, one for the value.
func ReplaceSymbols(src Source, s string) string {
	if !strings.ContainsAny(s, "#?*") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, c := range s {
		switch c {
		case '#':
			b.WriteByte(byte('0' + src.IntN(10)))
		case '?':
			b.WriteByte(upperAlpha[src.IntN(len(upperAlpha))])
		case '*':
			if src.IntN(2) == 1 {
				b.WriteByte(upperAlpha[src.IntN(len(upperAlpha))])
			} else {
				b.WriteByte(byte('0' + src.IntN(10)))
			}
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// RepeatString returns s repeated n times.
func RepeatString(s string, n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	if n > MaxRepeat {
		return "", fmt.Errorf("%w: %d > %d", ErrCountTooLarge, n, MaxRepeat)
	}
	return strings.Repeat(s, n), nil
}

// RegexpStyleStringParse expands x{min,max}, then x{n}, then [min-max]
// tokens. Inverted bounds are swapped. Tokens whose numbers overflow int, and
// repeat tokens asking for more than MaxRepeat copies, are left untouched.
func RegexpStyleStringParse(src Source, s string) string {
	if s == "" {
		return s
	}

	s = rangeRepeatRe.ReplaceAllStringFunc(s, func(tok string) string {
		m := rangeRepeatRe.FindStringSubmatch(tok)
		lo, hi, ok := parseBounds(m[2], m[3])
		if !ok || hi > MaxRepeat {
			return tok
		}
		return strings.Repeat(m[1], lo+src.IntN(hi-lo+1))
	})

	s = repeatRe.ReplaceAllStringFunc(s, func(tok string) string {
		m := repeatRe.FindStringSubmatch(tok)
		n, err := strconv.Atoi(m[2])
		if err != nil || n > MaxRepeat {
			return tok
		}
		return strings.Repeat(m[1], n)
	})

	return rangeRe.ReplaceAllStringFunc(s, func(tok string) string {
		m := rangeRe.FindStringSubmatch(tok)
		lo, hi, ok := parseBounds(m[1], m[2])
		if !ok {
			return tok
		}
		return strconv.Itoa(lo + src.IntN(hi-lo+1))
	})
}

// ReplaceCreditCardSymbols expands a card pattern: regexp-style tokens first,
// then symbol digits, then the first 'L' becomes the Luhn check digit of all
// digits to its left.
func ReplaceCreditCardSymbols(src Source, s string, symbol rune) string {
	if s == "" {
		return s
	}

	s = RegexpStyleStringParse(src, s)
	s = ReplaceSymbolWithNumber(src, s, symbol)

	idx := strings.IndexByte(s, 'L')
	if idx < 0 {
		return s
	}
	check := LuhnCheckValue(s[:idx])
	return s[:idx] + strconv.Itoa(check) + s[idx+1:]
}

func parseBounds(a, b string) (lo, hi int, ok bool) {
	lo, err := strconv.Atoi(a)
	if err != nil {
		return 0, 0, false
	}
	hi, err = strconv.Atoi(b)
	if err != nil {
		return 0, 0, false
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	// hi-lo+1 must stay positive for the draw.
	if hi-lo+1 <= 0 {
		return 0, 0, false
	}
	return lo, hi, true
}
