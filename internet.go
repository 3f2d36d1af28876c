package faker

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

const (
	// DefaultPasswordLength is used by Password for n <= 0.
	DefaultPasswordLength = 15
	// DefaultMacSeparator separates octets in Mac when the separator is not
	// one of ":", "-" or "".
	DefaultMacSeparator = ":"

	avatarBaseURL = "https://cloudflare-ipfs.com/ipfs/Qmd3W5DuhgHirLHGVixi6V76LhCkZUz6pnFt5AJBiyvHye/avatar/"
	maxAvatar     = 1249

	maxPasswordDraws = 1000
)

var (
	wordCharRe  = regexp.MustCompile(`\w`)
	vowelRe     = regexp.MustCompile(`[aeiouAEIOU]$`)
	consonantRe = regexp.MustCompile(`[b-df-hj-np-tv-zB-DF-HJ-NP-TV-Z]$`)
)

// Internet generates network identifiers.
type Internet struct {
	f *Faker
}

// UserName derives a user name from first and last; empty parts are drawn
// from the Name module.
func (i *Internet) UserName(first, last string) string {
	if first == "" {
		first = i.f.Name.FirstName()
	}
	if last == "" {
		last = i.f.Name.LastName()
	}

	var s string
	switch i.f.rand.IntN(3) {
	case 0:
		s = first + strconv.Itoa(i.f.rand.IntN(100))
	case 1:
		s = first + i.separator() + last
	default:
		s = first + i.separator() + last + strconv.Itoa(i.f.rand.IntN(100))
	}
	return strings.NewReplacer("'", "", " ", "").Replace(s)
}

func (i *Internet) separator() string {
	if i.f.rand.Boolean() {
		return "."
	}
	return "_"
}

// Email returns an address at provider, or at one of the locale's free
// e-mail providers when provider is empty.
func (i *Internet) Email(first, last, provider string) string {
	if provider == "" {
		provider = i.f.pick("internet", "free_email")
	}
	return i.f.Helpers.Slugify(i.UserName(first, last)) + "@" + provider
}

// ExampleEmail returns an address at a reserved example domain.
func (i *Internet) ExampleEmail(first, last string) string {
	return i.Email(first, last, i.f.pick("internet", "example_email"))
}

func (i *Internet) Protocol() string { return i.f.pick("internet", "protocol") }

func (i *Internet) HTTPMethod() string { return i.f.pick("internet", "http_method") }

func (i *Internet) URL() string { return i.Protocol() + "://" + i.DomainName() }

func (i *Internet) DomainName() string { return i.DomainWord() + "." + i.DomainSuffix() }

func (i *Internet) DomainSuffix() string { return i.f.pick("internet", "domain_suffix") }

// DomainWord returns a lower-cased first name stripped of punctuation.
func (i *Internet) DomainWord() string {
	word := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`\~#&*{}/:<>?|"'. `, r) {
			return -1
		}
		return r
	}, i.f.Name.FirstName())
	return cases.Lower(i.f.tag).String(word)
}

// IP returns an IPv4 address.
func (i *Internet) IP() string {
	parts := make([]string, 4)
	for n := range parts {
		parts[n] = strconv.Itoa(i.f.rand.IntN(256))
	}
	return strings.Join(parts, ".")
}

// IPv6 returns a full, uncompressed IPv6 address.
func (i *Internet) IPv6() string {
	parts := make([]string, 8)
	for n := range parts {
		parts[n] = strings.TrimPrefix(i.f.Datatype.Hexadecimal(4), "0x")
	}
	return strings.Join(parts, ":")
}

// Port returns a port number in [0, 65535].
func (i *Internet) Port() int {
	return i.f.between(0, 65535)
}

// Mac returns a MAC address with octets joined by sep.
func (i *Internet) Mac(sep string) string {
	switch sep {
	case ":", "-", "":
	default:
		sep = DefaultMacSeparator
	}
	octets := make([]string, 6)
	for n := range octets {
		octets[n] = fmt.Sprintf("%02x", i.f.rand.IntN(256))
	}
	return strings.Join(octets, sep)
}

// Color returns a CSS hex color such as "#3fa2c8". Each channel is the mean
// of a draw from [0, 256] and the matching base channel, so a base of white
// gives pastels and a base of black dark tones.
func (i *Internet) Color(baseRed, baseGreen, baseBlue uint8) string {
	mix := func(base uint8) int {
		return (i.f.between(0, 256) + int(base)) / 2
	}
	return fmt.Sprintf("#%02x%02x%02x", mix(baseRed), mix(baseGreen), mix(baseBlue))
}

// Avatar returns the URL of a portrait image.
func (i *Internet) Avatar() string {
	return avatarBaseURL + strconv.Itoa(i.f.between(0, maxAvatar)) + ".jpg"
}

// Password returns n word characters. For n <= 0 the length is
// DefaultPasswordLength.
func (i *Internet) Password(n int) string {
	s, _ := i.PasswordWith(PasswordOptions{Length: n})
	return s
}

// PasswordOptions shape the output of PasswordWith.
type PasswordOptions struct {
	// Length is the total length including Prefix. DefaultPasswordLength
	// applies when it is <= 0.
	Length int
	// Memorable alternates lower-case consonants and vowels, ignoring
	// Pattern.
	Memorable bool
	// Pattern every added character must match. Nil means \w.
	Pattern *regexp.Regexp
	// Prefix starts the password.
	Prefix string
}

// PasswordWith draws printable ASCII characters until the password reaches
// the requested length, keeping those that match the pattern. A prefix at
// least as long as Length is returned as is. It fails with ErrInvalidOption
// when the pattern rejects maxPasswordDraws characters in a row.
func (i *Internet) PasswordWith(o PasswordOptions) (string, error) {
	if o.Length <= 0 {
		o.Length = DefaultPasswordLength
	}
	if o.Pattern == nil {
		o.Pattern = wordCharRe
	}

	var b strings.Builder
	b.WriteString(o.Prefix)
	size := utf8.RuneCountInString(o.Prefix)
	for size < o.Length {
		re := o.Pattern
		if o.Memorable {
			re = consonantRe
			if consonantRe.MatchString(b.String()) {
				re = vowelRe
			}
		}
		c, ok := i.passwordChar(re, o.Memorable)
		if !ok {
			return "", fmt.Errorf("%w: password pattern %q matches no character", ErrInvalidOption, re)
		}
		b.WriteByte(c)
		size++
	}
	return b.String(), nil
}

func (i *Internet) passwordChar(re *regexp.Regexp, lower bool) (byte, bool) {
	for range maxPasswordDraws {
		c := byte(i.f.between('!', 0x7f))
		if lower && c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if re.Match([]byte{c}) {
			return c, true
		}
	}
	return 0, false
}
