package faker

import (
	"strconv"
	"strings"

	"github.com/mshima/faker/pkg/pattern"
)

const (
	// DefaultCreditCardPattern is used for issuers the locale does not know.
	DefaultCreditCardPattern = "6453-####-####-####-###L"

	// DefaultAccountLength is used by Account for n <= 0.
	DefaultAccountLength = 8

	// DefaultMaskLength is used by Mask for n <= 0.
	DefaultMaskLength = 4

	creditCardPrefix = "credit_card_"
)

// Finance generates account and payment card data.
type Finance struct {
	f *Faker
}

// CreditCardIssuer returns one of the issuers known to the locale, e.g. "visa".
func (fi *Finance) CreditCardIssuer() string {
	return fi.f.pick("finance", "credit_card_issuer")
}

// CreditCardNumber returns a Luhn-valid card number.
//
// issuer may name an issuer ("visa", "American Express"), be a pattern of
// its own ("4###-####-####-###L"), or be empty to pick a random issuer.
// Unknown issuers get DefaultCreditCardPattern.
func (fi *Finance) CreditCardNumber(issuer string) string {
	var format string
	switch {
	case strings.ContainsAny(issuer, "#["):
		format = issuer
	case issuer == "":
		format = fi.issuerPattern(fi.CreditCardIssuer())
	default:
		format = fi.issuerPattern(issuer)
	}
	return fi.f.Helpers.ReplaceCreditCardSymbols(format, 0)
}

func (fi *Finance) issuerPattern(issuer string) string {
	key := strings.NewReplacer(" ", "_", "-", "_").Replace(strings.ToLower(strings.TrimSpace(issuer)))
	if key == "" {
		return DefaultCreditCardPattern
	}
	if format := fi.f.pick("finance", creditCardPrefix+key); format != "" {
		return format
	}
	return DefaultCreditCardPattern
}

// CreditCardCVV returns three digits.
func (fi *Finance) CreditCardCVV() string {
	return fi.f.Helpers.ReplaceSymbolWithNumber("###", 0)
}

// Account returns an account number of n digits. For n <= 0 the length is
// DefaultAccountLength.
func (fi *Finance) Account(n int) string {
	if n <= 0 {
		n = DefaultAccountLength
	}
	s, _ := fi.f.Helpers.RepeatString("#", min(n, pattern.MaxRepeat))
	return fi.f.Helpers.ReplaceSymbolWithNumber(s, 0)
}

// Amount returns a decimal amount in [min, max] formatted with precision
// decimals.
func (fi *Finance) Amount(min, max float64, precision int) (string, error) {
	v, err := fi.f.rand.Float(min, max, precision)
	if err != nil {
		return "", err
	}
	return strconv.FormatFloat(v, 'f', precision, 64), nil
}

// AccountName returns an account type followed by " Account", e.g.
// "Savings Account".
func (fi *Finance) AccountName() string {
	return fi.f.pick("finance", "account_type") + " Account"
}

// TransactionType returns one of deposit, withdrawal, payment or invoice.
func (fi *Finance) TransactionType() string {
	return fi.f.pick("finance", "transaction_type")
}

// Mask returns n digits, optionally led by "..." and wrapped in parentheses,
// e.g. "(...8755)". For n <= 0 the length is DefaultMaskLength.
func (fi *Finance) Mask(n int, parens, ellipsis bool) string {
	if n <= 0 {
		n = DefaultMaskLength
	}
	s, _ := fi.f.Helpers.RepeatString("#", min(n, pattern.MaxRepeat))
	if ellipsis {
		s = "..." + s
	}
	if parens {
		s = "(" + s + ")"
	}
	return fi.f.Helpers.ReplaceSymbolWithNumber(s, 0)
}
