package locale

import "errors"

var (
	// ErrInvalidLocale is returned for codes that are not well-formed language tags.
	ErrInvalidLocale = errors.New("locale: invalid locale code")

	// ErrUnknownLocale is returned when no locale in a lookup chain is registered.
	ErrUnknownLocale = errors.New("locale: unknown locale")

	// ErrParseLocale is returned when locale data cannot be decoded.
	ErrParseLocale = errors.New("locale: failed to parse locale data")
)
