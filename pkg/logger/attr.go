package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Locale records a locale code under the key "locale".
func Locale(code string) slog.Attr {
	return slog.String("locale", code)
}

// Fallback records the fallback locale code under the key "fallback".
func Fallback(code string) slog.Attr {
	return slog.String("fallback", code)
}

// Seed records seed values under the key "seed".
// If no values are given, it returns an empty Attr.
func Seed(values ...uint32) slog.Attr {
	switch len(values) {
	case 0:
		return slog.Attr{}
	case 1:
		return slog.Any("seed", values[0])
	default:
		return slog.Any("seed", values)
	}
}

// Method records a generator method name under the key "method".
func Method(name string) slog.Attr {
	return slog.String("method", name)
}

// Count records a number of generated records under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Attempts records a retry count under the key "attempts".
func Attempts(n int) slog.Attr {
	return slog.Int("attempts", n)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
