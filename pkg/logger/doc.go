// Package logger builds slog loggers for the fakegen binary and for callers
// that want to observe a faker's lifecycle (locale resolution, reseeding).
//
// New creates a *slog.Logger configured by Option functions:
//
//   - WithDevelopment / WithProduction: text/debug or json/info presets.
//   - WithFormat / WithTextFormatter / WithJSONFormatter: override output format.
//   - WithLevel: set a custom slog.Level.
//   - WithOutput: destination writer (stderr by default, stdout carries data).
//   - WithAttr: attach static attributes.
//
// ParseLevel and ParseFormat turn configuration strings into options input.
//
// Helper constructors in attr.go (Locale, Seed, Method, Count, Error, ...)
// keep attribute names consistent across the module. Error and Errors only
// produce attributes for non-nil errors:
//
//	log.Info("generated", logger.Count(n), logger.Error(err))
//
// The generator packages under pkg/ never log; only the facade and the
// binary do.
package logger
