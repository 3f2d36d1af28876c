package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mshima/faker"
	"github.com/mshima/faker/pkg/logger"
	"github.com/mshima/faker/pkg/unique"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// templateColumn names the column holding the rendered -template.
const templateColumn = "template"

var (
	errNothingToGenerate = errors.New("no method or template given")
	errRecordExclusive   = errors.New("-record cannot be combined with methods, -template or -unique")
)

// recordKinds are the structured records selectable with -record.
var recordKinds = map[string]func(*faker.Faker) any{
	"transaction":    func(f *faker.Faker) any { return f.Helpers.CreateTransaction() },
	"card":           func(f *faker.Faker) any { return f.Helpers.CreateCard() },
	"userCard":       func(f *faker.Faker) any { return f.Helpers.UserCard() },
	"contextualCard": func(f *faker.Faker) any { return f.Helpers.ContextualCard() },
}

type options struct {
	cfg      faker.Config
	count    int
	unique   bool
	format   string
	template string
	record   string
	list     bool
	methods  []string
}

// parseFlags layers command line flags over cfg.
func parseFlags(fs *flag.FlagSet, args []string, cfg faker.Config) (options, error) {
	opts := options{cfg: cfg, count: 1, format: formatText}

	fs.StringVar(&opts.cfg.Locale, "locale", cfg.Locale, "locale code, e.g. en or de_AT")
	fs.StringVar(&opts.cfg.Fallback, "fallback", cfg.Fallback, "locale filling keys the selected locale lacks (empty disables)")
	fs.Func("seed", "seed value or comma separated seed key (default: entropy)", func(s string) error {
		seed, err := parseSeed(s)
		if err != nil {
			return err
		}
		opts.cfg.Seed = seed
		return nil
	})
	fs.IntVar(&opts.count, "n", opts.count, "number of records")
	fs.BoolVar(&opts.unique, "unique", false, "never repeat a value within a column")
	fs.StringVar(&opts.format, "format", opts.format, "output format: text, json or yaml")
	fs.StringVar(&opts.template, "template", "", `template such as "{{name.lastName}}, {{name.firstName}}"`)
	fs.StringVar(&opts.record, "record", "", "structured record: transaction, card, userCard or contextualCard")
	fs.BoolVar(&opts.list, "list", false, "list available methods and exit")
	fs.StringVar(&opts.cfg.LogLevel, "log-level", cfg.LogLevel, "diagnostics level: debug, info, warn or error")
	fs.StringVar(&opts.cfg.LogFormat, "log-format", cfg.LogFormat, "diagnostics format: text or json")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	opts.methods = fs.Args()

	switch opts.format {
	case formatText, formatJSON, formatYAML:
	default:
		return options{}, fmt.Errorf("unknown format %q", opts.format)
	}
	if opts.count < 0 {
		return options{}, fmt.Errorf("-n must not be negative, got %d", opts.count)
	}
	if opts.record != "" {
		if _, ok := recordKinds[opts.record]; !ok {
			return options{}, fmt.Errorf("unknown record %q", opts.record)
		}
		if len(opts.methods) > 0 || opts.template != "" || opts.unique {
			return options{}, errRecordExclusive
		}
	}
	return opts, nil
}

func parseSeed(s string) ([]uint32, error) {
	parts := strings.Split(s, ",")
	seed := make([]uint32, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid seed %q: %w", p, err)
		}
		seed = append(seed, uint32(v))
	}
	return seed, nil
}

// column produces the values of one output field.
type column struct {
	name     string
	generate func() string
	tracker  *unique.Tracker[string]
}

func (c column) next() (string, error) {
	if c.tracker == nil {
		return c.generate(), nil
	}
	return c.tracker.Generate(c.generate, nil)
}

func run(opts options, stdout, stderr io.Writer) error {
	log, err := newLogger(opts.cfg, stderr)
	if err != nil {
		return err
	}

	f, err := faker.NewFromConfig(opts.cfg, faker.WithLogger(log))
	if err != nil {
		return fmt.Errorf("create faker: %w", err)
	}

	if opts.list {
		for _, m := range f.Methods() {
			if _, err := fmt.Fprintln(stdout, m); err != nil {
				return err
			}
		}
		return nil
	}

	if opts.record != "" {
		return writeRecords(stdout, opts.format, generateRecords(f, opts))
	}

	columns, err := buildColumns(f, opts)
	if err != nil {
		return err
	}

	records := make([][]string, 0, opts.count)
	for range opts.count {
		record := make([]string, len(columns))
		for i, c := range columns {
			v, err := c.next()
			if err != nil {
				log.Error("generation stopped",
					logger.Method(c.name),
					logger.Count(len(records)),
					logger.Error(err),
				)
				return fmt.Errorf("column %s: %w", c.name, err)
			}
			record[i] = v
		}
		records = append(records, record)
	}
	log.Debug("records generated", logger.Count(len(records)), logger.Locale(f.Locale()))

	return write(stdout, opts.format, columns, records)
}

func newLogger(cfg faker.Config, w io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	return logger.New(
		logger.WithOutput(w),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithAttr(logger.Component("fakegen")),
	), nil
}

func buildColumns(f *faker.Faker, opts options) ([]column, error) {
	if len(opts.methods) == 0 && opts.template == "" {
		return nil, errNothingToGenerate
	}

	columns := make([]column, 0, len(opts.methods)+1)
	for _, m := range opts.methods {
		if _, err := f.Call(m); err != nil {
			return nil, err
		}
		columns = append(columns, column{
			name: m,
			generate: func() string {
				v, _ := f.Call(m)
				return v
			},
		})
	}
	if opts.template != "" {
		tmpl := opts.template
		columns = append(columns, column{
			name:     templateColumn,
			generate: func() string { return f.Fake(tmpl) },
		})
	}

	if opts.unique {
		for i := range columns {
			columns[i].tracker = unique.New[string](
				unique.WithMaxTime(opts.cfg.UniqueMaxTime),
				unique.WithMaxRetries(opts.cfg.UniqueMaxRetries),
			)
		}
	}
	return columns, nil
}

func write(w io.Writer, format string, columns []column, records [][]string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		for _, r := range records {
			if err := enc.Encode(asMap(columns, r)); err != nil {
				return err
			}
		}
		return nil
	case formatYAML:
		docs := make([]map[string]string, 0, len(records))
		for _, r := range records {
			docs = append(docs, asMap(columns, r))
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(docs); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, r := range records {
			if _, err := fmt.Fprintln(w, strings.Join(r, "\t")); err != nil {
				return err
			}
		}
		return nil
	}
}

func asMap(columns []column, record []string) map[string]string {
	m := make(map[string]string, len(columns))
	for i, c := range columns {
		m[c.name] = record[i]
	}
	return m
}

func generateRecords(f *faker.Faker, opts options) []any {
	gen := recordKinds[opts.record]
	recs := make([]any, 0, opts.count)
	for range opts.count {
		recs = append(recs, gen(f))
	}
	return recs
}

// writeRecords prints nested records. Text output is JSON lines like the
// json format, since records do not fit in columns.
func writeRecords(w io.Writer, format string, recs []any) error {
	if format == formatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(recs); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	for _, r := range recs {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}
