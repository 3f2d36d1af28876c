package locale

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// Table maps keys of one module to their values.
type Table map[string][]string

// Definitions is the data of a single locale, or of a resolved fallback
// chain. Value slices are shared and must be treated as read-only.
type Definitions struct {
	Code   string
	Title  string
	Tables map[string]Table
}

type document struct {
	Title  string           `yaml:"title"`
	Tables map[string]Table `yaml:",inline"`
}

// Parse decodes a YAML locale document.
func Parse(code string, data []byte) (*Definitions, error) {
	norm, err := Normalize(code)
	if err != nil {
		return nil, err
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrParseLocale, fmt.Errorf("locale %q: %w", norm, err))
	}
	if len(doc.Tables) == 0 {
		return nil, fmt.Errorf("%w: locale %q defines no tables", ErrParseLocale, norm)
	}

	return &Definitions{Code: norm, Title: doc.Title, Tables: doc.Tables}, nil
}

// Values returns the list stored under module and key, or nil.
func (d *Definitions) Values(module, key string) []string {
	if d == nil {
		return nil
	}
	return d.Tables[module][key]
}

// Has reports whether module and key hold at least one value.
func (d *Definitions) Has(module, key string) bool {
	return len(d.Values(module, key)) > 0
}

// Keys returns the sorted keys of module.
func (d *Definitions) Keys(module string) []string {
	if d == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(d.Tables[module]))
}

// merge fills keys missing from d with the values of other.
func (d *Definitions) merge(other *Definitions) {
	if d.Title == "" {
		d.Title = other.Title
	}
	for module, table := range other.Tables {
		dst, ok := d.Tables[module]
		if !ok {
			dst = make(Table, len(table))
			d.Tables[module] = dst
		}
		for key, values := range table {
			if len(dst[key]) == 0 && len(values) > 0 {
				dst[key] = values
			}
		}
	}
}
