package locale

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

//go:embed data/*.yaml
var builtinData embed.FS

// Registry stores locales by normalized code. Embedded locales are parsed on
// first use and cached. A Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	sources map[string][]byte
	parsed  map[string]*Definitions
}

// NewRegistry returns a registry preloaded with the embedded locales.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	entries, err := fs.ReadDir(builtinData, "data")
	if err != nil {
		// The embed pattern guarantees the directory.
		panic(fmt.Sprintf("locale: read embedded data: %v", err))
	}
	for _, e := range entries {
		data, err := builtinData.ReadFile(path.Join("data", e.Name()))
		if err != nil {
			panic(fmt.Sprintf("locale: read embedded %s: %v", e.Name(), err))
		}
		code := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		r.sources[code] = data
	}
	return r
}

// NewEmptyRegistry returns a registry without any locale.
func NewEmptyRegistry() *Registry {
	return &Registry{
		sources: make(map[string][]byte),
		parsed:  make(map[string]*Definitions),
	}
}

// Register adds or replaces a locale.
func (r *Registry) Register(d *Definitions) error {
	if d == nil {
		return fmt.Errorf("%w: nil definitions", ErrParseLocale)
	}
	code, err := Normalize(d.Code)
	if err != nil {
		return err
	}

	cp := *d
	cp.Code = code
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sources, code)
	r.parsed[code] = &cp
	return nil
}

// RegisterYAML parses data and registers it under code.
func (r *Registry) RegisterYAML(code string, data []byte) error {
	d, err := Parse(code, data)
	if err != nil {
		return err
	}
	return r.Register(d)
}

// Get returns the locale registered under code, without fallback.
func (r *Registry) Get(code string) (*Definitions, error) {
	norm, err := Normalize(code)
	if err != nil {
		return nil, err
	}
	return r.lookup(norm)
}

// Codes returns the sorted codes of all registered locales.
func (r *Registry) Codes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	codes := slices.Collect(maps.Keys(r.parsed))
	for code := range r.sources {
		if _, ok := r.parsed[code]; !ok {
			codes = append(codes, code)
		}
	}
	slices.Sort(codes)
	return codes
}

// Resolve merges code, its base language, fallback and the fallback's base
// language, in that order, skipping unregistered entries. It fails with
// ErrUnknownLocale only when neither code nor its base language is known.
func (r *Registry) Resolve(code, fallback string) (*Definitions, error) {
	primary, err := chain(code)
	if err != nil {
		return nil, err
	}
	var secondary []string
	if fallback != "" {
		if secondary, err = chain(fallback); err != nil {
			return nil, err
		}
	}

	result := &Definitions{Code: primary[0], Tables: make(map[string]Table)}
	found := false
	seen := make(map[string]bool)
	for i, c := range append(primary, secondary...) {
		if seen[c] {
			continue
		}
		seen[c] = true

		d, err := r.lookup(c)
		if errors.Is(err, ErrUnknownLocale) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if i < len(primary) {
			found = true
		}
		result.merge(d)
	}

	if !found {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, primary[0])
	}
	return result, nil
}

func (r *Registry) lookup(code string) (*Definitions, error) {
	r.mu.RLock()
	d, ok := r.parsed[code]
	src, pending := r.sources[code]
	r.mu.RUnlock()
	if ok {
		return d, nil
	}
	if !pending {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, code)
	}

	d, err := Parse(code, src)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.parsed[code]; ok {
		return cached, nil
	}
	r.parsed[code] = d
	delete(r.sources, code)
	return d, nil
}

// Normalize canonicalizes a locale code: "en-us", "EN_US" and "en_US" all
// become "en_US".
func Normalize(code string) (string, error) {
	tag, err := parseTag(code)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(tag.String(), "-", "_"), nil
}

// chain returns code followed by its base language when they differ.
func chain(code string) ([]string, error) {
	tag, err := parseTag(code)
	if err != nil {
		return nil, err
	}
	norm := strings.ReplaceAll(tag.String(), "-", "_")
	base, _ := tag.Base()
	if b := base.String(); b != norm {
		return []string{norm, b}, nil
	}
	return []string{norm}, nil
}

func parseTag(code string) (language.Tag, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return language.Und, fmt.Errorf("%w: empty code", ErrInvalidLocale)
	}
	tag, err := language.Parse(strings.ReplaceAll(code, "_", "-"))
	if err != nil {
		return language.Und, errors.Join(ErrInvalidLocale, fmt.Errorf("code %q: %w", code, err))
	}
	return tag, nil
}
