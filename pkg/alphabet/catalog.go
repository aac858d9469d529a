package alphabet

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordsearch/pkg/errors"
	"github.com/matzehuels/wordsearch/pkg/observability"
)

// DefaultResource is the catalog resource name loaders are asked for.
const DefaultResource = "alphabets.json"

// DefaultLanguage is used when no language is given.
const DefaultLanguage = "en"

// Description is one language entry of the catalog resource.
type Description struct {
	Comment string  `json:"//comment,omitempty"`
	Lower   []Range `json:"ranges"`
	Upper   []Range `json:"upper_ranges,omitempty"`
}

// Ranges returns the ranges for case c, or nil if the language lacks it.
func (d Description) Ranges(c Case) []Range {
	if c == Upper {
		return d.Upper
	}
	return d.Lower
}

// Cases lists the case variants the description provides.
func (d Description) Cases() []Case {
	var cases []Case
	if len(d.Lower) > 0 {
		cases = append(cases, Lower)
	}
	if len(d.Upper) > 0 {
		cases = append(cases, Upper)
	}
	return cases
}

// LanguageInfo summarizes a catalog entry for listings.
type LanguageInfo struct {
	Code    string
	Comment string
	Cases   []Case
	Ranges  int
	Letters map[Case]int
}

// ParseCatalog decodes a catalog resource.
func ParseCatalog(data []byte) (map[string]Description, error) {
	var entries map[string]Description
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "parse alphabet catalog")
	}
	if len(entries) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidCatalog, "alphabet catalog is empty")
	}

	// Keys are matched the way Resolve normalizes requested codes.
	normalized := make(map[string]Description, len(entries))
	for code, desc := range entries {
		key := strings.ToLower(strings.TrimSpace(code))
		if key == "" {
			return nil, errors.New(errors.ErrCodeInvalidCatalog, "alphabet catalog has an empty language code")
		}
		if _, dup := normalized[key]; dup {
			return nil, errors.New(errors.ErrCodeInvalidCatalog, "alphabet catalog lists language %q more than once", key)
		}
		normalized[key] = desc
	}
	return normalized, nil
}

type tableKey struct {
	language string
	c        Case
}

// Catalog resolves languages to sampling tables. The resource is loaded on
// first use and derived tables are cached.
type Catalog struct {
	loader   Loader
	resource string
	logger   *log.Logger

	mu      sync.Mutex
	entries map[string]Description
	tables  map[tableKey]*Table
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithResource sets the resource name passed to the loader.
func WithResource(name string) Option {
	return func(c *Catalog) {
		if name != "" {
			c.resource = name
		}
	}
}

// WithLogger sets the catalog logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewCatalog returns a catalog reading its resource through loader.
func NewCatalog(loader Loader, opts ...Option) *Catalog {
	c := &Catalog{
		loader:   loader,
		resource: DefaultResource,
		logger:   log.Default(),
		tables:   make(map[tableKey]*Table),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Builtin returns a catalog over the embedded resource.
func Builtin() *Catalog {
	return NewCatalog(EmbeddedLoader{})
}

// load reads and parses the resource once. Callers hold c.mu. A failed load
// is not remembered, so a later call may succeed.
func (c *Catalog) load(ctx context.Context) (map[string]Description, error) {
	if c.entries != nil {
		return c.entries, nil
	}
	data, err := c.loader.Load(ctx, c.resource)
	if err != nil {
		return nil, err
	}
	entries, err := ParseCatalog(data)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("alphabet catalog loaded", "resource", c.resource, "languages", len(entries))
	c.entries = entries
	return entries, nil
}

// Resolve returns the sampling table for language and case. Language codes
// are matched case-insensitively; an empty code means DefaultLanguage.
func (c *Catalog) Resolve(ctx context.Context, language string, alphabetCase Case) (t *Table, err error) {
	start := time.Now()
	lang := normalizeLanguage(language)
	defer func() {
		observability.Generator().OnAlphabetResolved(ctx, lang, string(alphabetCase), time.Since(start), err)
	}()

	if err = errors.ValidateLanguageCode(lang); err != nil {
		return nil, err
	}
	cs, err := ParseCase(string(alphabetCase))
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	key := tableKey{lang, cs}
	if t, ok := c.tables[key]; ok {
		return t, nil
	}

	entries, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	desc, ok := entries[lang]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnsupportedLanguage, "no alphabet for language %q", language)
	}
	ranges := desc.Ranges(cs)
	if len(ranges) == 0 {
		return nil, errors.New(errors.ErrCodeUnsupportedCase, "language %q has no %s case alphabet", lang, cs)
	}

	t, err = NewTable(lang, cs, ranges)
	if err != nil {
		return nil, err
	}
	c.tables[key] = t
	c.logger.Debug("alphabet resolved", "language", lang, "case", cs, "letters", t.Total())
	return t, nil
}

// Languages lists the catalog entries sorted by code.
func (c *Catalog) Languages(ctx context.Context) ([]LanguageInfo, error) {
	c.mu.Lock()
	entries, err := c.load(ctx)
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}

	infos := make([]LanguageInfo, 0, len(entries))
	for code, desc := range entries {
		info := LanguageInfo{
			Code:    code,
			Comment: desc.Comment,
			Cases:   desc.Cases(),
			Letters: make(map[Case]int),
		}
		for _, cs := range info.Cases {
			ranges := desc.Ranges(cs)
			info.Ranges += len(ranges)
			for _, r := range ranges {
				info.Letters[cs] += r.Count()
			}
		}
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Code < infos[j].Code })
	return infos, nil
}

func normalizeLanguage(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultLanguage
	}
	return s
}
