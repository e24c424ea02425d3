package i18n

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Translator retrieves the localized version of a message template. It is
// called before parameters are substituted.
type Translator interface {
	Translate(msg, locale string) string
}

// IdentityTranslator returns templates unchanged.
type IdentityTranslator struct{}

func (IdentityTranslator) Translate(msg, _ string) string { return msg }

// ErrInvalidCatalog is returned when catalog content cannot be used.
var ErrInvalidCatalog = errors.New("i18n: invalid catalog")

// Catalog is a dictionary Translator keyed by the English template. Locales
// are matched with BCP 47 semantics, so "ja-JP" falls back to "ja".
type Catalog struct {
	mu       sync.RWMutex
	messages map[language.Tag]map[string]string
	tags     []language.Tag
	matcher  language.Matcher
	logger   *slog.Logger
}

// CatalogOption configures a Catalog.
type CatalogOption func(*Catalog)

// WithLogger sets the logger used to report missing translations at debug
// level. The default logger discards everything.
func WithLogger(l *slog.Logger) CatalogOption {
	return func(c *Catalog) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewCatalog returns an empty Catalog.
func NewCatalog(opts ...CatalogOption) *Catalog {
	c := &Catalog{
		messages: map[language.Tag]map[string]string{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add registers translations for locale, merging with existing entries.
func (c *Catalog) Add(locale string, messages map[string]string) error {
	tag, err := language.Parse(locale)
	if err != nil {
		return errors.Join(ErrInvalidCatalog, fmt.Errorf("locale %q: %w", locale, err))
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	dict, ok := c.messages[tag]
	if !ok {
		dict = make(map[string]string, len(messages))
		c.messages[tag] = dict
		c.tags = append(c.tags, tag)
		c.matcher = language.NewMatcher(c.tags)
	}
	for k, v := range messages {
		dict[k] = v
	}
	return nil
}

// Merge copies every translation of other into c.
func (c *Catalog) Merge(other *Catalog) {
	type entry struct {
		locale   string
		messages map[string]string
	}
	other.mu.RLock()
	entries := make([]entry, 0, len(other.tags))
	for _, tag := range other.tags {
		msgs := make(map[string]string, len(other.messages[tag]))
		for k, v := range other.messages[tag] {
			msgs[k] = v
		}
		entries = append(entries, entry{tag.String(), msgs})
	}
	other.mu.RUnlock()
	for _, e := range entries {
		_ = c.Add(e.locale, e.messages)
	}
}

// Locales lists the registered locales in ascending order.
func (c *Catalog) Locales() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.tags))
	for _, t := range c.tags {
		out = append(out, t.String())
	}
	sort.Strings(out)
	return out
}

func (c *Catalog) Translate(msg, locale string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.tags) == 0 {
		return msg
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return msg
	}
	_, idx, conf := c.matcher.Match(tag)
	if conf == language.No {
		return msg
	}
	if s, ok := c.messages[c.tags[idx]][msg]; ok {
		return s
	}
	c.logger.Debug("missing translation", "locale", locale, "message", msg)
	return msg
}

// LoadCatalogYAML parses a catalog of the form:
//
//	ja:
//	  "{Property} cannot be blank.": "{Property}は必須です。"
func LoadCatalogYAML(data []byte, opts ...CatalogOption) (*Catalog, error) {
	var raw map[string]map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrInvalidCatalog, err)
	}
	if len(raw) == 0 {
		return nil, errors.Join(ErrInvalidCatalog, errors.New("no locales found"))
	}
	c := NewCatalog(opts...)
	locales := make([]string, 0, len(raw))
	for l := range raw {
		locales = append(locales, l)
	}
	sort.Strings(locales)
	for _, l := range locales {
		if err := c.Add(l, raw[l]); err != nil {
			return nil, err
		}
	}
	return c, nil
}
