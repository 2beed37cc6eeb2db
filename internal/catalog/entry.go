package catalog

import (
	"errors"
	"strings"
)

var (
	ErrEmptyCatalog       = errors.New("catalog has no entries")
	ErrUnknownGroup       = errors.New("unknown group")
	ErrUnsupportedVersion = errors.New("unsupported catalog version")
	ErrInvalidEntry       = errors.New("invalid catalog entry")
)

// Variant is an alternate rendering of an entry, such as a skin tone.
type Variant struct {
	Glyph string
	Name  string
}

// Entry is one emoji record. Entries are shared by pointer and never mutated
// once the catalog is built.
type Entry struct {
	Glyph      string
	Name       string
	Group      Group
	Keywords   []string
	Shortcodes []string
	Tones      []Variant
}

// HasTones reports whether the entry declares tone variants.
func (e *Entry) HasTones() bool {
	return e != nil && len(e.Tones) > 0
}

// Catalog is the immutable, ordered set of entries.
type Catalog struct {
	entries []*Entry
	byGlyph map[string]*Entry
}

// New validates entries and builds a catalog preserving their order.
func New(entries []*Entry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{
		entries: make([]*Entry, 0, len(entries)),
		byGlyph: make(map[string]*Entry, len(entries)),
	}
	for i, e := range entries {
		if e == nil {
			return nil, errorf("entry %d is nil", i)
		}
		if strings.TrimSpace(e.Glyph) == "" {
			return nil, errorf("entry %d (%q) has no glyph", i, e.Name)
		}
		if strings.TrimSpace(e.Name) == "" {
			return nil, errorf("entry %d (%s) has no name", i, e.Glyph)
		}
		if !e.Group.Valid() {
			return nil, errorf("entry %q: %v", e.Name, ErrUnknownGroup)
		}
		if prev, dup := c.byGlyph[e.Glyph]; dup {
			return nil, errorf("entry %q reuses glyph of %q", e.Name, prev.Name)
		}
		c.byGlyph[e.Glyph] = e
		for _, v := range e.Tones {
			if _, taken := c.byGlyph[v.Glyph]; !taken {
				c.byGlyph[v.Glyph] = e
			}
		}
		c.entries = append(c.entries, e)
	}
	return c, nil
}

// Entries returns the entries in canonical order. The slice is a copy; the
// entries are shared.
func (c *Catalog) Entries() []*Entry {
	if c == nil {
		return nil
	}
	return append([]*Entry(nil), c.entries...)
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Lookup finds the entry owning glyph, which may be a tone variant.
func (c *Catalog) Lookup(glyph string) (*Entry, bool) {
	if c == nil {
		return nil, false
	}
	e, ok := c.byGlyph[glyph]
	return e, ok
}

// Find resolves a glyph, a name or a shortcode (with or without colons).
func (c *Catalog) Find(query string) (*Entry, bool) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, false
	}
	if e, ok := c.Lookup(trimmed); ok {
		return e, true
	}
	code := strings.Trim(trimmed, ":")
	for _, e := range c.entries {
		if strings.EqualFold(e.Name, trimmed) {
			return e, true
		}
		for _, sc := range e.Shortcodes {
			if strings.EqualFold(sc, code) {
				return e, true
			}
		}
	}
	return nil, false
}

// CountByGroup returns entry counts indexed by group.
func (c *Catalog) CountByGroup() map[Group]int {
	counts := make(map[Group]int, groupCount)
	if c == nil {
		return counts
	}
	for _, e := range c.entries {
		counts[e.Group]++
	}
	return counts
}
