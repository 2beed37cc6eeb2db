package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// FileVersion is the catalog schema version understood by Parse.
const FileVersion = 1

//go:embed data/emoji.yaml
var embeddedCatalog []byte

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// File is the on-disk catalog layout.
type File struct {
	Version int         `yaml:"version"`
	Groups  []GroupFile `yaml:"groups"`
}

// GroupFile lists the entries for one group, in display order.
type GroupFile struct {
	Group  Group       `yaml:"group"`
	Emojis []EntryFile `yaml:"emojis"`
}

// EntryFile is a single emoji record. Glyph may be omitted when a shortcode
// resolves to a known emoji.
type EntryFile struct {
	Glyph      string   `yaml:"glyph,omitempty"`
	Name       string   `yaml:"name"`
	Keywords   []string `yaml:"keywords,omitempty"`
	Shortcodes []string `yaml:"shortcodes,omitempty"`
	Tones      ToneSpec `yaml:"tones,omitempty"`
}

// ToneSpec accepts either `tones: true`, which generates the skin tone
// modifiers, or an explicit list of variants.
type ToneSpec struct {
	Generate bool
	Variants []VariantFile
}

// VariantFile is an explicit tone variant.
type VariantFile struct {
	Glyph string `yaml:"glyph"`
	Name  string `yaml:"name"`
}

// IsZero lets yaml omit empty tone specs when marshalling.
func (t ToneSpec) IsZero() bool {
	return !t.Generate && len(t.Variants) == 0
}

// UnmarshalYAML decodes the bool or sequence form.
func (t *ToneSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var generate bool
		if err := node.Decode(&generate); err != nil {
			return fmt.Errorf("line %d: tones must be a boolean or a list: %w", node.Line, err)
		}
		t.Generate = generate
		return nil
	case yaml.SequenceNode:
		return node.Decode(&t.Variants)
	default:
		return fmt.Errorf("line %d: tones must be a boolean or a list", node.Line)
	}
}

// MarshalYAML writes the compact form back out.
func (t ToneSpec) MarshalYAML() (interface{}, error) {
	if len(t.Variants) > 0 {
		return t.Variants, nil
	}
	return t.Generate, nil
}

// Default returns the embedded catalog. It is parsed once; concurrent first
// callers share the same result.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(embeddedCatalog)
		if defaultErr != nil {
			defaultErr = fmt.Errorf("embedded catalog: %w", defaultErr)
		}
	})
	return defaultCatalog, defaultErr
}

// Load reads a catalog file from disk. An empty path returns Default.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes catalog YAML and validates it.
func Parse(data []byte) (*Catalog, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	applyDefaults(&file)
	if file.Version != FileVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, file.Version)
	}
	entries, err := file.entries()
	if err != nil {
		return nil, err
	}
	return New(entries)
}

func applyDefaults(f *File) {
	if f.Version == 0 {
		f.Version = FileVersion
	}
	for gi := range f.Groups {
		for ei := range f.Groups[gi].Emojis {
			e := &f.Groups[gi].Emojis[ei]
			e.Name = strings.TrimSpace(e.Name)
			e.Glyph = strings.TrimSpace(e.Glyph)
			e.Shortcodes = normalizeShortcodes(e.Shortcodes)
			if e.Glyph == "" {
				for _, code := range e.Shortcodes {
					if glyph, ok := ResolveShortcode(code); ok {
						e.Glyph = glyph
						break
					}
				}
			}
		}
	}
}

// normalizeShortcodes strips surrounding colons so ":tada:" is stored as "tada".
func normalizeShortcodes(codes []string) []string {
	out := codes[:0]
	for _, code := range codes {
		code = strings.Trim(strings.TrimSpace(code), ":")
		if code != "" {
			out = append(out, code)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func (f *File) entries() ([]*Entry, error) {
	var out []*Entry
	for _, g := range f.Groups {
		for _, ef := range g.Emojis {
			if ef.Glyph == "" {
				return nil, errorf("%s: %q has no glyph and no known shortcode", g.Group, ef.Name)
			}
			e := &Entry{
				Glyph:      ef.Glyph,
				Name:       ef.Name,
				Group:      g.Group,
				Keywords:   append([]string(nil), ef.Keywords...),
				Shortcodes: append([]string(nil), ef.Shortcodes...),
			}
			switch {
			case len(ef.Tones.Variants) > 0:
				e.Tones = make([]Variant, 0, len(ef.Tones.Variants))
				for _, v := range ef.Tones.Variants {
					e.Tones = append(e.Tones, Variant{Glyph: v.Glyph, Name: v.Name})
				}
			case ef.Tones.Generate:
				e.Tones = SkinToneVariants(ef.Glyph, ef.Name)
			}
			out = append(out, e)
		}
	}
	return out, nil
}

func errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidEntry, fmt.Sprintf(format, args...))
}
