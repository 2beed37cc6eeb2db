// Package tone selects which skin tone variant of an entry is displayed and
// inserted.
package tone

import "github.com/atomicstack/tmux-emoji-popup/internal/catalog"

// MaxTones is the number of tone positions: the base glyph plus five skin
// tones.
const MaxTones = 6

// Direction selects the rotation direction.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Index is the active tone position, always within [0, MaxTones).
type Index int

// Normalize wraps any integer into range.
func Normalize(i int) Index {
	i %= MaxTones
	if i < 0 {
		i += MaxTones
	}
	return Index(i)
}

// Rotate returns the next index in the given direction.
func (i Index) Rotate(d Direction) Index {
	cur := int(Normalize(int(i)))
	if d == Backward {
		return Index((cur + MaxTones - 1) % MaxTones)
	}
	return Index((cur + 1) % MaxTones)
}

// Resolve returns the glyph to show for e. Entries without tones, and
// indexes past the declared variants, yield the base glyph.
func Resolve(e *catalog.Entry, i Index) string {
	if v, ok := Variant(e, i); ok {
		return v.Glyph
	}
	if e == nil {
		return ""
	}
	return e.Glyph
}

// Variant returns the declared variant at i, if any.
func Variant(e *catalog.Entry, i Index) (catalog.Variant, bool) {
	if !e.HasTones() {
		return catalog.Variant{}, false
	}
	idx := int(i)
	if idx < 0 || idx >= len(e.Tones) {
		return catalog.Variant{}, false
	}
	return e.Tones[idx], true
}
