package catalog

import (
	"strings"
	"unicode/utf8"
)

// SkinToneModifiers are the Fitzpatrick modifiers U+1F3FB..U+1F3FF.
var SkinToneModifiers = []string{
	"\U0001F3FB",
	"\U0001F3FC",
	"\U0001F3FD",
	"\U0001F3FE",
	"\U0001F3FF",
}

var skinToneNames = []string{
	"light skin tone",
	"medium-light skin tone",
	"medium skin tone",
	"medium-dark skin tone",
	"dark skin tone",
}

const variationSelector16 = "\uFE0F"

// SkinToneVariants returns the base glyph followed by its five modified forms,
// so index 0 always renders the untoned emoji. The modifier follows the first
// code point, which keeps ZWJ sequences such as 👩‍💻 intact.
func SkinToneVariants(glyph, name string) []Variant {
	_, size := utf8.DecodeRuneInString(glyph)
	head := glyph[:size]
	rest := strings.TrimPrefix(glyph[size:], variationSelector16)
	out := make([]Variant, 0, len(SkinToneModifiers)+1)
	out = append(out, Variant{Glyph: glyph, Name: name})
	for i, mod := range SkinToneModifiers {
		out = append(out, Variant{
			Glyph: head + mod + rest,
			Name:  name + ": " + skinToneNames[i],
		})
	}
	return out
}
