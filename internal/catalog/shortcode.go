package catalog

import (
	"strings"

	"github.com/yuin/goldmark-emoji/definition"
)

var shortcodes = definition.Github()

// ResolveShortcode maps a GitHub-style shortcode (":tada:" or "tada") to its
// glyph.
func ResolveShortcode(code string) (string, bool) {
	name := strings.Trim(strings.TrimSpace(code), ":")
	if name == "" {
		return "", false
	}
	def, ok := shortcodes.Get(name)
	if !ok || len(def.Unicode) == 0 {
		return "", false
	}
	return string(def.Unicode), true
}
