package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Group is the category an entry belongs to. The declaration order is the
// canonical section order.
type Group int

const (
	SmileysEmotion Group = iota
	PeopleBody
	Component
	AnimalsNature
	FoodDrink
	TravelPlaces
	Activities
	Objects
	Symbols
	Flags
	groupCount
)

var groupSlugs = [groupCount]string{
	"smileys-emotion",
	"people-body",
	"component",
	"animals-nature",
	"food-drink",
	"travel-places",
	"activities",
	"objects",
	"symbols",
	"flags",
}

var groupTitles = buildGroupTitles()

func buildGroupTitles() [groupCount]string {
	caser := cases.Title(language.English)
	var titles [groupCount]string
	for i, slug := range groupSlugs {
		words := strings.Replace(slug, "-", " & ", 1)
		titles[i] = caser.String(words)
	}
	return titles
}

// Groups returns every group in canonical order.
func Groups() []Group {
	out := make([]Group, 0, groupCount)
	for g := Group(0); g < groupCount; g++ {
		out = append(out, g)
	}
	return out
}

// Valid reports whether g is one of the declared groups.
func (g Group) Valid() bool {
	return g >= 0 && g < groupCount
}

func (g Group) String() string {
	if !g.Valid() {
		return fmt.Sprintf("group(%d)", int(g))
	}
	return groupSlugs[g]
}

// Title returns the display title, e.g. "Smileys & Emotion".
func (g Group) Title() string {
	if !g.Valid() {
		return g.String()
	}
	return groupTitles[g]
}

// ParseGroup resolves a slug ("food-drink") or title ("Food & Drink").
func ParseGroup(value string) (Group, error) {
	needle := strings.ToLower(strings.TrimSpace(value))
	for i, slug := range groupSlugs {
		if needle == slug || needle == strings.ToLower(groupTitles[i]) {
			return Group(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGroup, value)
}

// UnmarshalYAML lets catalog files name groups by slug.
func (g *Group) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseGroup(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*g = parsed
	return nil
}

// MarshalYAML writes the slug form.
func (g Group) MarshalYAML() (interface{}, error) {
	return g.String(), nil
}
