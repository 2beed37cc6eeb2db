// Package search ranks catalog entries against a free-text query.
package search

import (
	"sort"
	"strings"
	"sync"

	"github.com/atomicstack/tmux-emoji-popup/internal/catalog"
	"github.com/atomicstack/tmux-emoji-popup/internal/logging/events"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	// MaxResults caps the number of entries returned for a non-empty query.
	MaxResults = 1000
	// ReservedMarker excludes names containing it from the unfiltered list.
	ReservedMarker = ":"
)

var rankFind = fuzzy.RankFindNormalizedFold

// match tiers, best first.
const (
	tierExactName = iota
	tierNamePrefix
	tierWordPrefix
	tierTermPrefix
	tierSubstring
	tierFuzzy
)

// Index is a lazily built matcher over a catalog. It is safe for concurrent
// use once constructed.
type Index struct {
	catalog *catalog.Catalog

	once    sync.Once
	entries []*catalog.Entry
	browse  []*catalog.Entry
	names   []string
	words   [][]string
	terms   [][]string
}

// New returns an index over c. No work happens until the first Search.
func New(c *catalog.Catalog) *Index {
	return &Index{catalog: c}
}

func (ix *Index) prepare() {
	ix.once.Do(func() {
		ix.entries = ix.catalog.Entries()
		ix.browse = make([]*catalog.Entry, 0, len(ix.entries))
		ix.names = make([]string, len(ix.entries))
		ix.words = make([][]string, len(ix.entries))
		ix.terms = make([][]string, len(ix.entries))
		for i, e := range ix.entries {
			if !strings.Contains(e.Name, ReservedMarker) {
				ix.browse = append(ix.browse, e)
			}
			name := strings.ToLower(e.Name)
			ix.names[i] = name
			ix.words[i] = strings.FieldsFunc(name, isSeparator)
			terms := make([]string, 0, len(e.Keywords)+len(e.Shortcodes))
			for _, kw := range e.Keywords {
				terms = append(terms, strings.ToLower(kw))
			}
			for _, sc := range e.Shortcodes {
				terms = append(terms, strings.ToLower(strings.Trim(sc, ":")))
			}
			ix.terms[i] = terms
		}
	})
}

func isSeparator(r rune) bool {
	switch r {
	case ' ', '-', ':', '_', ',', '.':
		return true
	}
	return false
}

type candidate struct {
	order    int
	tier     int
	distance int
}

// Search returns entries matching query. An empty query yields the whole
// catalog in canonical order, minus reserved names. A failing matcher yields
// no results rather than an error.
func (ix *Index) Search(query string) (results []*catalog.Entry) {
	defer func() {
		if r := recover(); r != nil {
			events.Search.Recovered(query, r)
			results = nil
		}
	}()
	if ix == nil || ix.catalog == nil {
		return nil
	}
	ix.prepare()

	trimmed := strings.ToLower(strings.TrimSpace(query))
	if trimmed == "" {
		return append([]*catalog.Entry(nil), ix.browse...)
	}

	candidates := make(map[int]*candidate)
	consider := func(i, tier, distance int) {
		if c, ok := candidates[i]; ok {
			if tier < c.tier || (tier == c.tier && distance < c.distance) {
				c.tier, c.distance = tier, distance
			}
			return
		}
		candidates[i] = &candidate{order: i, tier: tier, distance: distance}
	}

	for i, name := range ix.names {
		extra := len(name) - len(trimmed)
		switch {
		case name == trimmed:
			consider(i, tierExactName, 0)
		case strings.HasPrefix(name, trimmed):
			consider(i, tierNamePrefix, extra)
		case wordPrefix(ix.words[i], trimmed) >= 0:
			consider(i, tierWordPrefix, extra)
		case wordPrefix(ix.terms[i], trimmed) >= 0:
			consider(i, tierTermPrefix, wordPrefix(ix.terms[i], trimmed))
		case strings.Contains(name, trimmed):
			consider(i, tierSubstring, extra)
		}
	}
	for _, rank := range rankFind(trimmed, ix.names) {
		consider(rank.OriginalIndex, tierFuzzy, rank.Distance)
	}

	ranked := make([]*candidate, 0, len(candidates))
	for _, c := range candidates {
		ranked = append(ranked, c)
	}
	sort.Slice(ranked, func(a, b int) bool {
		x, y := ranked[a], ranked[b]
		if x.tier != y.tier {
			return x.tier < y.tier
		}
		if x.distance != y.distance {
			return x.distance < y.distance
		}
		return x.order < y.order
	})
	if len(ranked) > MaxResults {
		ranked = ranked[:MaxResults]
	}
	results = make([]*catalog.Entry, len(ranked))
	for i, c := range ranked {
		results[i] = ix.entries[c.order]
	}
	return results
}

// wordPrefix returns how many bytes the shortest word starting with prefix
// has beyond it, or -1 when no word does.
func wordPrefix(words []string, prefix string) int {
	best := -1
	for _, w := range words {
		if !strings.HasPrefix(w, prefix) {
			continue
		}
		if extra := len(w) - len(prefix); best < 0 || extra < best {
			best = extra
		}
	}
	return best
}
