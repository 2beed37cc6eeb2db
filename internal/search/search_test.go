package search

import (
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/atomicstack/tmux-emoji-popup/internal/catalog"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

const testCatalog = `
groups:
  - group: smileys-emotion
    emojis:
      - {glyph: "😀", name: grinning face, keywords: [smile, happy], shortcodes: [grinning]}
      - {glyph: "🐱", name: cat face, keywords: [pet], shortcodes: [cat]}
  - group: animals-nature
    emojis:
      - {glyph: "🐶", name: dog face, keywords: [pet, puppy], shortcodes: [dog]}
      - {glyph: "🐕", name: dog, keywords: [pet], shortcodes: [dog2]}
      - {glyph: "🌭", name: hot dog, keywords: [sausage], shortcodes: [hotdog]}
  - group: flags
    emojis:
      - {glyph: "🏁", name: chequered flag, shortcodes: [checkered_flag]}
      - {glyph: "🇯🇵", name: "flag: Japan", shortcodes: [jp]}
`

func newIndex(t *testing.T) (*Index, *catalog.Catalog) {
	t.Helper()
	c, err := catalog.Parse([]byte(testCatalog))
	if err != nil {
		t.Fatalf("parse catalog: %v", err)
	}
	return New(c), c
}

func names(entries []*catalog.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

func expectNames(t *testing.T, got []*catalog.Entry, want ...string) {
	t.Helper()
	if !reflect.DeepEqual(names(got), want) {
		t.Fatalf("expected %v, got %v", want, names(got))
	}
}

func TestEmptyQueryReturnsCatalogWithoutReservedNames(t *testing.T) {
	ix, c := newIndex(t)
	got := ix.Search("")
	expectNames(t, got, "grinning face", "cat face", "dog face", "dog", "hot dog", "chequered flag")
	if len(got) != c.Len()-1 {
		t.Fatalf("expected %d entries, got %d", c.Len()-1, len(got))
	}
	expectNames(t, ix.Search("   "), names(got)...)
}

func TestReservedNamesAreSearchable(t *testing.T) {
	ix, _ := newIndex(t)
	expectNames(t, ix.Search("japan"), "flag: Japan")
}

func TestExactMatchRanksFirst(t *testing.T) {
	ix, _ := newIndex(t)
	got := names(ix.Search("dog"))
	if len(got) < 3 {
		t.Fatalf("expected at least 3 results, got %v", got)
	}
	if got[0] != "dog" || got[1] != "dog face" {
		t.Fatalf("expected exact then prefix match first, got %v", got)
	}
	if !contains(got, "hot dog") {
		t.Fatalf("expected substring match in %v", got)
	}
}

func TestKeywordAndShortcodeMatches(t *testing.T) {
	ix, _ := newIndex(t)
	expectNames(t, ix.Search("happy"), "grinning face")
	if got := names(ix.Search("checkered")); !contains(got, "chequered flag") {
		t.Fatalf("expected shortcode match, got %v", got)
	}
	expectNames(t, ix.Search("pet"), "cat face", "dog face", "dog")
}

func TestTiesKeepCatalogOrder(t *testing.T) {
	entries := []*catalog.Entry{
		{Glyph: "a", Name: "star b", Group: catalog.Symbols},
		{Glyph: "b", Name: "star a", Group: catalog.Symbols},
		{Glyph: "c", Name: "star c", Group: catalog.Symbols},
	}
	c, err := catalog.New(entries)
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	expectNames(t, New(c).Search("star"), "star b", "star a", "star c")
}

func TestResultsAreCapped(t *testing.T) {
	entries := make([]*catalog.Entry, 0, MaxResults+200)
	for i := 0; i < MaxResults+200; i++ {
		entries = append(entries, &catalog.Entry{
			Glyph: fmt.Sprintf("g%d", i),
			Name:  fmt.Sprintf("symbol %d", i),
			Group: catalog.Symbols,
		})
	}
	c, err := catalog.New(entries)
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	ix := New(c)
	if got := len(ix.Search("symbol")); got != MaxResults {
		t.Fatalf("expected %d results, got %d", MaxResults, got)
	}
	if got := len(ix.Search("")); got != MaxResults+200 {
		t.Fatalf("expected the uncapped catalog for an empty query, got %d", got)
	}
}

func TestNoMatchIsEmpty(t *testing.T) {
	ix, _ := newIndex(t)
	if got := ix.Search("zzzzqqq"); len(got) != 0 {
		t.Fatalf("expected no results, got %v", names(got))
	}
}

func TestMatcherFailureDegradesToEmpty(t *testing.T) {
	ix, _ := newIndex(t)
	prev := rankFind
	rankFind = func(string, []string) fuzzy.Ranks { panic("matcher unavailable") }
	t.Cleanup(func() { rankFind = prev })
	if got := ix.Search("dog"); got != nil {
		t.Fatalf("expected nil results after matcher panic, got %v", names(got))
	}
	if got := ix.Search(""); len(got) == 0 {
		t.Fatalf("expected browse results without the matcher")
	}
}

func TestNilIndexIsEmpty(t *testing.T) {
	var ix *Index
	if got := ix.Search("dog"); got != nil {
		t.Fatalf("expected nil from nil index, got %v", names(got))
	}
	if got := New(nil).Search(""); got != nil {
		t.Fatalf("expected nil from empty index, got %v", names(got))
	}
}

func TestConcurrentFirstSearch(t *testing.T) {
	ix, _ := newIndex(t)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ix.Search("face")
		}()
	}
	wg.Wait()
	got := names(ix.Search("face"))
	if len(got) < 3 || !reflect.DeepEqual(got[:3], []string{"cat face", "dog face", "grinning face"}) {
		t.Fatalf("expected face matches after concurrent init, got %v", got)
	}
}
