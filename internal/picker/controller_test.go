package picker

import (
	"reflect"
	"strings"
	"testing"

	"github.com/atomicstack/tmux-emoji-popup/internal/catalog"
	"github.com/atomicstack/tmux-emoji-popup/internal/search"
	"github.com/atomicstack/tmux-emoji-popup/internal/session"
	"github.com/atomicstack/tmux-emoji-popup/internal/tone"
	"github.com/atomicstack/tmux-emoji-popup/internal/ui/state"
)

type scroll struct {
	section  int
	strategy state.ScrollStrategy
}

type fakeHost struct {
	calls   []string
	emitted []string
	scrolls []scroll
}

func (h *fakeHost) Emit(glyph string) {
	h.calls = append(h.calls, "emit")
	h.emitted = append(h.emitted, glyph)
}

func (h *fakeHost) ScrollTo(section int, strategy state.ScrollStrategy) {
	h.scrolls = append(h.scrolls, scroll{section, strategy})
}

func (h *fakeHost) Close() {
	h.calls = append(h.calls, "close")
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	entries := []*catalog.Entry{
		{Glyph: "😀", Name: "grinning face", Group: catalog.SmileysEmotion, Keywords: []string{"smile"}},
		{Glyph: "😂", Name: "face with tears of joy", Group: catalog.SmileysEmotion},
		{Glyph: "😍", Name: "smiling face with heart-eyes", Group: catalog.SmileysEmotion},
		{Glyph: "👍", Name: "thumbs up", Group: catalog.PeopleBody, Tones: catalog.SkinToneVariants("👍", "thumbs up")},
		{Glyph: "👋", Name: "waving hand", Group: catalog.PeopleBody, Tones: []catalog.Variant{
			{Glyph: "👋", Name: "waving hand"},
			{Glyph: "👋🏻", Name: "waving hand: light skin tone"},
		}},
		{Glyph: "🐶", Name: "dog face", Group: catalog.AnimalsNature},
	}
	c, err := catalog.New(entries)
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	return c
}

func newController(t *testing.T, perRow int) (*Controller, *fakeHost, *session.Context) {
	t.Helper()
	idx := search.New(testCatalog(t))
	grid := state.NewGrid(perRow, idx.Search)
	host := &fakeHost{}
	ctx := &session.Context{}
	return New(grid, host, ctx), host, ctx
}

func highlightedName(c *Controller) string {
	if e := c.Highlighted(); e != nil {
		return e.Name
	}
	return ""
}

func expectStrings(t *testing.T, label string, got []string, want ...string) {
	t.Helper()
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("%s: expected %v, got %v", label, want, got)
	}
}

func expectCursor(t *testing.T, c *Controller, want *state.IndexPath) {
	t.Helper()
	got := c.Grid().Cursor
	if (got == nil) != (want == nil) || (got != nil && *got != *want) {
		t.Fatalf("expected cursor %v, got %v", want, got)
	}
}

func TestControllerStartsWithoutSelection(t *testing.T) {
	c, _, _ := newController(t, 2)
	expectCursor(t, c, nil)
	if c.Highlighted() != nil {
		t.Fatalf("expected nothing highlighted")
	}
	if len(c.Sections()) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(c.Sections()))
	}
	if c.RowsIn(0) != 2 || c.RowsIn(9) != 0 {
		t.Fatalf("unexpected row counts %d, %d", c.RowsIn(0), c.RowsIn(9))
	}
	if e := c.EntryAt(state.Path(1, 0, 0)); e == nil || e.Name != "thumbs up" {
		t.Fatalf("expected thumbs up at (1,0,0), got %v", e)
	}
}

func TestConfirmWithoutSelectionDoesNothing(t *testing.T) {
	c, host, _ := newController(t, 2)
	if c.OnConfirm(false) {
		t.Fatalf("expected confirm without a selection to be ignored")
	}
	expectStrings(t, "calls", host.calls)
}

func TestMoveHighlightsAndScrolls(t *testing.T) {
	c, host, _ := newController(t, 2)
	if !c.OnMove(state.Right) || highlightedName(c) != "grinning face" {
		t.Fatalf("expected first move to highlight grinning face, got %q", highlightedName(c))
	}
	c.OnMove(state.Down)
	if !c.OnMove(state.Down) || highlightedName(c) != "thumbs up" {
		t.Fatalf("expected second section after two downs, got %q", highlightedName(c))
	}
	if last := host.scrolls[len(host.scrolls)-1]; last != (scroll{1, state.ScrollNearest}) {
		t.Fatalf("expected nearest scroll to section 1, got %+v", last)
	}
}

func TestQueryChangeResetsCursor(t *testing.T) {
	c, _, _ := newController(t, 2)
	c.OnMove(state.Right)
	c.OnMove(state.Down)
	if !c.OnQuery("dog") {
		t.Fatalf("expected query change to apply")
	}
	expectCursor(t, c, state.Path(0, 0, 0))
	if highlightedName(c) != "dog face" {
		t.Fatalf("expected dog face highlighted, got %q", highlightedName(c))
	}

	c.OnQuery("zzzzzz")
	expectCursor(t, c, nil)
	if c.Highlighted() != nil {
		t.Fatalf("expected highlight cleared with no results")
	}
	if c.OnConfirm(false) {
		t.Fatalf("expected confirm over no results to be ignored")
	}
}

func TestEditQueryOnlyAppliesOnEffectiveChange(t *testing.T) {
	c, host, _ := newController(t, 2)
	if !c.EditQuery(func(g *state.Grid) bool { return g.InsertQueryText("dog") }) {
		t.Fatalf("expected insert to change the query")
	}
	scrolls := len(host.scrolls)
	if !c.EditQuery(func(g *state.Grid) bool { return g.InsertQueryText(" ") }) {
		t.Fatalf("expected trailing space to edit the text")
	}
	if len(host.scrolls) != scrolls {
		t.Fatalf("expected whitespace-only edit not to re-run the search")
	}
}

func TestConfirmEmitsThenCloses(t *testing.T) {
	c, host, ctx := newController(t, 2)
	c.OnMove(state.Right)
	if !c.OnConfirm(false) {
		t.Fatalf("expected confirm to succeed")
	}
	expectStrings(t, "calls", host.calls, "emit", "close")
	expectStrings(t, "emitted", host.emitted, "😀")
	if ctx.LastName != "grinning face" {
		t.Fatalf("expected last selection recorded, got %q", ctx.LastName)
	}
	if !c.Done() || c.OnConfirm(false) || c.Cancel() {
		t.Fatalf("expected controller to stop after confirming")
	}
}

func TestConfirmResolvesActiveTone(t *testing.T) {
	c, host, ctx := newController(t, 2)
	c.JumpToSection(1)
	c.RotateTones(tone.Forward)
	c.RotateTones(tone.Forward)
	if ctx.ToneIndex != 2 {
		t.Fatalf("expected tone 2, got %d", ctx.ToneIndex)
	}
	c.OnConfirm(false)
	expectStrings(t, "emitted", host.emitted, "👍\U0001F3FC")
	if ctx.LastGlyph != "👍\U0001F3FC" {
		t.Fatalf("expected toned glyph remembered, got %q", ctx.LastGlyph)
	}
}

func TestConfirmFallsBackToBaseForShortToneList(t *testing.T) {
	c, host, ctx := newController(t, 2)
	ctx.ToneIndex = 4
	c.JumpToSection(1)
	c.OnMove(state.Right)
	if highlightedName(c) != "waving hand" {
		t.Fatalf("expected waving hand, got %q", highlightedName(c))
	}
	c.OnConfirm(false)
	expectStrings(t, "emitted", host.emitted, "👋")
}

func TestSecondaryConfirmOpensOverlay(t *testing.T) {
	c, host, _ := newController(t, 2)
	c.JumpToSection(1)
	if !c.OnConfirm(true) {
		t.Fatalf("expected secondary confirm to open the overlay")
	}
	expectStrings(t, "calls", host.calls)
	o := c.Overlay()
	if o == nil || o.Entry.Name != "thumbs up" {
		t.Fatalf("expected thumbs up overlay, got %+v", o)
	}
	if len(o.Variants()) != tone.MaxTones || o.Index != 0 {
		t.Fatalf("expected %d variants starting at 0, got %d at %d", tone.MaxTones, len(o.Variants()), o.Index)
	}

	if c.OnMove(state.Left) || c.OnMove(state.Down) {
		t.Fatalf("expected left at the start and down to be ignored in the overlay")
	}
	if !c.OnMove(state.Right) || !c.OnMove(state.Right) {
		t.Fatalf("expected right to move within the overlay")
	}
	expectCursor(t, c, state.Path(1, 0, 0))

	c.OnConfirm(false)
	expectStrings(t, "emitted", host.emitted, "👍\U0001F3FC")
	expectStrings(t, "calls", host.calls, "emit", "close")
}

func TestSecondaryConfirmWithoutTonesConfirms(t *testing.T) {
	c, host, _ := newController(t, 2)
	c.OnMove(state.Right)
	if !c.OnConfirm(true) {
		t.Fatalf("expected secondary confirm to confirm an untoned entry")
	}
	if c.Overlay() != nil {
		t.Fatalf("expected no overlay for an untoned entry")
	}
	expectStrings(t, "emitted", host.emitted, "😀")
}

func TestOverlayStartsOnActiveTone(t *testing.T) {
	c, _, ctx := newController(t, 2)
	ctx.ToneIndex = 5
	c.JumpToSection(1)
	c.OnConfirm(true)
	if got := c.Overlay().Index; got != 5 {
		t.Fatalf("expected overlay on tone 5, got %d", got)
	}
	if c.MoveOverlay(1) {
		t.Fatalf("expected overlay move to saturate at the last variant")
	}

	c.Cancel()
	c.OnMove(state.Right)
	c.OnConfirm(true)
	if got := c.Overlay().Index; got != 0 {
		t.Fatalf("expected overlay to start at 0 past the declared variants, got %d", got)
	}
}

func TestCancelClosesOverlayFirst(t *testing.T) {
	c, host, _ := newController(t, 2)
	c.JumpToSection(1)
	c.OnConfirm(true)
	if !c.Cancel() || c.Overlay() != nil {
		t.Fatalf("expected cancel to close the overlay")
	}
	expectStrings(t, "calls", host.calls)
	if c.Done() {
		t.Fatalf("expected picker to stay open after closing the overlay")
	}

	if !c.Cancel() {
		t.Fatalf("expected second cancel to close the picker")
	}
	expectStrings(t, "calls", host.calls, "close")
	expectStrings(t, "emitted", host.emitted)
}

func TestPickOverlayByNumber(t *testing.T) {
	c, host, _ := newController(t, 2)
	c.JumpToSection(1)
	c.OnConfirm(true)
	if c.PickOverlay(7) || c.PickOverlay(0) {
		t.Fatalf("expected out-of-range picks to be ignored")
	}
	if !c.PickOverlay(6) {
		t.Fatalf("expected pick 6 to confirm")
	}
	expectStrings(t, "emitted", host.emitted, "👍\U0001F3FF")
}

func TestClickOnOpenOverlayEntryDoesNothing(t *testing.T) {
	c, host, _ := newController(t, 2)
	thumbs := state.Path(1, 0, 0)
	if !c.Click(thumbs, true) || c.Overlay() == nil {
		t.Fatalf("expected right click to open the overlay")
	}
	if c.Click(thumbs, false) || c.Overlay() == nil {
		t.Fatalf("expected click on the open entry to be ignored")
	}
	expectStrings(t, "calls", host.calls)

	if !c.Click(state.Path(0, 0, 1), false) {
		t.Fatalf("expected click elsewhere to confirm")
	}
	expectStrings(t, "emitted", host.emitted, "😂")
}

func TestOverlayFollowsPerRowChange(t *testing.T) {
	c, host, _ := newController(t, 2)
	c.JumpToSection(1)
	c.OnConfirm(true)
	if !c.Grid().SetPerRow(1) {
		t.Fatalf("expected per-row change to apply")
	}
	if c.Overlay() == nil || c.Overlay().Entry.Name != "thumbs up" {
		t.Fatalf("expected overlay to stay on thumbs up, got %+v", c.Overlay())
	}
	c.PickOverlay(2)
	expectStrings(t, "emitted", host.emitted, "👍\U0001F3FB")
}

func TestClickIgnoresInvalidPath(t *testing.T) {
	c, host, _ := newController(t, 2)
	if c.Click(state.Path(0, 1, 1), false) || c.Click(nil, false) {
		t.Fatalf("expected invalid clicks to be ignored")
	}
	expectStrings(t, "calls", host.calls)
}

func TestSelectAtHighlightsWithoutConfirming(t *testing.T) {
	c, host, _ := newController(t, 2)
	if !c.SelectAt(state.Path(2, 0, 0)) || highlightedName(c) != "dog face" {
		t.Fatalf("expected dog face highlighted, got %q", highlightedName(c))
	}
	expectStrings(t, "calls", host.calls)
	if c.SelectAt(state.Path(5, 0, 0)) {
		t.Fatalf("expected invalid path to be ignored")
	}
	if !c.SelectAt(nil) || c.Highlighted() != nil {
		t.Fatalf("expected nil to clear the highlight")
	}
}

func TestJumpToSectionCentres(t *testing.T) {
	c, host, _ := newController(t, 2)
	if !c.JumpToSection(2) {
		t.Fatalf("expected jump to section 2")
	}
	if last := host.scrolls[len(host.scrolls)-1]; last != (scroll{2, state.ScrollCenter}) {
		t.Fatalf("expected centred scroll to section 2, got %+v", last)
	}
	if highlightedName(c) != "dog face" {
		t.Fatalf("expected dog face highlighted, got %q", highlightedName(c))
	}
	if c.JumpToSection(3) {
		t.Fatalf("expected out-of-range jump to be ignored")
	}
}

func TestRotateTonesWraps(t *testing.T) {
	c, _, ctx := newController(t, 2)
	for i := 0; i < tone.MaxTones; i++ {
		c.RotateTones(tone.Backward)
	}
	if ctx.ToneIndex != 0 {
		t.Fatalf("expected full rotation to return to 0, got %d", ctx.ToneIndex)
	}
	if got := c.RotateTones(tone.Backward); got != 5 {
		t.Fatalf("expected backward wrap to 5, got %d", got)
	}
	if got := c.Glyph(c.EntryAt(state.Path(1, 0, 0))); got != "👍\U0001F3FF" {
		t.Fatalf("expected dark thumbs up, got %q", got)
	}
}

func TestNewNormalizesSessionTone(t *testing.T) {
	idx := search.New(testCatalog(t))
	ctx := &session.Context{ToneIndex: 13}
	c := New(state.NewGrid(3, idx.Search), nil, ctx)
	if c.ToneIndex() != 1 {
		t.Fatalf("expected tone 13 to normalize to 1, got %d", c.ToneIndex())
	}
	c.OnMove(state.Right)
	if !c.OnConfirm(false) {
		t.Fatalf("expected confirm without a host to succeed")
	}
	if !strings.HasPrefix(ctx.LastGlyph, "😀") {
		t.Fatalf("expected grinning face remembered, got %q", ctx.LastGlyph)
	}
}
