package command

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func press(s string) tea.KeyPressMsg {
	switch s {
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case "alt+1":
		return tea.KeyPressMsg{Code: '1', Mod: tea.ModAlt}
	case "alt+0":
		return tea.KeyPressMsg{Code: '0', Mod: tea.ModAlt}
	case "alt+.":
		return tea.KeyPressMsg{Code: '.', Mod: tea.ModAlt}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func TestLookup(t *testing.T) {
	k := DefaultKeymap()
	cases := []struct {
		key  string
		want Command
	}{
		{"up", Command{Name: MoveUp}},
		{"enter", Command{Name: SelectCurrent}},
		{"tab", Command{Name: OpenSecondary}},
		{"esc", Command{Name: Cancel}},
		{"ctrl+c", Command{Name: Cancel}},
		{"alt+.", Command{Name: RotateTonesForward}},
		{"alt+1", Command{Name: JumpToSection, Arg: 0}},
		{"alt+0", Command{Name: JumpToSection, Arg: 9}},
	}
	for _, tc := range cases {
		got, ok := k.Lookup(press(tc.key))
		if !ok || got != tc.want {
			t.Fatalf("%s: expected %v, got %v (%v)", tc.key, tc.want, got, ok)
		}
	}
}

func TestLookupLeavesTextKeys(t *testing.T) {
	k := DefaultKeymap()
	for _, s := range []string{"a", "3", " "} {
		if cmd, ok := k.Lookup(press(s)); ok {
			t.Fatalf("expected %q to be left for the query, got %v", s, cmd)
		}
	}
}

func TestLookupOverlayDigits(t *testing.T) {
	k := DefaultKeymap()
	got, ok := k.LookupOverlay(press("3"))
	if !ok || got != (Command{Name: PickTone, Arg: 3}) {
		t.Fatalf("expected pick-tone(3), got %v", got)
	}
	if _, ok := k.LookupOverlay(press("7")); ok {
		t.Fatalf("expected 7 to be unbound in the overlay")
	}
	got, ok = k.LookupOverlay(press("esc"))
	if !ok || got.Name != Cancel {
		t.Fatalf("expected grid bindings to apply in the overlay, got %v", got)
	}
}

func TestCommandString(t *testing.T) {
	if got := (Command{Name: JumpToSection, Arg: 2}).String(); got != "jump-to-section(2)" {
		t.Fatalf("unexpected %q", got)
	}
	if got := (Command{Name: Cancel}).String(); got != "cancel" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestBusExecute(t *testing.T) {
	b := New()
	type doneMsg struct{}
	msg := b.Execute(Request{ID: "inject", Label: "x", Handler: func() tea.Msg { return doneMsg{} }})()
	if _, ok := msg.(doneMsg); !ok {
		t.Fatalf("expected handler result, got %T", msg)
	}
	if msg := b.Execute(Request{ID: "none"})(); msg != nil {
		t.Fatalf("expected nil for missing handler, got %T", msg)
	}
}
