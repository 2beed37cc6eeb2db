package command

import (
	"fmt"

	"charm.land/bubbles/v2/key"
)

// MaxJumpSections is the number of sections reachable with alt+digit.
const MaxJumpSections = 10

// Keymap binds keys to commands.
type Keymap struct {
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	Home         key.Binding
	End          key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	Select       key.Binding
	Secondary    key.Binding
	FocusSearch  key.Binding
	Cancel       key.Binding
	ToneForward  key.Binding
	ToneBackward key.Binding
	Jump         [MaxJumpSections]key.Binding
	Tone         [6]key.Binding
}

// DefaultKeymap returns the standard bindings.
func DefaultKeymap() Keymap {
	k := Keymap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "insert"),
		),
		Secondary: key.NewBinding(
			key.WithKeys("tab", "shift+enter"),
			key.WithHelp("tab", "tones"),
		),
		FocusSearch: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "search"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "close"),
		),
		ToneForward: key.NewBinding(
			key.WithKeys("alt+.", "ctrl+t"),
			key.WithHelp("alt+.", "next tone"),
		),
		ToneBackward: key.NewBinding(
			key.WithKeys("alt+,"),
			key.WithHelp("alt+,", "prev tone"),
		),
	}
	for i := range k.Jump {
		digit := (i + 1) % 10
		k.Jump[i] = key.NewBinding(
			key.WithKeys(fmt.Sprintf("alt+%d", digit)),
			key.WithHelp(fmt.Sprintf("alt+%d", digit), fmt.Sprintf("section %d", i+1)),
		)
	}
	for i := range k.Tone {
		k.Tone[i] = key.NewBinding(
			key.WithKeys(fmt.Sprintf("%d", i+1)),
			key.WithHelp(fmt.Sprintf("%d", i+1), fmt.Sprintf("tone %d", i+1)),
		)
	}
	return k
}

// Lookup maps a key to a grid command. Keys not bound here are left for
// query editing.
func (k Keymap) Lookup(msg fmt.Stringer) (Command, bool) {
	simple := []struct {
		binding key.Binding
		name    Name
	}{
		{k.Up, MoveUp},
		{k.Down, MoveDown},
		{k.Left, MoveLeft},
		{k.Right, MoveRight},
		{k.Home, MoveHome},
		{k.End, MoveEnd},
		{k.PageUp, PageUp},
		{k.PageDown, PageDown},
		{k.Select, SelectCurrent},
		{k.Secondary, OpenSecondary},
		{k.FocusSearch, FocusSearch},
		{k.Cancel, Cancel},
		{k.ToneForward, RotateTonesForward},
		{k.ToneBackward, RotateTonesBackward},
	}
	for _, s := range simple {
		if key.Matches(msg, s.binding) {
			return Command{Name: s.name}, true
		}
	}
	for i, b := range k.Jump {
		if key.Matches(msg, b) {
			return Command{Name: JumpToSection, Arg: i}, true
		}
	}
	return Command{}, false
}

// LookupOverlay maps a key while the tone overlay is open. Digits pick a
// variant directly.
func (k Keymap) LookupOverlay(msg fmt.Stringer) (Command, bool) {
	for i, b := range k.Tone {
		if key.Matches(msg, b) {
			return Command{Name: PickTone, Arg: i + 1}, true
		}
	}
	return k.Lookup(msg)
}

// ShortHelp returns the bindings shown in the footer.
func (k Keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Secondary, k.ToneForward, k.Jump[0], k.Cancel}
}

// FullHelp groups every binding.
func (k Keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Home, k.End, k.PageUp, k.PageDown},
		{k.Select, k.Secondary, k.FocusSearch, k.Cancel},
		{k.ToneForward, k.ToneBackward},
	}
}
