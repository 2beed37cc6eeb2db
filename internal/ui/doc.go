// Package ui contains the Bubble Tea program that renders the emoji popup.
// The Model focuses on message orchestration; the selection semantics live in
// internal/picker and the grid state in internal/ui/state.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, window sizes, mouse clicks and wheel events,
//     injection results).
//   - Key presses are first mapped to named commands by the command keymap
//     (internal/ui/command) and applied to the picker controller. Keys the
//     keymap leaves unbound edit the query (internal/ui/input.go).
//   - Mouse clicks are hit-tested against the zones marked while rendering the
//     previous frame (cells, section tabs and tone overlay variants).
//
// Host role:
//   - The Model is the controller's picker.Host. Emit records the glyph and
//     Close flags the popup for shutdown; effects turns both into commands:
//     the injection runs asynchronously through the command bus, then the
//     program quits after the configured delay.
package ui
