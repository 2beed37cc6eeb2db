// Package command defines the named picker commands, the key bindings that
// produce them and the bus that runs asynchronous work with tracing.
package command

import "fmt"

// Name identifies a picker command independently of the key that triggers it.
type Name string

const (
	MoveUp              Name = "move-up"
	MoveDown            Name = "move-down"
	MoveLeft            Name = "move-left"
	MoveRight           Name = "move-right"
	MoveHome            Name = "move-home"
	MoveEnd             Name = "move-end"
	PageUp              Name = "page-up"
	PageDown            Name = "page-down"
	SelectCurrent       Name = "select-current"
	OpenSecondary       Name = "open-secondary"
	FocusSearch         Name = "focus-search"
	Cancel              Name = "cancel"
	RotateTonesForward  Name = "rotate-tones-forward"
	RotateTonesBackward Name = "rotate-tones-backward"
	JumpToSection       Name = "jump-to-section"
	PickTone            Name = "pick-tone"
)

// Command is a named command with its argument: the section index for
// JumpToSection, the 1-based variant number for PickTone.
type Command struct {
	Name Name
	Arg  int
}

func (c Command) String() string {
	switch c.Name {
	case JumpToSection, PickTone:
		return fmt.Sprintf("%s(%d)", c.Name, c.Arg)
	}
	return string(c.Name)
}
