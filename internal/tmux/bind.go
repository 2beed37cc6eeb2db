package tmux

import (
	"fmt"
	"strings"
)

// BindOptions describes the key binding that opens the popup.
type BindOptions struct {
	Key     string
	Table   string
	Width   string
	Height  string
	Title   string
	Command string
}

func (o BindOptions) withDefaults() BindOptions {
	if o.Key == "" {
		o.Key = "M-e"
	}
	if o.Table == "" {
		o.Table = "root"
	}
	if o.Width == "" {
		o.Width = "60%"
	}
	if o.Height == "" {
		o.Height = "50%"
	}
	return o
}

// BindArgs returns the bind-key command that installs opts.
func BindArgs(opts BindOptions) ([]string, error) {
	opts = opts.withDefaults()
	if strings.TrimSpace(opts.Command) == "" {
		return nil, fmt.Errorf("popup command required")
	}
	args := []string{
		"bind-key", "-T", opts.Table, opts.Key,
		"display-popup", "-E", "-w", opts.Width, "-h", opts.Height,
	}
	if opts.Title != "" {
		args = append(args, "-T", opts.Title)
	}
	return append(args, opts.Command), nil
}

// BindKey installs the popup key binding on the server at socketPath.
func BindKey(socketPath string, opts BindOptions) error {
	args, err := BindArgs(opts)
	if err != nil {
		return err
	}
	c, err := client(socketPath)
	if err != nil {
		return err
	}
	if _, err := c.Command(args...); err != nil {
		return fmt.Errorf("bind-key %s: %w", args[3], err)
	}
	return nil
}
