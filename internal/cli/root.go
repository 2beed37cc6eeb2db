// Package cli defines the tmux-emoji-popup command tree.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/atomicstack/tmux-emoji-popup/internal/app"
	"github.com/atomicstack/tmux-emoji-popup/internal/config"
	"github.com/atomicstack/tmux-emoji-popup/internal/logging"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// ErrConfig marks errors caused by invalid flags or environment.
var ErrConfig = errors.New("configuration error")

// Options wires the command tree to its environment.
type Options struct {
	Environ []string
	// Started receives the configuration just before the popup runs.
	Started func(config.Config)
	Run     func(app.Config) error
}

type root struct {
	opts    Options
	binding *config.Binding
}

// NewRootCmd builds the command tree. Running it without a subcommand opens
// the popup.
func NewRootCmd(opts Options) *cobra.Command {
	if opts.Environ == nil {
		opts.Environ = os.Environ()
	}
	if opts.Run == nil {
		opts.Run = app.Run
	}
	r := &root{opts: opts}
	cmd := &cobra.Command{
		Use:   "tmux-emoji-popup",
		Short: "Emoji picker for tmux popups",
		Long: `tmux-emoji-popup shows a searchable emoji grid inside a tmux popup and
sends the chosen emoji to the pane that was focused when it opened.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          r.runPopup,
	}
	r.binding = config.Bind(cmd.PersistentFlags(), opts.Environ)

	cmd.AddCommand(r.newCatalogCmd())
	cmd.AddCommand(r.newRecentCmd())
	cmd.AddCommand(r.newBindCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// config validates the bound flags and applies the logging settings.
func (r *root) config(args []string) (config.Config, error) {
	cfg, err := r.binding.Config(args)
	if err != nil {
		return config.Config{}, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	return cfg, nil
}

func (r *root) runPopup(cmd *cobra.Command, args []string) error {
	cfg, err := r.config(os.Args[1:])
	if err != nil {
		return err
	}
	if r.opts.Started != nil {
		r.opts.Started(cfg)
	}
	if err := r.opts.Run(cfg.App); err != nil {
		logging.Error(err)
		return err
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "tmux-emoji-popup version %s\n", version)
			fmt.Fprintf(out, "commit: %s\n", commit)
			fmt.Fprintf(out, "date: %s\n", date)
		},
	}
}

func writeLines(w io.Writer, lines []string) {
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}
