package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/atomicstack/tmux-emoji-popup/internal/tmux"
)

var (
	executable = os.Executable
	bindKey    = tmux.BindKey
)

type bindFlags struct {
	key    string
	table  string
	width  string
	height string
	title  string
	dryRun bool
}

func (r *root) newBindCmd() *cobra.Command {
	flags := &bindFlags{}
	cmd := &cobra.Command{
		Use:   "bind",
		Short: "Install a tmux key binding that opens the popup",
		Example: `  tmux-emoji-popup bind
  tmux-emoji-popup bind --key C-e --table prefix
  tmux-emoji-popup bind --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := r.config(args)
			if err != nil {
				return err
			}
			exe, err := executable()
			if err != nil {
				return fmt.Errorf("locate executable: %w", err)
			}
			opts := tmux.BindOptions{
				Key:     flags.key,
				Table:   flags.table,
				Width:   flags.width,
				Height:  flags.height,
				Title:   flags.title,
				Command: popupCommand(exe, cmd),
			}
			if flags.dryRun {
				bindArgs, err := tmux.BindArgs(opts)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "tmux "+shellJoin(bindArgs))
				return nil
			}
			socket, err := tmux.ResolveSocketPath(cfg.App.SocketPath)
			if err != nil {
				return fmt.Errorf("resolve socket path: %w", err)
			}
			if err := bindKey(socket, opts); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Bound %s in table %s\n", opts.Key, opts.Table)
			return nil
		},
	}
	cmd.Flags().StringVar(&flags.key, "key", "M-e", "tmux key that opens the popup")
	cmd.Flags().StringVar(&flags.table, "table", "root", "tmux key table")
	cmd.Flags().StringVar(&flags.width, "popup-width", "60%", "popup width passed to display-popup -w")
	cmd.Flags().StringVar(&flags.height, "popup-height", "50%", "popup height passed to display-popup -h")
	cmd.Flags().StringVar(&flags.title, "title", "emoji", "popup title")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "print the tmux command instead of running it")
	return cmd
}

// popupCommand is the shell command the binding runs: the executable plus
// the popup flags that were set explicitly.
func popupCommand(exe string, cmd *cobra.Command) string {
	parts := []string{exe}
	for _, name := range []string{"inject", "inject-delay", "per-row", "catalog", "state", "footer", "trace", "log-file"} {
		f := cmd.Flag(name)
		if f == nil || !f.Changed {
			continue
		}
		parts = append(parts, "--"+name+"="+f.Value.String())
	}
	return shellJoin(parts)
}

func shellJoin(parts []string) string {
	quoted := make([]string, len(parts))
	for i, p := range parts {
		quoted[i] = shellQuote(p)
	}
	return strings.Join(quoted, " ")
}

func shellQuote(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\n'\"\\$`;&|<>()*?#~%") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
