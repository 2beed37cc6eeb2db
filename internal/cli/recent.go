package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atomicstack/tmux-emoji-popup/internal/format/table"
	"github.com/atomicstack/tmux-emoji-popup/internal/session"
)

func (r *root) newRecentCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show recently inserted emoji",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := r.config(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			ctx := cmd.Context()
			store, err := session.Open(ctx, cfg.App.StatePath)
			if err != nil {
				return fmt.Errorf("open session store: %w", err)
			}
			if store == nil {
				fmt.Fprintln(out, "Session persistence is disabled")
				return nil
			}
			defer store.Close()
			picks, err := store.Recent(ctx, limit)
			if err != nil {
				return fmt.Errorf("read picks: %w", err)
			}
			if len(picks) == 0 {
				fmt.Fprintf(out, "No picks recorded yet in %s\n", store.Path())
				return nil
			}
			rows := make([][]string, 0, len(picks))
			for _, p := range picks {
				rows = append(rows, []string{p.PickedAt.Local().Format("2006-01-02 15:04:05"), p.Glyph, p.Name})
			}
			writeLines(out, table.Format(rows, nil))
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "number of picks to show (0 shows all)")
	return cmd
}
