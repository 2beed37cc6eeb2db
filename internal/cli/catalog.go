package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/atomicstack/tmux-emoji-popup/internal/catalog"
	"github.com/atomicstack/tmux-emoji-popup/internal/format/table"
	"github.com/atomicstack/tmux-emoji-popup/internal/search"
)

func (r *root) newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the emoji catalog",
		Long: `Browse the emoji catalog the popup shows: the built-in one, or the YAML
file named by --catalog.`,
	}
	cmd.AddCommand(r.newCatalogListCmd())
	cmd.AddCommand(r.newCatalogShowCmd())
	return cmd
}

// --- catalog list ---

type catalogListFlags struct {
	group  string
	search string
	groups bool
}

func (r *root) newCatalogListCmd() *cobra.Command {
	flags := &catalogListFlags{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog entries",
		Example: `  tmux-emoji-popup catalog list
  tmux-emoji-popup catalog list --group animals-nature
  tmux-emoji-popup catalog list --search heart
  tmux-emoji-popup catalog list --groups`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := r.loadCatalog(args)
			if err != nil {
				return err
			}
			return runCatalogList(cmd.OutOrStdout(), cat, flags)
		},
	}
	cmd.Flags().StringVar(&flags.group, "group", "", "only list entries of this group (slug, e.g. food-drink)")
	cmd.Flags().StringVar(&flags.search, "search", "", "rank entries against a search query")
	cmd.Flags().BoolVar(&flags.groups, "groups", false, "show group counts instead of entries")
	return cmd
}

func (r *root) loadCatalog(args []string) (*catalog.Catalog, error) {
	cfg, err := r.config(args)
	if err != nil {
		return nil, err
	}
	return catalog.Load(cfg.App.CatalogPath)
}

func runCatalogList(out io.Writer, cat *catalog.Catalog, flags *catalogListFlags) error {
	if flags.groups {
		listGroups(out, cat)
		return nil
	}
	entries := cat.Entries()
	if flags.search != "" {
		entries = search.New(cat).Search(flags.search)
	}
	if flags.group != "" {
		g, err := catalog.ParseGroup(flags.group)
		if err != nil {
			return err
		}
		var filtered []*catalog.Entry
		for _, e := range entries {
			if e.Group == g {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "No entries found")
		return nil
	}
	rows := [][]string{{"GLYPH", "NAME", "GROUP", "SHORTCODES"}}
	for _, e := range entries {
		rows = append(rows, []string{e.Glyph, e.Name, e.Group.String(), shortcodes(e)})
	}
	writeLines(out, table.Format(rows, nil))
	fmt.Fprintf(out, "\n%d entries\n", len(entries))
	return nil
}

func listGroups(out io.Writer, cat *catalog.Catalog) {
	counts := cat.CountByGroup()
	rows := [][]string{{"GROUP", "TITLE", "COUNT"}}
	for _, g := range catalog.Groups() {
		if counts[g] == 0 {
			continue
		}
		rows = append(rows, []string{g.String(), g.Title(), fmt.Sprintf("%d", counts[g])})
	}
	writeLines(out, table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignRight}))
}

func shortcodes(e *catalog.Entry) string {
	codes := make([]string, len(e.Shortcodes))
	for i, sc := range e.Shortcodes {
		codes[i] = ":" + sc + ":"
	}
	return strings.Join(codes, " ")
}

// --- catalog show ---

func (r *root) newCatalogShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <glyph|name|shortcode>",
		Short: "Show one entry and its tone variants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := r.loadCatalog(nil)
			if err != nil {
				return err
			}
			e, ok := cat.Find(args[0])
			if !ok {
				return fmt.Errorf("no emoji matches %q", args[0])
			}
			showEntry(cmd.OutOrStdout(), e)
			return nil
		},
	}
}

func showEntry(out io.Writer, e *catalog.Entry) {
	rows := [][]string{
		{"glyph", e.Glyph},
		{"name", e.Name},
		{"group", fmt.Sprintf("%s (%s)", e.Group.Title(), e.Group)},
	}
	if len(e.Keywords) > 0 {
		rows = append(rows, []string{"keywords", strings.Join(e.Keywords, ", ")})
	}
	if len(e.Shortcodes) > 0 {
		rows = append(rows, []string{"shortcodes", shortcodes(e)})
	}
	writeLines(out, table.Format(rows, nil))
	if !e.HasTones() {
		return
	}
	fmt.Fprintln(out, "\ntones:")
	tones := make([][]string, 0, len(e.Tones))
	for i, v := range e.Tones {
		tones = append(tones, []string{fmt.Sprintf("  %d", i+1), v.Glyph, v.Name})
	}
	writeLines(out, table.Format(tones, nil))
}
