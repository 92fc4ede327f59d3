package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"nupmerge/internal/imposition"
)

// presets: list the configured layout presets.
func presetsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List layout presets, paper sizes and defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tROWS\tCOLS\tORIENTATION")
			for _, p := range opts.cfg.Presets {
				fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", p.Name, p.Rows, p.Cols, p.Orientation)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			sizes := make([]string, 0, 5)
			for _, s := range imposition.PaperSizes() {
				sizes = append(sizes, string(s))
			}
			d := opts.cfg.Defaults
			fmt.Fprintf(cmd.OutOrStdout(), "\npaper sizes: %s\ndefaults: %s, %dx%d, padding %gpt\n",
				strings.Join(sizes, ", "), d.Paper, d.Grid.Rows, d.Grid.Cols, d.Grid.Padding)
			return nil
		},
	}
}
