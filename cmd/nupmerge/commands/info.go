package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"nupmerge/internal/imposition"
	"nupmerge/internal/session"
)

// info <file.pdf>...: print one line per page with its size in pt.
func infoCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info <file.pdf>...",
		Short: "Print the page sizes of PDF files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			for _, p := range args {
				data, err := os.ReadFile(p)
				if err != nil {
					return err
				}
				pages, err := imposition.Preview(a.PDF(), data)
				if err != nil {
					return fmt.Errorf("%s: %w", p, err)
				}
				fmt.Fprintf(out, "%s (%s, %d page(s))\n", filepath.Base(p), session.FormatSize(int64(len(data))), len(pages))
				for _, page := range pages {
					fmt.Fprintf(out, "  %s\n", page.Label())
				}
			}
			return nil
		},
	}
}
