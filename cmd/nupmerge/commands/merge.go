package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nupmerge/internal/config"
	"nupmerge/internal/imposition"
	"nupmerge/internal/session"
)

// merge -o out.pdf in1.pdf in2.pdf ...: impose local files in argument order.
func mergeCmd(opts *rootOptions) *cobra.Command {
	var (
		output  string
		quiet   bool
		req     config.LayoutRequest
		padding float64
	)
	cmd := &cobra.Command{
		Use:   "merge -o <out.pdf> <in.pdf>...",
		Short: "Impose PDF files N-up into one document",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("padding") {
				req.Padding = &padding
			}
			layout, err := opts.cfg.Resolve(req)
			if err != nil {
				return err
			}

			a, err := opts.newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			progress := imposition.NopProgress
			if !quiet {
				errOut := cmd.ErrOrStderr()
				progress = imposition.ProgressFunc(func(message string, percent int) {
					fmt.Fprintf(errOut, "[%3d%%] %s\n", percent, message)
				})
			}

			merged, _, err := a.MergeFiles(cmd.Context(), args, layout, progress)
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, merged.Data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %d page(s), %s, %s %dx%d\n",
				output, merged.PageCount, session.FormatSize(int64(len(merged.Data))),
				layout.Paper, layout.Grid.Rows, layout.Grid.Cols)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output PDF path")
	_ = cmd.MarkFlagRequired("output")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not print progress")
	cmd.Flags().StringVar(&req.Preset, "preset", "", "layout preset name (see `nupmerge presets`)")
	cmd.Flags().StringVar(&req.Paper, "paper", "", "A3, A4, A5, Letter or Legal")
	cmd.Flags().StringVar(&req.Orientation, "orientation", "", "portrait or landscape")
	cmd.Flags().IntVar(&req.Rows, "rows", 0, "rows per sheet")
	cmd.Flags().IntVar(&req.Cols, "cols", 0, "columns per sheet")
	cmd.Flags().Float64Var(&padding, "padding", 0, "inner cell margin in pt")
	return cmd
}
