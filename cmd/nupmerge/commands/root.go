package commands

import (
	"github.com/spf13/cobra"

	"nupmerge/internal/app"
	"nupmerge/internal/config"
)

type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg     *config.Config
	appOpts []app.Option
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd(appOpts ...app.Option) *cobra.Command {
	opts := &rootOptions{appOpts: appOpts}

	root := &cobra.Command{
		Use:           "nupmerge",
		Short:         "Place PDF pages N-up onto A3/A4/A5/Letter/Legal sheets",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if opts.logLevel != "" {
				cfg.LogLevel = opts.logLevel
			}
			if opts.logFormat != "" {
				cfg.LogFormat = opts.logFormat
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "HCL config file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "text or json")

	root.AddCommand(serveCmd(opts), mergeCmd(opts), infoCmd(opts), presetsCmd(opts))
	return root
}

func (o *rootOptions) newApp(cmd *cobra.Command) (*app.App, error) {
	return app.New(cmd.ErrOrStderr(), o.cfg, o.appOpts...)
}
