package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/opsdeck/opsdeck/internal/infra/logger"
	"github.com/opsdeck/opsdeck/internal/infra/profile"
	"github.com/opsdeck/opsdeck/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOpts{}

	cmd := &cobra.Command{
		Use:          "opsdeck",
		Short:        "opsdeck — operator console for the core control-plane API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cleanup, _ := logger.Setup(logger.Config{
				Dir:   profile.DefaultDir(),
				Debug: opts.debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			client, err := opts.client()
			if err != nil {
				return err
			}

			return tui.Run(tui.Deps{
				Client: client,
				Logger: logger.L(),
				Debug:  opts.debug,
			})
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.profileName, "profile", "p", "", "Named connection profile from ~/.opsdeck/profiles.yaml")
	cmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "Core API base URL (overrides the profile)")
	cmd.PersistentFlags().StringVar(&opts.token, "token", "", "Bearer token (overrides the profile)")
	cmd.PersistentFlags().BoolVar(&opts.lenient, "lenient", false, "Wrap malformed JSON responses as {raw: ...} instead of failing")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable verbose logging to ~/.opsdeck/logs/opsdeck.log")

	cmd.AddCommand(
		dashboardCmd(opts),
		planCmd(opts),
		requestCmd(opts),
		healthCmd(opts),
		versionCmd(),
	)
	return cmd
}
