package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/opsdeck/opsdeck/internal/usecase"
)

func dashboardCmd(g *globalOpts) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the core dashboard snapshot (health, plans, jobs)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validFormat(format); err != nil {
				return err
			}

			client, err := g.client()
			if err != nil {
				return err
			}

			if format == "json" {
				raw, err := client.DashboardData(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(os.Stdout, raw)
			}

			d, err := usecase.NewLoadDashboard(client).Execute(cmd.Context())
			if err != nil {
				return err
			}
			printDashboard(os.Stdout, d)
			return nil
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}
