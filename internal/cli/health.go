package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func healthCmd(g *globalOpts) *cobra.Command {
	var deep bool

	c := &cobra.Command{
		Use:   "health",
		Short: "Probe core API health",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := g.client()
			if err != nil {
				return err
			}

			result, err := client.Health(cmd.Context(), deep)
			if err != nil {
				return err
			}
			return printJSON(os.Stdout, result)
		},
	}

	c.Flags().BoolVar(&deep, "deep", false, "Also check core dependencies")
	return c
}
