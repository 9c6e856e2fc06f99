package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opsdeck/opsdeck/internal/usecase"
)

func planCmd(g *globalOpts) *cobra.Command {
	c := &cobra.Command{
		Use:   "plan",
		Short: "Approve or reject pending plans",
	}
	c.AddCommand(planApproveCmd(g), planRejectCmd(g))
	return c
}

func planApproveCmd(g *globalOpts) *cobra.Command {
	var execute bool

	c := &cobra.Command{
		Use:   "approve <plan-id>",
		Short: "Approve a pending plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := g.client()
			if err != nil {
				return err
			}

			out, err := usecase.NewDecidePlan(client).Approve(cmd.Context(), args[0], execute)
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Plan %s: %s\n", out.PlanID, statusOrDone(out.Status))
			return nil
		},
	}

	c.Flags().BoolVar(&execute, "execute", false, "Run the plan immediately after approval")
	return c
}

func planRejectCmd(g *globalOpts) *cobra.Command {
	var reason string

	c := &cobra.Command{
		Use:   "reject <plan-id>",
		Short: "Reject a pending plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := g.client()
			if err != nil {
				return err
			}

			out, err := usecase.NewDecidePlan(client).Reject(cmd.Context(), args[0], reason)
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Plan %s: %s\n", out.PlanID, statusOrDone(out.Status))
			return nil
		},
	}

	c.Flags().StringVar(&reason, "reason", "", "Rejection reason (defaults to a standard operator note)")
	return c
}

func statusOrDone(status string) string {
	if status == "" {
		return "done"
	}
	return status
}
