package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/opsdeck/opsdeck/internal/usecase"
)

func cmdLoadDashboard(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if deps.Client == nil {
			return dashboardLoadedMsg{err: errors.New("Client is nil")}
		}

		d, err := usecase.NewLoadDashboard(deps.Client).Execute(context.Background())
		return dashboardLoadedMsg{dashboard: d, err: err}
	}
}

func cmdApprovePlan(deps Deps, planID string, execute bool) tea.Cmd {
	return func() tea.Msg {
		if deps.Client == nil {
			return planDecidedMsg{action: "approve", err: errors.New("Client is nil")}
		}

		out, err := usecase.NewDecidePlan(deps.Client).Approve(context.Background(), planID, execute)
		return planDecidedMsg{action: "approve", outcome: out, err: err}
	}
}

// cmdRejectPlan sends a blank reason; the bridge substitutes the standard
// operator note.
func cmdRejectPlan(deps Deps, planID string) tea.Cmd {
	return func() tea.Msg {
		if deps.Client == nil {
			return planDecidedMsg{action: "reject", err: errors.New("Client is nil")}
		}

		out, err := usecase.NewDecidePlan(deps.Client).Reject(context.Background(), planID, "")
		return planDecidedMsg{action: "reject", outcome: out, err: err}
	}
}
