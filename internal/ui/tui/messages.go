package tui

import (
	"github.com/opsdeck/opsdeck/internal/domain"
	"github.com/opsdeck/opsdeck/internal/usecase"
)

type dashboardLoadedMsg struct {
	dashboard domain.Dashboard
	err       error
}

type planDecidedMsg struct {
	action  string // "approve" or "reject"
	outcome usecase.PlanOutcome
	err     error
}
