package usecase

import (
	"context"

	"github.com/opsdeck/opsdeck/internal/ports"
)

// PlanOutcome is what an operator decision came back as.
type PlanOutcome struct {
	PlanID string
	Status string
}

// DecidePlan submits approve/reject decisions for pending plans.
type DecidePlan struct {
	client ports.CoreClient
}

func NewDecidePlan(client ports.CoreClient) *DecidePlan {
	return &DecidePlan{client: client}
}

func (uc *DecidePlan) Approve(ctx context.Context, planID string, execute bool) (PlanOutcome, error) {
	raw, err := uc.client.ApprovePlan(ctx, planID, execute)
	if err != nil {
		return PlanOutcome{}, err
	}
	return outcomeOf(raw, planID), nil
}

// Reject passes the reason through as-is; the bridge applies the default
// wording when it is blank.
func (uc *DecidePlan) Reject(ctx context.Context, planID, reason string) (PlanOutcome, error) {
	raw, err := uc.client.RejectPlan(ctx, planID, reason)
	if err != nil {
		return PlanOutcome{}, err
	}
	return outcomeOf(raw, planID), nil
}

func outcomeOf(raw any, fallbackID string) PlanOutcome {
	out := PlanOutcome{PlanID: fallbackID}
	m, ok := raw.(map[string]any)
	if !ok {
		return out
	}
	if id, ok := m["id"].(string); ok && id != "" {
		out.PlanID = id
	}
	if status, ok := m["status"].(string); ok {
		out.Status = status
	}
	return out
}
