package usecase

import (
	"context"
	"testing"
)

func TestApproveOutcome(t *testing.T) {
	client := &fakeCoreClient{response: map[string]any{"id": "plan-1", "status": "executed"}}

	out, err := NewDecidePlan(client).Approve(context.Background(), "plan-1", true)
	if err != nil {
		t.Fatalf("Approve error: %v", err)
	}
	if out.PlanID != "plan-1" || out.Status != "executed" {
		t.Fatalf("outcome = %+v", out)
	}
	if len(client.approved) != 1 || client.executes[0] != true {
		t.Fatalf("client calls = %+v execute=%v", client.approved, client.executes)
	}
}

func TestRejectPassesReasonThrough(t *testing.T) {
	client := &fakeCoreClient{response: map[string]any{"id": "plan-1", "status": "rejected"}}

	out, err := NewDecidePlan(client).Reject(context.Background(), "plan-1", "")
	if err != nil {
		t.Fatalf("Reject error: %v", err)
	}
	if out.Status != "rejected" {
		t.Fatalf("outcome = %+v", out)
	}
	// Blank reason is forwarded; the bridge owns the default wording.
	if client.reasons[0] != "" {
		t.Fatalf("reason = %q", client.reasons[0])
	}
}

func TestOutcomeFallsBackToRequestedID(t *testing.T) {
	client := &fakeCoreClient{response: map[string]any{"status": "rejected"}}

	out, err := NewDecidePlan(client).Reject(context.Background(), "plan-9", "nope")
	if err != nil {
		t.Fatalf("Reject error: %v", err)
	}
	if out.PlanID != "plan-9" {
		t.Fatalf("plan id = %q", out.PlanID)
	}
}

func TestDecidePropagatesError(t *testing.T) {
	client := &fakeCoreClient{err: errBoom}

	if _, err := NewDecidePlan(client).Approve(context.Background(), "p", false); err == nil {
		t.Fatal("expected error")
	}
}

func TestOutcomeOfNonObjectPayload(t *testing.T) {
	client := &fakeCoreClient{response: []any{"weird"}}

	out, err := NewDecidePlan(client).Approve(context.Background(), "plan-3", false)
	if err != nil {
		t.Fatalf("Approve error: %v", err)
	}
	if out.PlanID != "plan-3" || out.Status != "" {
		t.Fatalf("outcome = %+v", out)
	}
}
