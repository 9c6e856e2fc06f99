package corebridge

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/opsdeck/opsdeck/internal/domain"
)

// DefaultRejectReason is recorded when the operator rejects a plan without
// giving one.
const DefaultRejectReason = "Operator rejected"

// FetchDashboardData retrieves the operator dashboard snapshot (health,
// plans, jobs, recent events).
func (b *Bridge) FetchDashboardData(ctx context.Context, baseURL, token string) (any, error) {
	return b.Send(ctx, domain.RequestSpec{
		Method:  domain.MethodGet,
		BaseURL: baseURL,
		Path:    "/dashboard/data?plans_limit=100",
		Token:   token,
	})
}

// ApprovePlan approves a pending plan; execute=true asks the core to run it
// immediately.
func (b *Bridge) ApprovePlan(ctx context.Context, baseURL, token, planID string, execute bool) (any, error) {
	return b.Send(ctx, domain.RequestSpec{
		Method:  domain.MethodPost,
		BaseURL: baseURL,
		Path:    "/plans/" + url.PathEscape(planID) + "/approve",
		Token:   token,
		Payload: map[string]any{"execute": execute},
	})
}

// RejectPlan rejects a pending plan. A blank reason falls back to
// DefaultRejectReason.
func (b *Bridge) RejectPlan(ctx context.Context, baseURL, token, planID, reason string) (any, error) {
	if strings.TrimSpace(reason) == "" {
		reason = DefaultRejectReason
	}
	return b.Send(ctx, domain.RequestSpec{
		Method:  domain.MethodPost,
		BaseURL: baseURL,
		Path:    "/plans/" + url.PathEscape(planID) + "/reject",
		Token:   token,
		Payload: map[string]any{"reason": reason},
	})
}

// CoreRequest is the generic passthrough: a free-text method, an arbitrary
// path, and an optional payload. Unrecognized methods fail before any
// network activity.
func (b *Bridge) CoreRequest(ctx context.Context, method, baseURL, token, path string, payload any) (any, error) {
	m, err := domain.ParseMethod(method)
	if err != nil {
		return nil, err
	}
	return b.Send(ctx, domain.RequestSpec{
		Method:  m,
		BaseURL: baseURL,
		Path:    path,
		Token:   token,
		Payload: payload,
	})
}

// Health probes the core service; deep=true asks it to check dependencies.
func (b *Bridge) Health(ctx context.Context, baseURL, token string, deep bool) (any, error) {
	path := "/health"
	if deep {
		path = "/health?deep=1"
	}
	return b.Send(ctx, domain.RequestSpec{
		Method:  domain.MethodGet,
		BaseURL: baseURL,
		Path:    path,
		Token:   token,
	})
}

// Plans lists plans, newest first. Limits below 1 are clamped.
func (b *Bridge) Plans(ctx context.Context, baseURL, token string, limit int) (any, error) {
	return b.Send(ctx, domain.RequestSpec{
		Method:  domain.MethodGet,
		BaseURL: baseURL,
		Path:    fmt.Sprintf("/plans?limit=%d", clampLimit(limit)),
		Token:   token,
	})
}

// Jobs lists background jobs, newest first. Limits below 1 are clamped.
func (b *Bridge) Jobs(ctx context.Context, baseURL, token string, limit int) (any, error) {
	return b.Send(ctx, domain.RequestSpec{
		Method:  domain.MethodGet,
		BaseURL: baseURL,
		Path:    fmt.Sprintf("/jobs?limit=%d", clampLimit(limit)),
		Token:   token,
	})
}

func clampLimit(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
