package corebridge

import (
	"context"

	"github.com/opsdeck/opsdeck/internal/ports"
)

// Session binds a Bridge to one core endpoint and credential so UI layers
// can depend on the operation-only ports.CoreClient view.
type Session struct {
	bridge  *Bridge
	baseURL string
	token   string
}

func NewSession(bridge *Bridge, baseURL, token string) *Session {
	return &Session{bridge: bridge, baseURL: baseURL, token: token}
}

var _ ports.CoreClient = (*Session)(nil)

func (s *Session) DashboardData(ctx context.Context) (any, error) {
	return s.bridge.FetchDashboardData(ctx, s.baseURL, s.token)
}

func (s *Session) ApprovePlan(ctx context.Context, planID string, execute bool) (any, error) {
	return s.bridge.ApprovePlan(ctx, s.baseURL, s.token, planID, execute)
}

func (s *Session) RejectPlan(ctx context.Context, planID, reason string) (any, error) {
	return s.bridge.RejectPlan(ctx, s.baseURL, s.token, planID, reason)
}

func (s *Session) Health(ctx context.Context, deep bool) (any, error) {
	return s.bridge.Health(ctx, s.baseURL, s.token, deep)
}

func (s *Session) Request(ctx context.Context, method, path string, payload any) (any, error) {
	return s.bridge.CoreRequest(ctx, method, s.baseURL, s.token, path, payload)
}
