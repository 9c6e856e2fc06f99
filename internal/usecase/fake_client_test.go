package usecase

import (
	"context"
	"errors"
)

// fakeCoreClient returns canned values and records calls.
type fakeCoreClient struct {
	dashboard any
	response  any
	err       error

	approved []string
	rejected []string
	reasons  []string
	executes []bool
}

func (f *fakeCoreClient) DashboardData(_ context.Context) (any, error) {
	return f.dashboard, f.err
}

func (f *fakeCoreClient) ApprovePlan(_ context.Context, planID string, execute bool) (any, error) {
	f.approved = append(f.approved, planID)
	f.executes = append(f.executes, execute)
	return f.response, f.err
}

func (f *fakeCoreClient) RejectPlan(_ context.Context, planID, reason string) (any, error) {
	f.rejected = append(f.rejected, planID)
	f.reasons = append(f.reasons, reason)
	return f.response, f.err
}

func (f *fakeCoreClient) Health(_ context.Context, _ bool) (any, error) {
	return f.response, f.err
}

func (f *fakeCoreClient) Request(_ context.Context, _, _ string, _ any) (any, error) {
	return f.response, f.err
}

var errBoom = errors.New("Core API 500: boom")
