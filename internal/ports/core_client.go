package ports

import "context"

// CoreClient is a bound view of the core API bridge: base URL and token are
// fixed at construction so UI layers only deal with operations.
type CoreClient interface {
	DashboardData(ctx context.Context) (any, error)
	ApprovePlan(ctx context.Context, planID string, execute bool) (any, error)
	RejectPlan(ctx context.Context, planID, reason string) (any, error)
	Health(ctx context.Context, deep bool) (any, error)
	Request(ctx context.Context, method, path string, payload any) (any, error)
}
