package domain

// Health is the core service health summary included in dashboard data.
type Health struct {
	OK      bool
	Service string
}

// Plan is a remote entity subject to approve/reject actions. Its semantics
// are owned by the core API; this is a read-only operator view.
type Plan struct {
	ID        string
	Status    string
	Objective string
}

// Job is a background execution tracked by the core API.
type Job struct {
	ID     string
	Status string
}

// Event is a single audit trail entry.
type Event struct {
	ID       int64
	Category string
	Action   string
}

// Dashboard is the operator view decoded from the core dashboard payload.
// Fields absent from the payload stay at their zero values.
type Dashboard struct {
	Health      Health
	ModelsCount int
	Plans       []Plan
	Jobs        []Job
	Events      []Event
}

// PendingPlans returns the plans still awaiting an operator decision.
func (d Dashboard) PendingPlans() []Plan {
	out := make([]Plan, 0, len(d.Plans))
	for _, p := range d.Plans {
		if p.Status == "pending" {
			out = append(out, p)
		}
	}
	return out
}
