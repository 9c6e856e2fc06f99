package usecase

import (
	"context"
	"encoding/json"

	"github.com/opsdeck/opsdeck/internal/domain"
	"github.com/opsdeck/opsdeck/internal/ports"
)

// LoadDashboard fetches the core dashboard snapshot and maps it into the
// typed operator view. Missing payload fields decode to zero values; the
// core owns the schema and older cores may omit sections.
type LoadDashboard struct {
	client ports.CoreClient
}

func NewLoadDashboard(client ports.CoreClient) *LoadDashboard {
	return &LoadDashboard{client: client}
}

func (uc *LoadDashboard) Execute(ctx context.Context) (domain.Dashboard, error) {
	raw, err := uc.client.DashboardData(ctx)
	if err != nil {
		return domain.Dashboard{}, err
	}
	return decodeDashboard(raw)
}

type healthDTO struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
}

type planDTO struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	Objective string `json:"objective"`
}

type jobDTO struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type eventDTO struct {
	ID       int64  `json:"id"`
	Category string `json:"category"`
	Action   string `json:"action"`
}

type dashboardDTO struct {
	Health      healthDTO  `json:"health"`
	ModelsCount int        `json:"models_count"`
	Plans       []planDTO  `json:"plans"`
	Jobs        []jobDTO   `json:"jobs"`
	Events      []eventDTO `json:"events"`
}

func decodeDashboard(raw any) (domain.Dashboard, error) {
	b, err := json.Marshal(raw)
	if err != nil {
		return domain.Dashboard{}, &domain.OpError{
			Op:   "usecase.load_dashboard",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	var dto dashboardDTO
	if err := json.Unmarshal(b, &dto); err != nil {
		return domain.Dashboard{}, &domain.OpError{
			Op:   "usecase.load_dashboard",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	out := domain.Dashboard{
		Health:      domain.Health{OK: dto.Health.OK, Service: dto.Health.Service},
		ModelsCount: dto.ModelsCount,
		Plans:       make([]domain.Plan, 0, len(dto.Plans)),
		Jobs:        make([]domain.Job, 0, len(dto.Jobs)),
		Events:      make([]domain.Event, 0, len(dto.Events)),
	}
	for _, p := range dto.Plans {
		out.Plans = append(out.Plans, domain.Plan{ID: p.ID, Status: p.Status, Objective: p.Objective})
	}
	for _, j := range dto.Jobs {
		out.Jobs = append(out.Jobs, domain.Job{ID: j.ID, Status: j.Status})
	}
	for _, e := range dto.Events {
		out.Events = append(out.Events, domain.Event{ID: e.ID, Category: e.Category, Action: e.Action})
	}
	return out, nil
}
