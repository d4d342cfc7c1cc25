package payroll

import "context"

type PayrollService interface {
	// GenerateRun builds and stores a run for a company and period. All
	// detail totals and the run total are computed here, from the payroll
	// incidents recorded for the period; stored runs are never
	// recalculated or edited.
	GenerateRun(ctx context.Context, req GenerateRunRequest) (RunResponse, error)
	GetRun(ctx context.Context, id string) (RunResponse, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]RunResponse, error)
	DeleteRun(ctx context.Context, id string) error

	CreateIncident(ctx context.Context, req CreateIncidentRequest) (IncidentResponse, error)
	GetIncident(ctx context.Context, id string) (IncidentResponse, error)
	ListIncidents(ctx context.Context, filter IncidentFilter) ([]IncidentResponse, error)
	UpdateIncident(ctx context.Context, req UpdateIncidentRequest) error
	DeleteIncident(ctx context.Context, id string) error
}
