package incident

import "context"

type IncidentService interface {
	CreateIncident(ctx context.Context, req CreateIncidentRequest) (IncidentResponse, error)
	// Reads are scoped: callers without the incident management
	// permission only see their own incidents.
	GetIncident(ctx context.Context, id string) (IncidentResponse, error)
	ListIncidents(ctx context.Context) ([]IncidentResponse, error)
	ListEmployeeIncidents(ctx context.Context, employeeID string) ([]IncidentResponse, error)
	UpdateIncident(ctx context.Context, req UpdateIncidentRequest) error
	DeleteIncident(ctx context.Context, id string) error
}
