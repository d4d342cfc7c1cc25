package incident

import "context"

type IncidentRepository interface {
	GetByID(ctx context.Context, id string) (Incident, error)
	List(ctx context.Context) ([]Incident, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Incident, error)
	Create(ctx context.Context, inc Incident) (Incident, error)
	Update(ctx context.Context, req UpdateIncidentRequest) error
	Delete(ctx context.Context, id string) error
}
