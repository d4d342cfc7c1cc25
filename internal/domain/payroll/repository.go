package payroll

import (
	"context"
	"time"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/company"
)

type RunRepository interface {
	GetByID(ctx context.Context, id string) (Run, error)
	List(ctx context.Context, filter RunFilter) ([]Run, error)
	ExistsForPeriod(ctx context.Context, c company.Company, start, end time.Time) (bool, error)
	// Create stores the run and every detail in a single transaction.
	Create(ctx context.Context, run Run) (Run, error)
	Delete(ctx context.Context, id string) error
}

type IncidentRepository interface {
	GetByID(ctx context.Context, id string) (Incident, error)
	List(ctx context.Context, filter IncidentFilter) ([]Incident, error)
	ListByEmployeeInPeriod(ctx context.Context, employeeID string, from, to time.Time) ([]Incident, error)
	Create(ctx context.Context, inc Incident) (Incident, error)
	Update(ctx context.Context, req UpdateIncidentRequest) error
	Delete(ctx context.Context, id string) error
}
