package sanction

import (
	"context"
	"time"
)

type SanctionRepository interface {
	GetByID(ctx context.Context, id string) (Sanction, error)
	List(ctx context.Context) ([]Sanction, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Sanction, error)
	ListByEmployeeInPeriod(ctx context.Context, employeeID string, from, to time.Time) ([]Sanction, error)
	Create(ctx context.Context, s Sanction) (Sanction, error)
	Update(ctx context.Context, req UpdateSanctionRequest) error
	Delete(ctx context.Context, id string) error
}
