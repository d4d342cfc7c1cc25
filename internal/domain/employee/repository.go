package employee

import (
	"context"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/company"
)

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)
	GetActiveByCompany(ctx context.Context, c company.Company) ([]Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
	Delete(ctx context.Context, id string) error
	// CountReferences counts child rows (contracts, loans, sanctions,
	// shifts, attendance) still pointing at the employee.
	CountReferences(ctx context.Context, id string) (int64, error)
}
