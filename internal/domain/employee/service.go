package employee

import "context"

type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	// GetEmployeeDetails assembles the employee with their contract, loan,
	// sanctions and incidents.
	GetEmployeeDetails(ctx context.Context, id string) (EmployeeDetailsResponse, error)
	ListEmployees(ctx context.Context, filter EmployeeFilter) ([]EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) error
	// DeleteEmployee refuses to delete while attendance, loans, sanctions,
	// incidents or payroll details still reference the employee.
	DeleteEmployee(ctx context.Context, id string) error
	DeactivateEmployee(ctx context.Context, id string) error
}
