package loan

import "context"

type LoanService interface {
	// RegisterMovement appends a movement and updates the affected balance
	// atomically, creating the employee's loan record on first use.
	RegisterMovement(ctx context.Context, req RegisterMovementRequest) (LoanResponse, error)
	GetEmployeeLoan(ctx context.Context, employeeID string) (LoanResponse, error)
	ListLoans(ctx context.Context) ([]LoanResponse, error)
}
