package loan

import "context"

type LoanRepository interface {
	GetByID(ctx context.Context, id string) (Loan, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (Loan, error)
	List(ctx context.Context) ([]Loan, error)
	Create(ctx context.Context, l Loan) (Loan, error)
	// ListMovements returns a loan's history, most recent date first.
	ListMovements(ctx context.Context, loanID string) ([]Movement, error)
	// AppendMovement inserts the movement and applies the balance delta to
	// the loan row. Both writes happen inside the caller's transaction.
	AppendMovement(ctx context.Context, m Movement, loan Loan) error
}
