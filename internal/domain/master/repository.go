package master

import (
	"context"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/company"
)

type PositionRepository interface {
	GetByID(ctx context.Context, id string) (Position, error)
	List(ctx context.Context) ([]Position, error)
	Create(ctx context.Context, p Position) (Position, error)
	Update(ctx context.Context, req UpdatePositionRequest) error
	Delete(ctx context.Context, id string) error
	CountEmployeeReferences(ctx context.Context, name string) (int, error)
}

type AccountRepository interface {
	GetByID(ctx context.Context, id string) (Account, error)
	List(ctx context.Context, c company.Company) ([]Account, error)
	Create(ctx context.Context, a Account) (Account, error)
	Delete(ctx context.Context, id string) error
	// ListMovements returns an account's history, most recent date first.
	ListMovements(ctx context.Context, accountID string) ([]AccountMovement, error)
	// AppendMovement inserts the movement and applies the balance delta
	// to the account row inside one transaction.
	AppendMovement(ctx context.Context, m AccountMovement, a Account) error
}
