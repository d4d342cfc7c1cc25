package contract

import "context"

type ContractRepository interface {
	GetByID(ctx context.Context, id string) (Contract, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (Contract, error)
	List(ctx context.Context) ([]Contract, error)
	// ListExpiringWithin returns contracts whose expiry date falls within
	// the next n calendar days.
	ListExpiringWithin(ctx context.Context, days int) ([]Contract, error)
	Create(ctx context.Context, c Contract) (Contract, error)
	Update(ctx context.Context, req UpdateContractRequest) error
	Delete(ctx context.Context, id string) error
}
