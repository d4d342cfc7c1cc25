package contract

import "context"

type ContractService interface {
	CreateContract(ctx context.Context, req CreateContractRequest) (ContractResponse, error)
	GetContract(ctx context.Context, id string) (ContractResponse, error)
	GetEmployeeContract(ctx context.Context, employeeID string) (ContractResponse, error)
	ListContracts(ctx context.Context) ([]ContractResponse, error)
	// ListExpiring returns contracts already expired or inside the
	// expiring window, for the renewals screen.
	ListExpiring(ctx context.Context) ([]ContractResponse, error)
	UpdateContract(ctx context.Context, req UpdateContractRequest) error
	DeleteContract(ctx context.Context, id string) error
}
