package sanction

import "context"

type SanctionService interface {
	CreateSanction(ctx context.Context, req CreateSanctionRequest) (SanctionResponse, error)
	GetSanction(ctx context.Context, id string) (SanctionResponse, error)
	ListSanctions(ctx context.Context) ([]SanctionResponse, error)
	ListEmployeeSanctions(ctx context.Context, employeeID string) ([]SanctionResponse, error)
	UpdateSanction(ctx context.Context, req UpdateSanctionRequest) error
	DeleteSanction(ctx context.Context, id string) error
}
