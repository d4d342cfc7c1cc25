package master

import (
	"context"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/company"
)

type MasterService interface {
	// Positions
	CreatePosition(ctx context.Context, req CreatePositionRequest) (PositionResponse, error)
	ListPositions(ctx context.Context) ([]PositionResponse, error)
	UpdatePosition(ctx context.Context, req UpdatePositionRequest) error
	DeletePosition(ctx context.Context, id string) error

	// Accounts
	CreateAccount(ctx context.Context, req CreateAccountRequest) (AccountResponse, error)
	GetAccount(ctx context.Context, id string) (AccountResponse, error)
	ListAccounts(ctx context.Context, c company.Company) ([]AccountResponse, error)
	RegisterAccountMovement(ctx context.Context, req RegisterAccountMovementRequest) (AccountResponse, error)
	GetAccountSummary(ctx context.Context, c company.Company) (AccountSummary, error)
	DeleteAccount(ctx context.Context, id string) error

	// Bundled catalogs
	GetMasterData(ctx context.Context) (MasterData, error)
}
