package master

import (
	"context"
	"log/slog"
	"time"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/company"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/master"
)

type masterServiceImpl struct {
	positionRepo master.PositionRepository
	accountRepo  master.AccountRepository
}

func NewMasterService(positionRepo master.PositionRepository, accountRepo master.AccountRepository) master.MasterService {
	return &masterServiceImpl{
		positionRepo: positionRepo,
		accountRepo:  accountRepo,
	}
}

func (s *masterServiceImpl) CreatePosition(ctx context.Context, req master.CreatePositionRequest) (master.PositionResponse, error) {
	if err := req.Validate(); err != nil {
		return master.PositionResponse{}, err
	}

	created, err := s.positionRepo.Create(ctx, master.Position{Name: req.Name, BaseSalary: req.BaseSalary})
	if err != nil {
		return master.PositionResponse{}, err
	}

	slog.Info("position created", "position_id", created.ID, "name", created.Name)
	return toPositionResponse(created), nil
}

func (s *masterServiceImpl) ListPositions(ctx context.Context) ([]master.PositionResponse, error) {
	positions, err := s.positionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]master.PositionResponse, 0, len(positions))
	for _, p := range positions {
		responses = append(responses, toPositionResponse(p))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdatePosition(ctx context.Context, req master.UpdatePositionRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if _, err := s.positionRepo.GetByID(ctx, req.ID); err != nil {
		return err
	}

	if err := s.positionRepo.Update(ctx, req); err != nil {
		return err
	}

	slog.Info("position updated", "position_id", req.ID)
	return nil
}

// DeletePosition refuses to remove a position that any employee still holds.
func (s *masterServiceImpl) DeletePosition(ctx context.Context, id string) error {
	position, err := s.positionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.positionRepo.CountEmployeeReferences(ctx, position.Name)
	if err != nil {
		return err
	}
	if count > 0 {
		return master.ErrPositionReferenced
	}

	if err := s.positionRepo.Delete(ctx, id); err != nil {
		return err
	}

	slog.Info("position deleted", "position_id", id, "name", position.Name)
	return nil
}

func (s *masterServiceImpl) CreateAccount(ctx context.Context, req master.CreateAccountRequest) (master.AccountResponse, error) {
	if err := req.Validate(); err != nil {
		return master.AccountResponse{}, err
	}

	created, err := s.accountRepo.Create(ctx, master.Account{
		Name:    req.Name,
		Company: req.Company,
		Type:    req.Type,
		Balance: req.Balance,
	})
	if err != nil {
		return master.AccountResponse{}, err
	}

	slog.Info("account created", "account_id", created.ID, "company", created.Company)
	return s.toAccountResponse(ctx, created, false)
}

func (s *masterServiceImpl) GetAccount(ctx context.Context, id string) (master.AccountResponse, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return master.AccountResponse{}, err
	}
	return s.toAccountResponse(ctx, account, true)
}

func (s *masterServiceImpl) ListAccounts(ctx context.Context, c company.Company) ([]master.AccountResponse, error) {
	accounts, err := s.accountRepo.List(ctx, c)
	if err != nil {
		return nil, err
	}

	responses := make([]master.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		resp, err := s.toAccountResponse(ctx, a, false)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// RegisterAccountMovement appends a history entry and moves the balance:
// CARGO adds, ABONO subtracts. Balances may go negative; these accounts
// track money owed in both directions.
func (s *masterServiceImpl) RegisterAccountMovement(ctx context.Context, req master.RegisterAccountMovementRequest) (master.AccountResponse, error) {
	if err := req.Validate(); err != nil {
		return master.AccountResponse{}, err
	}

	account, err := s.accountRepo.GetByID(ctx, req.AccountID)
	if err != nil {
		return master.AccountResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	movement := master.AccountMovement{
		AccountID: account.ID,
		Date:      date,
		Type:      req.Type,
		Amount:    req.Amount,
		Concept:   req.Concept,
	}

	switch req.Type {
	case master.AccountMovementCargo:
		account.Balance = account.Balance.Add(req.Amount)
	case master.AccountMovementAbono:
		account.Balance = account.Balance.Sub(req.Amount)
	}

	if err := s.accountRepo.AppendMovement(ctx, movement, account); err != nil {
		return master.AccountResponse{}, err
	}

	slog.Info("account movement registered",
		"account_id", account.ID, "type", req.Type, "amount", req.Amount)

	updated, err := s.accountRepo.GetByID(ctx, account.ID)
	if err != nil {
		return master.AccountResponse{}, err
	}
	return s.toAccountResponse(ctx, updated, true)
}

// GetAccountSummary totals current balances per account type, optionally
// narrowed to one company.
func (s *masterServiceImpl) GetAccountSummary(ctx context.Context, c company.Company) (master.AccountSummary, error) {
	accounts, err := s.accountRepo.List(ctx, c)
	if err != nil {
		return master.AccountSummary{}, err
	}

	summary := master.AccountSummary{Company: c, AccountCount: len(accounts)}
	for _, a := range accounts {
		switch a.Type {
		case master.AccountIncome:
			summary.TotalIncome = summary.TotalIncome.Add(a.Balance)
		case master.AccountExpense:
			summary.TotalExpense = summary.TotalExpense.Add(a.Balance)
		case master.AccountCurrent:
			summary.TotalCurrent = summary.TotalCurrent.Add(a.Balance)
		}
	}
	return summary, nil
}

func (s *masterServiceImpl) DeleteAccount(ctx context.Context, id string) error {
	if _, err := s.accountRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.accountRepo.Delete(ctx, id)
}

func (s *masterServiceImpl) GetMasterData(ctx context.Context) (master.MasterData, error) {
	positions, err := s.ListPositions(ctx)
	if err != nil {
		return master.MasterData{}, err
	}

	companies := make([]string, 0, len(company.All()))
	for _, c := range company.All() {
		companies = append(companies, string(c))
	}

	return master.MasterData{
		Positions: positions,
		Companies: companies,
	}, nil
}

func toPositionResponse(p master.Position) master.PositionResponse {
	return master.PositionResponse{ID: p.ID, Name: p.Name, BaseSalary: p.BaseSalary}
}

func (s *masterServiceImpl) toAccountResponse(ctx context.Context, a master.Account, withMovements bool) (master.AccountResponse, error) {
	resp := master.AccountResponse{
		ID:      a.ID,
		Name:    a.Name,
		Company: a.Company,
		Type:    a.Type,
		Balance: a.Balance,
	}
	if !withMovements {
		return resp, nil
	}

	movements, err := s.accountRepo.ListMovements(ctx, a.ID)
	if err != nil {
		return master.AccountResponse{}, err
	}
	for _, m := range movements {
		resp.Movements = append(resp.Movements, master.AccountMovementResponse{
			ID:      m.ID,
			Date:    m.Date.Format("2006-01-02"),
			Type:    m.Type,
			Amount:  m.Amount,
			Concept: m.Concept,
		})
	}
	return resp, nil
}
