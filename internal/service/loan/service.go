package loan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/employee"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/loan"
	"github.com/grupo-genisa/erp-backend-go/internal/pkg/database"
	"github.com/grupo-genisa/erp-backend-go/internal/repository/postgresql"
)

type loanServiceImpl struct {
	db           *database.DB
	loanRepo     loan.LoanRepository
	employeeRepo employee.EmployeeRepository
	runTx        func(ctx context.Context, db *database.DB, fn func(ctx context.Context) error) error
}

func NewLoanService(db *database.DB, loanRepo loan.LoanRepository, employeeRepo employee.EmployeeRepository) loan.LoanService {
	return &loanServiceImpl{
		db:           db,
		loanRepo:     loanRepo,
		employeeRepo: employeeRepo,
		runTx:        postgresql.WithTransaction,
	}
}

// RegisterMovement is the only way a balance changes. The history insert
// and the balance update commit together or not at all.
func (s *loanServiceImpl) RegisterMovement(ctx context.Context, req loan.RegisterMovementRequest) (loan.LoanResponse, error) {
	if err := req.Validate(); err != nil {
		return loan.LoanResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return loan.LoanResponse{}, err
	}

	var loanID string
	err := s.runTx(ctx, s.db, func(txCtx context.Context) error {
		l, err := s.loanRepo.GetByEmployeeID(txCtx, req.EmployeeID)
		if errors.Is(err, loan.ErrLoanNotFound) {
			l, err = s.loanRepo.Create(txCtx, loan.Loan{EmployeeID: req.EmployeeID})
		}
		if err != nil {
			return err
		}

		balance := l.Balance(req.Account)
		switch req.Type {
		case loan.MovementCargo:
			balance = balance.Add(req.Amount)
		case loan.MovementAbono:
			if req.Amount.GreaterThan(balance) {
				return loan.ErrRepaymentExceedsDebt
			}
			balance = balance.Sub(req.Amount)
		}
		if req.Account == loan.AccountPaulino {
			l.PaulinoBalance = balance
		} else {
			l.CompanyBalance = balance
		}

		date, _ := time.Parse("2006-01-02", req.Date)
		movement := loan.Movement{
			LoanID:  l.ID,
			Date:    date,
			Type:    req.Type,
			Account: req.Account,
			Amount:  req.Amount,
			Notes:   req.Notes,
		}

		loanID = l.ID
		return s.loanRepo.AppendMovement(txCtx, movement, l)
	})
	if err != nil {
		return loan.LoanResponse{}, err
	}

	slog.Info("loan movement registered",
		"employee_id", req.EmployeeID, "type", req.Type, "account", req.Account, "amount", req.Amount)

	l, err := s.loanRepo.GetByID(ctx, loanID)
	if err != nil {
		return loan.LoanResponse{}, fmt.Errorf("reload loan: %w", err)
	}
	return s.toResponse(ctx, l, true)
}

func (s *loanServiceImpl) GetEmployeeLoan(ctx context.Context, employeeID string) (loan.LoanResponse, error) {
	l, err := s.loanRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return loan.LoanResponse{}, err
	}
	return s.toResponse(ctx, l, true)
}

func (s *loanServiceImpl) ListLoans(ctx context.Context) ([]loan.LoanResponse, error) {
	loans, err := s.loanRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]loan.LoanResponse, 0, len(loans))
	for _, l := range loans {
		resp, err := s.toResponse(ctx, l, false)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *loanServiceImpl) toResponse(ctx context.Context, l loan.Loan, withMovements bool) (loan.LoanResponse, error) {
	resp := loan.LoanResponse{
		ID:             l.ID,
		EmployeeID:     l.EmployeeID,
		CompanyBalance: l.CompanyBalance,
		PaulinoBalance: l.PaulinoBalance,
		Total:          l.Total(),
	}
	if emp, err := s.employeeRepo.GetByID(ctx, l.EmployeeID); err == nil {
		resp.EmployeeName = emp.FullName
	}

	if withMovements {
		movements, err := s.loanRepo.ListMovements(ctx, l.ID)
		if err != nil {
			return loan.LoanResponse{}, err
		}
		for _, m := range movements {
			resp.Movements = append(resp.Movements, loan.MovementResponse{
				ID:      m.ID,
				Date:    m.Date.Format("2006-01-02"),
				Type:    m.Type,
				Account: m.Account,
				Amount:  m.Amount,
				Notes:   m.Notes,
			})
		}
	}
	return resp, nil
}
