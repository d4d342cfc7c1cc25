package loan

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/company"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/employee"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/loan"
	"github.com/grupo-genisa/erp-backend-go/internal/pkg/database"
)

type stubLoanRepo struct {
	loans     map[string]loan.Loan // keyed by employee id
	movements []loan.Movement
	nextID    int
}

func newStubLoanRepo() *stubLoanRepo {
	return &stubLoanRepo{loans: make(map[string]loan.Loan)}
}

func (r *stubLoanRepo) GetByID(_ context.Context, id string) (loan.Loan, error) {
	for _, l := range r.loans {
		if l.ID == id {
			return l, nil
		}
	}
	return loan.Loan{}, loan.ErrLoanNotFound
}

func (r *stubLoanRepo) GetByEmployeeID(_ context.Context, employeeID string) (loan.Loan, error) {
	l, ok := r.loans[employeeID]
	if !ok {
		return loan.Loan{}, loan.ErrLoanNotFound
	}
	return l, nil
}

func (r *stubLoanRepo) List(_ context.Context) ([]loan.Loan, error) {
	var loans []loan.Loan
	for _, l := range r.loans {
		if !l.Total().IsZero() {
			loans = append(loans, l)
		}
	}
	return loans, nil
}

func (r *stubLoanRepo) Create(_ context.Context, l loan.Loan) (loan.Loan, error) {
	r.nextID++
	l.ID = fmt.Sprintf("loan-%d", r.nextID)
	r.loans[l.EmployeeID] = l
	return l, nil
}

func (r *stubLoanRepo) ListMovements(_ context.Context, loanID string) ([]loan.Movement, error) {
	var movements []loan.Movement
	for _, m := range r.movements {
		if m.LoanID == loanID {
			movements = append(movements, m)
		}
	}
	return movements, nil
}

func (r *stubLoanRepo) AppendMovement(_ context.Context, m loan.Movement, l loan.Loan) error {
	r.movements = append(r.movements, m)
	r.loans[l.EmployeeID] = l
	return nil
}

type stubEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (r *stubEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *stubEmployeeRepo) List(_ context.Context, _ employee.EmployeeFilter) ([]employee.Employee, error) {
	return nil, nil
}

func (r *stubEmployeeRepo) GetActiveByCompany(_ context.Context, _ company.Company) ([]employee.Employee, error) {
	return nil, nil
}

func (r *stubEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (r *stubEmployeeRepo) Update(_ context.Context, _ employee.UpdateEmployeeRequest) error {
	return nil
}

func (r *stubEmployeeRepo) Delete(_ context.Context, _ string) error { return nil }

func (r *stubEmployeeRepo) CountReferences(_ context.Context, _ string) (int64, error) {
	return 0, nil
}

func newTestService(loanRepo *stubLoanRepo) *loanServiceImpl {
	return &loanServiceImpl{
		loanRepo: loanRepo,
		employeeRepo: &stubEmployeeRepo{employees: map[string]employee.Employee{
			"emp-1": {ID: "emp-1", FullName: "Marta Ríos", Company: company.Genisa},
		}},
		runTx: func(ctx context.Context, _ *database.DB, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRegisterMovementCreatesLoanOnFirstCargo(t *testing.T) {
	repo := newStubLoanRepo()
	svc := newTestService(repo)

	resp, err := svc.RegisterMovement(context.Background(), loan.RegisterMovementRequest{
		EmployeeID: "emp-1",
		Date:       "2024-05-10",
		Type:       loan.MovementCargo,
		Account:    loan.AccountCompany,
		Amount:     dec("1500"),
	})
	require.NoError(t, err)

	assert.True(t, dec("1500").Equal(resp.CompanyBalance))
	assert.True(t, resp.PaulinoBalance.IsZero())
	assert.True(t, dec("1500").Equal(resp.Total))
	require.Len(t, repo.movements, 1)
	assert.Equal(t, loan.MovementCargo, repo.movements[0].Type)
}

func TestRegisterMovementKeepsAccountsSeparate(t *testing.T) {
	repo := newStubLoanRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	mustRegister(t, svc, ctx, loan.MovementCargo, loan.AccountCompany, "1000")
	resp := mustRegister(t, svc, ctx, loan.MovementCargo, loan.AccountPaulino, "400")

	assert.True(t, dec("1000").Equal(resp.CompanyBalance))
	assert.True(t, dec("400").Equal(resp.PaulinoBalance))
	assert.True(t, dec("1400").Equal(resp.Total))
}

func TestRegisterMovementAbonoReducesBalance(t *testing.T) {
	repo := newStubLoanRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	mustRegister(t, svc, ctx, loan.MovementCargo, loan.AccountCompany, "1000")
	resp := mustRegister(t, svc, ctx, loan.MovementAbono, loan.AccountCompany, "300")

	assert.True(t, dec("700").Equal(resp.CompanyBalance))
}

func TestRegisterMovementRejectsOverpayment(t *testing.T) {
	repo := newStubLoanRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	mustRegister(t, svc, ctx, loan.MovementCargo, loan.AccountCompany, "500")

	_, err := svc.RegisterMovement(ctx, loan.RegisterMovementRequest{
		EmployeeID: "emp-1",
		Date:       "2024-05-11",
		Type:       loan.MovementAbono,
		Account:    loan.AccountCompany,
		Amount:     dec("501"),
	})
	assert.ErrorIs(t, err, loan.ErrRepaymentExceedsDebt)

	// Balance and history untouched.
	l := repo.loans["emp-1"]
	assert.True(t, dec("500").Equal(l.CompanyBalance))
	assert.Len(t, repo.movements, 1)
}

func TestRegisterMovementAbonoAgainstWrongAccount(t *testing.T) {
	repo := newStubLoanRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	mustRegister(t, svc, ctx, loan.MovementCargo, loan.AccountCompany, "500")

	// The other account has nothing to repay.
	_, err := svc.RegisterMovement(ctx, loan.RegisterMovementRequest{
		EmployeeID: "emp-1",
		Date:       "2024-05-11",
		Type:       loan.MovementAbono,
		Account:    loan.AccountPaulino,
		Amount:     dec("100"),
	})
	assert.ErrorIs(t, err, loan.ErrRepaymentExceedsDebt)
}

func TestRegisterMovementUnknownEmployee(t *testing.T) {
	svc := newTestService(newStubLoanRepo())

	_, err := svc.RegisterMovement(context.Background(), loan.RegisterMovementRequest{
		EmployeeID: "emp-missing",
		Date:       "2024-05-10",
		Type:       loan.MovementCargo,
		Account:    loan.AccountCompany,
		Amount:     dec("100"),
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func mustRegister(t *testing.T, svc *loanServiceImpl, ctx context.Context, typ loan.MovementType, account loan.Account, amount string) loan.LoanResponse {
	t.Helper()
	resp, err := svc.RegisterMovement(ctx, loan.RegisterMovementRequest{
		EmployeeID: "emp-1",
		Date:       time.Now().Format("2006-01-02"),
		Type:       typ,
		Account:    account,
		Amount:     dec(amount),
	})
	require.NoError(t, err)
	return resp
}
