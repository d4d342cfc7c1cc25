package payroll

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/company"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/employee"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/loan"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/payroll"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type stubRunRepo struct {
	runs []payroll.Run
}

func (r *stubRunRepo) GetByID(_ context.Context, id string) (payroll.Run, error) {
	for _, run := range r.runs {
		if run.ID == id {
			return run, nil
		}
	}
	return payroll.Run{}, payroll.ErrRunNotFound
}

func (r *stubRunRepo) List(_ context.Context, _ payroll.RunFilter) ([]payroll.Run, error) {
	return r.runs, nil
}

func (r *stubRunRepo) ExistsForPeriod(_ context.Context, c company.Company, start, end time.Time) (bool, error) {
	for _, run := range r.runs {
		if run.Company == c && run.PeriodStart.Equal(start) && run.PeriodEnd.Equal(end) {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubRunRepo) Create(_ context.Context, run payroll.Run) (payroll.Run, error) {
	run.ID = "run-1"
	run.GeneratedAt = time.Now()
	r.runs = append(r.runs, run)
	return run, nil
}

func (r *stubRunRepo) Delete(_ context.Context, _ string) error { return nil }

type stubEmployeeRepo struct {
	staff []employee.Employee
}

func (r *stubEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, emp := range r.staff {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *stubEmployeeRepo) List(_ context.Context, _ employee.EmployeeFilter) ([]employee.Employee, error) {
	return r.staff, nil
}

func (r *stubEmployeeRepo) GetActiveByCompany(_ context.Context, c company.Company) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range r.staff {
		if emp.Company == c && emp.Active {
			out = append(out, emp)
		}
	}
	return out, nil
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

type stubIncidentRepo struct {
	incidents []payroll.Incident
	nextID    int
}

func (r *stubIncidentRepo) GetByID(_ context.Context, id string) (payroll.Incident, error) {
	for _, inc := range r.incidents {
		if inc.ID == id {
			return inc, nil
		}
	}
	return payroll.Incident{}, payroll.ErrIncidentNotFound
}

func (r *stubIncidentRepo) List(_ context.Context, filter payroll.IncidentFilter) ([]payroll.Incident, error) {
	var out []payroll.Incident
	for _, inc := range r.incidents {
		if filter.EmployeeID != "" && inc.EmployeeID != filter.EmployeeID {
			continue
		}
		out = append(out, inc)
	}
	return out, nil
}

func (r *stubIncidentRepo) ListByEmployeeInPeriod(_ context.Context, employeeID string, from, to time.Time) ([]payroll.Incident, error) {
	var out []payroll.Incident
	for _, inc := range r.incidents {
		if inc.EmployeeID == employeeID && !inc.Period.Before(from) && !inc.Period.After(to) {
			out = append(out, inc)
		}
	}
	return out, nil
}

func (r *stubIncidentRepo) Create(_ context.Context, inc payroll.Incident) (payroll.Incident, error) {
	r.nextID++
	inc.ID = fmt.Sprintf("pinc-%d", r.nextID)
	r.incidents = append(r.incidents, inc)
	return inc, nil
}

func (r *stubIncidentRepo) Update(_ context.Context, req payroll.UpdateIncidentRequest) error {
	for i := range r.incidents {
		if r.incidents[i].ID != req.ID {
			continue
		}
		if req.AbsenceDays != nil {
			r.incidents[i].AbsenceDays = *req.AbsenceDays
		}
		if req.ExtraPay != nil {
			r.incidents[i].ExtraPay = *req.ExtraPay
		}
		return nil
	}
	return payroll.ErrIncidentNotFound
}

func (r *stubIncidentRepo) Delete(_ context.Context, id string) error {
	for i := range r.incidents {
		if r.incidents[i].ID == id {
			r.incidents = append(r.incidents[:i], r.incidents[i+1:]...)
			return nil
		}
	}
	return payroll.ErrIncidentNotFound
}

type stubLoanRepo struct {
	loans map[string]loan.Loan
}

func (r *stubLoanRepo) GetByID(_ context.Context, _ string) (loan.Loan, error) {
	return loan.Loan{}, loan.ErrLoanNotFound
}

func (r *stubLoanRepo) GetByEmployeeID(_ context.Context, employeeID string) (loan.Loan, error) {
	l, ok := r.loans[employeeID]
	if !ok {
		return loan.Loan{}, loan.ErrLoanNotFound
	}
	return l, nil
}

func (r *stubLoanRepo) List(_ context.Context) ([]loan.Loan, error) { return nil, nil }

func (r *stubLoanRepo) Create(_ context.Context, l loan.Loan) (loan.Loan, error) { return l, nil }

func (r *stubLoanRepo) ListMovements(_ context.Context, _ string) ([]loan.Movement, error) {
	return nil, nil
}

func (r *stubLoanRepo) AppendMovement(_ context.Context, _ loan.Movement, _ loan.Loan) error {
	return nil
}

type stubLoanService struct {
	movements []loan.RegisterMovementRequest
}

func (s *stubLoanService) RegisterMovement(_ context.Context, req loan.RegisterMovementRequest) (loan.LoanResponse, error) {
	s.movements = append(s.movements, req)
	return loan.LoanResponse{}, nil
}

func (s *stubLoanService) GetEmployeeLoan(_ context.Context, _ string) (loan.LoanResponse, error) {
	return loan.LoanResponse{}, loan.ErrLoanNotFound
}

func (s *stubLoanService) ListLoans(_ context.Context) ([]loan.LoanResponse, error) {
	return nil, nil
}

func authedContext(t *testing.T) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{"user_id": "usr-1"})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestService(runRepo *stubRunRepo, loans map[string]loan.Loan, loanSvc *stubLoanService,
	incidents []payroll.Incident) payroll.PayrollService {

	staff := []employee.Employee{
		{ID: "emp-1", FullName: "Ana Cruz", Company: company.Genisa, Active: true,
			MonthlyBase: dec("9000"), MonthlyBonus: dec("500")},
		{ID: "emp-2", FullName: "Beto Lara", Company: company.Genisa, Active: true,
			MonthlyBase: dec("6000"), MonthlyBonus: dec("0")},
		{ID: "emp-3", FullName: "Caro Paz", Company: company.Genisa, Active: false,
			MonthlyBase: dec("7000"), MonthlyBonus: dec("0")},
	}

	return NewPayrollService(
		runRepo,
		&stubIncidentRepo{incidents: incidents},
		&stubEmployeeRepo{staff: staff},
		&stubLoanRepo{loans: loans},
		loanSvc,
	)
}

func TestGenerateRunFromStoredIncidents(t *testing.T) {
	runRepo := &stubRunRepo{}
	loanSvc := &stubLoanService{}
	incidents := []payroll.Incident{
		{ID: "pinc-1", EmployeeID: "emp-1", Period: date(2024, 4, 1),
			SanctionDeduction: dec("300")},
		{ID: "pinc-2", EmployeeID: "emp-1", Period: date(2024, 4, 20),
			ExtraPay: dec("250")},
		{ID: "pinc-3", EmployeeID: "emp-1", Period: date(2024, 5, 10),
			SanctionDeduction: dec("999")}, // outside period
		{ID: "pinc-4", EmployeeID: "emp-2", Period: date(2024, 4, 12),
			AbsenceDays: 2, InventoryDeduction: dec("150")},
	}
	svc := newTestService(runRepo, nil, loanSvc, incidents)

	resp, err := svc.GenerateRun(authedContext(t), payroll.GenerateRunRequest{
		Company:     company.Genisa,
		PeriodStart: "2024-04-01",
		PeriodEnd:   "2024-04-30",
	})
	require.NoError(t, err)

	// Inactive staff excluded.
	require.Len(t, resp.Details, 2)
	assert.Equal(t, "usr-1", resp.GeneratedBy)

	byID := map[string]payroll.DetailResponse{}
	for _, d := range resp.Details {
		byID[d.EmployeeID] = d
	}

	// emp-1: 9000 + 500 + 250 - 300 = 9450; the May incident is ignored.
	assert.True(t, dec("250").Equal(byID["emp-1"].ExtraPayments))
	assert.True(t, dec("300").Equal(byID["emp-1"].SanctionDeductions))
	assert.True(t, dec("9450").Equal(byID["emp-1"].NetPay), "got %s", byID["emp-1"].NetPay)

	// emp-2: 6000 - 150 (inventory) - 400 (2 days at 6000/30) = 5450
	assert.True(t, dec("150").Equal(byID["emp-2"].SanctionDeductions))
	assert.True(t, dec("400").Equal(byID["emp-2"].AbsenceDeductions))
	assert.True(t, dec("5450").Equal(byID["emp-2"].NetPay), "got %s", byID["emp-2"].NetPay)

	// Run total is the sum of net pays.
	assert.True(t, dec("14900").Equal(resp.TotalCost), "got %s", resp.TotalCost)
}

func TestGenerateRunDuplicatePeriod(t *testing.T) {
	runRepo := &stubRunRepo{}
	svc := newTestService(runRepo, nil, &stubLoanService{}, nil)
	ctx := authedContext(t)

	req := payroll.GenerateRunRequest{
		Company:     company.Genisa,
		PeriodStart: "2024-04-01",
		PeriodEnd:   "2024-04-30",
	}
	_, err := svc.GenerateRun(ctx, req)
	require.NoError(t, err)

	_, err = svc.GenerateRun(ctx, req)
	assert.ErrorIs(t, err, payroll.ErrRunExists)
}

func TestGenerateRunLoanWithholding(t *testing.T) {
	runRepo := &stubRunRepo{}
	loanSvc := &stubLoanService{}
	loans := map[string]loan.Loan{
		"emp-1": {ID: "loan-1", EmployeeID: "emp-1", CompanyBalance: dec("2000")},
	}
	incidents := []payroll.Incident{
		{ID: "pinc-1", EmployeeID: "emp-1", Period: date(2024, 4, 1),
			LoanDeduction: dec("800")},
	}
	svc := newTestService(runRepo, loans, loanSvc, incidents)

	resp, err := svc.GenerateRun(authedContext(t), payroll.GenerateRunRequest{
		Company:     company.Genisa,
		PeriodStart: "2024-04-01",
		PeriodEnd:   "2024-04-30",
	})
	require.NoError(t, err)

	byID := map[string]payroll.DetailResponse{}
	for _, d := range resp.Details {
		byID[d.EmployeeID] = d
	}
	// emp-1: 9000 + 500 - 800 = 8700
	assert.True(t, dec("800").Equal(byID["emp-1"].LoanDeductions))
	assert.True(t, dec("8700").Equal(byID["emp-1"].NetPay))

	// The withholding shows up in the loan history as an ABONO.
	require.Len(t, loanSvc.movements, 1)
	assert.Equal(t, loan.MovementAbono, loanSvc.movements[0].Type)
	assert.True(t, dec("800").Equal(loanSvc.movements[0].Amount))
}

func TestGenerateRunWithholdingExceedsLoan(t *testing.T) {
	runRepo := &stubRunRepo{}
	loans := map[string]loan.Loan{
		"emp-1": {ID: "loan-1", EmployeeID: "emp-1", CompanyBalance: dec("500")},
	}
	incidents := []payroll.Incident{
		{ID: "pinc-1", EmployeeID: "emp-1", Period: date(2024, 4, 1),
			LoanDeduction: dec("800")},
	}
	svc := newTestService(runRepo, loans, &stubLoanService{}, incidents)

	_, err := svc.GenerateRun(authedContext(t), payroll.GenerateRunRequest{
		Company:     company.Genisa,
		PeriodStart: "2024-04-01",
		PeriodEnd:   "2024-04-30",
	})
	assert.ErrorIs(t, err, loan.ErrRepaymentExceedsDebt)
	assert.Empty(t, runRepo.runs)
}

func TestGenerateRunNoActiveStaff(t *testing.T) {
	svc := newTestService(&stubRunRepo{}, nil, &stubLoanService{}, nil)

	_, err := svc.GenerateRun(authedContext(t), payroll.GenerateRunRequest{
		Company:     company.ColonialPachuca,
		PeriodStart: "2024-04-01",
		PeriodEnd:   "2024-04-30",
	})
	assert.ErrorIs(t, err, payroll.ErrNoActiveStaff)
}

func TestIncidentLifecycle(t *testing.T) {
	svc := newTestService(&stubRunRepo{}, nil, &stubLoanService{}, nil)
	ctx := authedContext(t)

	created, err := svc.CreateIncident(ctx, payroll.CreateIncidentRequest{
		EmployeeID:         "emp-1",
		Period:             "2024-04-01",
		AbsenceDays:        1,
		ExtraPay:           dec("100"),
		LoanDeduction:      dec("0"),
		SanctionDeduction:  dec("50"),
		InventoryDeduction: dec("0"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-04-01", created.Period)
	assert.Equal(t, "Ana Cruz", created.EmployeeName)

	days := 3
	require.NoError(t, svc.UpdateIncident(ctx, payroll.UpdateIncidentRequest{
		ID:          created.ID,
		AbsenceDays: &days,
	}))

	got, err := svc.GetIncident(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.AbsenceDays)

	require.NoError(t, svc.DeleteIncident(ctx, created.ID))
	_, err = svc.GetIncident(ctx, created.ID)
	assert.ErrorIs(t, err, payroll.ErrIncidentNotFound)
}

func TestCreateIncidentValidation(t *testing.T) {
	svc := newTestService(&stubRunRepo{}, nil, &stubLoanService{}, nil)
	ctx := authedContext(t)

	_, err := svc.CreateIncident(ctx, payroll.CreateIncidentRequest{
		EmployeeID: "emp-1",
		Period:     "04/2024",
		ExtraPay:   dec("-5"),
	})
	require.Error(t, err)

	_, err = svc.CreateIncident(ctx, payroll.CreateIncidentRequest{
		EmployeeID: "emp-ghost",
		Period:     "2024-04-01",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
