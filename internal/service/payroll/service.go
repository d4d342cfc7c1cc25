package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/employee"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/loan"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/payroll"
)

type payrollServiceImpl struct {
	payrollRepo  payroll.RunRepository
	incidentRepo payroll.IncidentRepository
	employeeRepo employee.EmployeeRepository
	loanRepo     loan.LoanRepository
	loanService  loan.LoanService
}

func NewPayrollService(
	payrollRepo payroll.RunRepository,
	incidentRepo payroll.IncidentRepository,
	employeeRepo employee.EmployeeRepository,
	loanRepo loan.LoanRepository,
	loanService loan.LoanService,
) payroll.PayrollService {
	return &payrollServiceImpl{
		payrollRepo:  payrollRepo,
		incidentRepo: incidentRepo,
		employeeRepo: employeeRepo,
		loanRepo:     loanRepo,
		loanService:  loanService,
	}
}

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("extract claims: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing")
	}
	return userID, nil
}

// employeeFigures is one employee's payroll incidents aggregated over a
// run's period.
type employeeFigures struct {
	absenceDays  int
	extraPay     decimal.Decimal
	loanDed      decimal.Decimal
	sanctionDed  decimal.Decimal
	inventoryDed decimal.Decimal
}

// GenerateRun builds one detail per active employee of the company. All
// figures come from the payroll incidents recorded for the period; every
// total is computed here and stored as-is, and a run is never
// recalculated.
func (s *payrollServiceImpl) GenerateRun(ctx context.Context, req payroll.GenerateRunRequest) (payroll.RunResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RunResponse{}, err
	}

	generatedBy, err := userIDFromContext(ctx)
	if err != nil {
		return payroll.RunResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.PeriodStart)
	end, _ := time.Parse("2006-01-02", req.PeriodEnd)

	exists, err := s.payrollRepo.ExistsForPeriod(ctx, req.Company, start, end)
	if err != nil {
		return payroll.RunResponse{}, err
	}
	if exists {
		return payroll.RunResponse{}, payroll.ErrRunExists
	}

	staff, err := s.employeeRepo.GetActiveByCompany(ctx, req.Company)
	if err != nil {
		return payroll.RunResponse{}, err
	}
	if len(staff) == 0 {
		return payroll.RunResponse{}, payroll.ErrNoActiveStaff
	}

	figures := make(map[string]employeeFigures, len(staff))
	for _, emp := range staff {
		f, err := s.aggregateIncidents(ctx, emp.ID, start, end)
		if err != nil {
			return payroll.RunResponse{}, err
		}
		figures[emp.ID] = f
	}

	// Loan withholdings are checked against balances before anything is
	// written, so a run never records a deduction the loan cannot absorb.
	for _, emp := range staff {
		f := figures[emp.ID]
		if f.loanDed.IsPositive() {
			l, err := s.loanRepo.GetByEmployeeID(ctx, emp.ID)
			if err != nil {
				if errors.Is(err, loan.ErrLoanNotFound) {
					return payroll.RunResponse{}, loan.ErrRepaymentExceedsDebt
				}
				return payroll.RunResponse{}, err
			}
			if f.loanDed.GreaterThan(l.Balance(loan.AccountCompany)) {
				return payroll.RunResponse{}, loan.ErrRepaymentExceedsDebt
			}
		}
	}

	details := make([]payroll.Detail, 0, len(staff))
	for _, emp := range staff {
		f := figures[emp.ID]
		details = append(details, payroll.BuildDetail(payroll.DetailInput{
			EmployeeID:     emp.ID,
			EmployeeName:   emp.FullName,
			BaseSalary:     emp.MonthlyBase,
			Bonuses:        emp.MonthlyBonus,
			ExtraPayments:  f.extraPay,
			LoanDeductions: f.loanDed,
			// Inventory charges land in the same penalty bucket as
			// sanctions.
			SanctionDeductions: f.sanctionDed.Add(f.inventoryDed),
			AbsenceDeductions:  payroll.AbsenceDeduction(emp.MonthlyBase, f.absenceDays),
		}))
	}

	run := payroll.Run{
		Company:     req.Company,
		PeriodStart: start,
		PeriodEnd:   end,
		TotalCost:   payroll.TotalCost(details),
		GeneratedBy: generatedBy,
		Details:     details,
	}

	created, err := s.payrollRepo.Create(ctx, run)
	if err != nil {
		return payroll.RunResponse{}, err
	}

	// Withheld loan amounts become ABONO movements so the loan history
	// matches what payroll deducted.
	for _, emp := range staff {
		f := figures[emp.ID]
		if !f.loanDed.IsPositive() {
			continue
		}
		_, err := s.loanService.RegisterMovement(ctx, loan.RegisterMovementRequest{
			EmployeeID: emp.ID,
			Date:       req.PeriodEnd,
			Type:       loan.MovementAbono,
			Account:    loan.AccountCompany,
			Amount:     f.loanDed,
			Notes:      "Descuento por nómina",
		})
		if err != nil {
			slog.Error("loan movement for payroll deduction failed",
				"employee_id", emp.ID, "run_id", created.ID, "error", err)
		}
	}

	slog.Info("payroll run generated",
		"run_id", created.ID, "company", created.Company, "employees", len(details), "total_cost", created.TotalCost)
	return toRunResponse(created, true), nil
}

func (s *payrollServiceImpl) aggregateIncidents(ctx context.Context, employeeID string, start, end time.Time) (employeeFigures, error) {
	incidents, err := s.incidentRepo.ListByEmployeeInPeriod(ctx, employeeID, start, end)
	if err != nil {
		return employeeFigures{}, err
	}

	f := employeeFigures{
		extraPay:     decimal.Zero,
		loanDed:      decimal.Zero,
		sanctionDed:  decimal.Zero,
		inventoryDed: decimal.Zero,
	}
	for _, inc := range incidents {
		f.absenceDays += inc.AbsenceDays
		f.extraPay = f.extraPay.Add(inc.ExtraPay)
		f.loanDed = f.loanDed.Add(inc.LoanDeduction)
		f.sanctionDed = f.sanctionDed.Add(inc.SanctionDeduction)
		f.inventoryDed = f.inventoryDed.Add(inc.InventoryDeduction)
	}
	return f, nil
}

func (s *payrollServiceImpl) GetRun(ctx context.Context, id string) (payroll.RunResponse, error) {
	run, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.RunResponse{}, err
	}
	return toRunResponse(run, true), nil
}

func (s *payrollServiceImpl) ListRuns(ctx context.Context, filter payroll.RunFilter) ([]payroll.RunResponse, error) {
	runs, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.RunResponse, 0, len(runs))
	for _, run := range runs {
		responses = append(responses, toRunResponse(run, false))
	}
	return responses, nil
}

func (s *payrollServiceImpl) DeleteRun(ctx context.Context, id string) error {
	if _, err := s.payrollRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.payrollRepo.Delete(ctx, id)
}

func (s *payrollServiceImpl) CreateIncident(ctx context.Context, req payroll.CreateIncidentRequest) (payroll.IncidentResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.IncidentResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return payroll.IncidentResponse{}, err
	}

	period, _ := time.Parse("2006-01-02", req.Period)
	created, err := s.incidentRepo.Create(ctx, payroll.Incident{
		EmployeeID:         req.EmployeeID,
		Period:             period,
		AbsenceDays:        req.AbsenceDays,
		ExtraPay:           req.ExtraPay,
		LoanDeduction:      req.LoanDeduction,
		SanctionDeduction:  req.SanctionDeduction,
		InventoryDeduction: req.InventoryDeduction,
	})
	if err != nil {
		return payroll.IncidentResponse{}, err
	}
	return s.toIncidentResponse(ctx, created), nil
}

func (s *payrollServiceImpl) GetIncident(ctx context.Context, id string) (payroll.IncidentResponse, error) {
	inc, err := s.incidentRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.IncidentResponse{}, err
	}
	return s.toIncidentResponse(ctx, inc), nil
}

func (s *payrollServiceImpl) ListIncidents(ctx context.Context, filter payroll.IncidentFilter) ([]payroll.IncidentResponse, error) {
	incidents, err := s.incidentRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.IncidentResponse, 0, len(incidents))
	for _, inc := range incidents {
		responses = append(responses, s.toIncidentResponse(ctx, inc))
	}
	return responses, nil
}

func (s *payrollServiceImpl) UpdateIncident(ctx context.Context, req payroll.UpdateIncidentRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if _, err := s.incidentRepo.GetByID(ctx, req.ID); err != nil {
		return err
	}
	return s.incidentRepo.Update(ctx, req)
}

func (s *payrollServiceImpl) DeleteIncident(ctx context.Context, id string) error {
	return s.incidentRepo.Delete(ctx, id)
}

func (s *payrollServiceImpl) toIncidentResponse(ctx context.Context, inc payroll.Incident) payroll.IncidentResponse {
	resp := payroll.IncidentResponse{
		ID:                 inc.ID,
		EmployeeID:         inc.EmployeeID,
		Period:             inc.Period.Format("2006-01-02"),
		AbsenceDays:        inc.AbsenceDays,
		ExtraPay:           inc.ExtraPay,
		LoanDeduction:      inc.LoanDeduction,
		SanctionDeduction:  inc.SanctionDeduction,
		InventoryDeduction: inc.InventoryDeduction,
	}
	if emp, err := s.employeeRepo.GetByID(ctx, inc.EmployeeID); err == nil {
		resp.EmployeeName = emp.FullName
	}
	return resp
}

func toRunResponse(run payroll.Run, withDetails bool) payroll.RunResponse {
	resp := payroll.RunResponse{
		ID:          run.ID,
		Company:     run.Company,
		PeriodStart: run.PeriodStart.Format("2006-01-02"),
		PeriodEnd:   run.PeriodEnd.Format("2006-01-02"),
		TotalCost:   run.TotalCost,
		GeneratedBy: run.GeneratedBy,
		GeneratedAt: run.GeneratedAt.Format(time.RFC3339),
	}
	if !withDetails {
		return resp
	}
	for _, d := range run.Details {
		resp.Details = append(resp.Details, payroll.DetailResponse{
			ID:                 d.ID,
			EmployeeID:         d.EmployeeID,
			EmployeeName:       d.EmployeeName,
			BaseSalary:         d.BaseSalary,
			Bonuses:            d.Bonuses,
			ExtraPayments:      d.ExtraPayments,
			LoanDeductions:     d.LoanDeductions,
			SanctionDeductions: d.SanctionDeductions,
			AbsenceDeductions:  d.AbsenceDeductions,
			TotalDeductions:    d.TotalDeductions,
			NetPay:             d.NetPay,
		})
	}
	return resp
}
