package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/company"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/contract"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/employee"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/inventory"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/loan"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/product"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/report"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/shift"
)

type reportServiceImpl struct {
	employeeRepo  employee.EmployeeRepository
	contractRepo  contract.ContractRepository
	shiftRepo     shift.ShiftRepository
	loanRepo      loan.LoanRepository
	inventoryRepo inventory.ItemRepository
	productRepo   product.ProductRepository
	now           func() time.Time
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	contractRepo contract.ContractRepository,
	shiftRepo shift.ShiftRepository,
	loanRepo loan.LoanRepository,
	inventoryRepo inventory.ItemRepository,
	productRepo product.ProductRepository,
) report.ReportService {
	return &reportServiceImpl{
		employeeRepo:  employeeRepo,
		contractRepo:  contractRepo,
		shiftRepo:     shiftRepo,
		loanRepo:      loanRepo,
		inventoryRepo: inventoryRepo,
		productRepo:   productRepo,
		now:           time.Now,
	}
}

// GetSummary aggregates the figures the dashboard shows on entry. Each
// company gets its own headcount, base cost and alert counts; contract,
// shift and loan totals are group-wide.
func (s *reportServiceImpl) GetSummary(ctx context.Context) (report.Summary, error) {
	summary := report.Summary{OutstandingLoans: decimal.Zero}

	for _, c := range company.All() {
		cs, err := s.companySummary(ctx, c)
		if err != nil {
			return report.Summary{}, err
		}
		summary.Companies = append(summary.Companies, cs)
		summary.TotalEmployees += cs.ActiveEmployees
	}

	contracts, err := s.contractRepo.List(ctx)
	if err != nil {
		return report.Summary{}, err
	}
	now := s.now()
	for _, c := range contracts {
		status, _ := contract.Classify(c.ExpiryDate, now)
		switch status {
		case contract.StatusExpiring:
			summary.ExpiringContracts++
		case contract.StatusExpired:
			summary.ExpiredContracts++
		}
	}

	pending, err := s.shiftRepo.List(ctx, shift.ShiftFilter{Status: shift.StatusPending})
	if err != nil {
		return report.Summary{}, err
	}
	summary.PendingShifts = len(pending)

	loans, err := s.loanRepo.List(ctx)
	if err != nil {
		return report.Summary{}, err
	}
	for _, l := range loans {
		summary.OutstandingLoans = summary.OutstandingLoans.Add(l.Total())
	}

	return summary, nil
}

func (s *reportServiceImpl) companySummary(ctx context.Context, c company.Company) (report.CompanySummary, error) {
	cs := report.CompanySummary{Company: string(c), MonthlyBaseCost: decimal.Zero}

	staff, err := s.employeeRepo.GetActiveByCompany(ctx, c)
	if err != nil {
		return report.CompanySummary{}, err
	}
	cs.ActiveEmployees = len(staff)
	for _, emp := range staff {
		cs.MonthlyBaseCost = cs.MonthlyBaseCost.Add(emp.MonthlyBase)
	}

	lowStock, err := s.inventoryRepo.List(ctx, inventory.ItemFilter{Company: c, BelowMinimum: true})
	if err != nil {
		return report.CompanySummary{}, err
	}
	cs.LowStockItems = len(lowStock)

	products, err := s.productRepo.List(ctx, product.ProductFilter{Company: c})
	if err != nil {
		return report.CompanySummary{}, err
	}
	for _, p := range products {
		if product.MarginBelowThreshold(p.Price, p.Cost) {
			cs.MarginAlerts++
		}
	}

	return cs, nil
}
