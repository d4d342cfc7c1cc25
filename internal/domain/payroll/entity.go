package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/company"
)

// Run is a payroll generated for one company and period. Once stored, a
// run is never edited; corrections mean deleting and regenerating.
type Run struct {
	ID          string
	Company     company.Company
	PeriodStart time.Time
	PeriodEnd   time.Time
	TotalCost   decimal.Decimal
	GeneratedBy string
	GeneratedAt time.Time
	Details     []Detail
}

// Detail is one employee's line in a run. Every total is computed when
// the run is built; there are no setters that could desynchronize them.
type Detail struct {
	ID                 string
	RunID              string
	EmployeeID         string
	EmployeeName       string
	BaseSalary         decimal.Decimal
	Bonuses            decimal.Decimal
	ExtraPayments      decimal.Decimal
	LoanDeductions     decimal.Decimal
	SanctionDeductions decimal.Decimal
	AbsenceDeductions  decimal.Decimal
	TotalDeductions    decimal.Decimal
	NetPay             decimal.Decimal
}
