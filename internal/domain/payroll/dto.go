package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/company"
	"github.com/grupo-genisa/erp-backend-go/internal/pkg/validator"
)

type GenerateRunRequest struct {
	Company     company.Company `json:"company"`
	PeriodStart string          `json:"period_start"`
	PeriodEnd   string          `json:"period_end"`
}

func (r *GenerateRunRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Company.IsValid() {
		errs = append(errs, validator.ValidationError{Field: "company", Message: "unknown company"})
	}
	start, okStart := validator.IsValidDate(r.PeriodStart)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "period start must be YYYY-MM-DD"})
	}
	end, okEnd := validator.IsValidDate(r.PeriodEnd)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "period end must be YYYY-MM-DD"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "period end must not precede period start"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RunFilter struct {
	Company company.Company
	Year    int
}

type DetailResponse struct {
	ID                 string          `json:"id"`
	EmployeeID         string          `json:"employee_id"`
	EmployeeName       string          `json:"employee_name"`
	BaseSalary         decimal.Decimal `json:"base_salary"`
	Bonuses            decimal.Decimal `json:"bonuses"`
	ExtraPayments      decimal.Decimal `json:"extra_payments"`
	LoanDeductions     decimal.Decimal `json:"loan_deductions"`
	SanctionDeductions decimal.Decimal `json:"sanction_deductions"`
	AbsenceDeductions  decimal.Decimal `json:"absence_deductions"`
	TotalDeductions    decimal.Decimal `json:"total_deductions"`
	NetPay             decimal.Decimal `json:"net_pay"`
}

type RunResponse struct {
	ID          string           `json:"id"`
	Company     company.Company  `json:"company"`
	PeriodStart string           `json:"period_start"`
	PeriodEnd   string           `json:"period_end"`
	TotalCost   decimal.Decimal  `json:"total_cost"`
	GeneratedBy string           `json:"generated_by"`
	GeneratedAt string           `json:"generated_at"`
	Details     []DetailResponse `json:"details,omitempty"`
}
