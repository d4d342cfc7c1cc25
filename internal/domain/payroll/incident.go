package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/grupo-genisa/erp-backend-go/internal/pkg/validator"
)

// Incident is one employee's payroll figures for a period: days missed,
// one-off extra pay, and the amounts withheld against their loan,
// sanctions and inventory charges. Run generation aggregates these per
// employee over the run's period.
type Incident struct {
	ID                 string
	EmployeeID         string
	Period             time.Time
	AbsenceDays        int
	ExtraPay           decimal.Decimal
	LoanDeduction      decimal.Decimal
	SanctionDeduction  decimal.Decimal
	InventoryDeduction decimal.Decimal
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type CreateIncidentRequest struct {
	EmployeeID         string          `json:"employee_id"`
	Period             string          `json:"period"`
	AbsenceDays        int             `json:"absence_days"`
	ExtraPay           decimal.Decimal `json:"extra_pay"`
	LoanDeduction      decimal.Decimal `json:"loan_deduction"`
	SanctionDeduction  decimal.Decimal `json:"sanction_deduction"`
	InventoryDeduction decimal.Decimal `json:"inventory_deduction"`
}

func (r *CreateIncidentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee id is required"})
	}
	if _, ok := validator.IsValidDate(r.Period); !ok {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "period must be YYYY-MM-DD"})
	}
	if r.AbsenceDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "absence_days", Message: "absence days must not be negative"})
	}
	for field, amount := range map[string]decimal.Decimal{
		"extra_pay":           r.ExtraPay,
		"loan_deduction":      r.LoanDeduction,
		"sanction_deduction":  r.SanctionDeduction,
		"inventory_deduction": r.InventoryDeduction,
	} {
		if !validator.IsNonNegative(amount) {
			errs = append(errs, validator.ValidationError{Field: field, Message: "amount must not be negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateIncidentRequest struct {
	ID                 string           `json:"-"`
	Period             *string          `json:"period,omitempty"`
	AbsenceDays        *int             `json:"absence_days,omitempty"`
	ExtraPay           *decimal.Decimal `json:"extra_pay,omitempty"`
	LoanDeduction      *decimal.Decimal `json:"loan_deduction,omitempty"`
	SanctionDeduction  *decimal.Decimal `json:"sanction_deduction,omitempty"`
	InventoryDeduction *decimal.Decimal `json:"inventory_deduction,omitempty"`
}

func (r *UpdateIncidentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Period != nil {
		if _, ok := validator.IsValidDate(*r.Period); !ok {
			errs = append(errs, validator.ValidationError{Field: "period", Message: "period must be YYYY-MM-DD"})
		}
	}
	if r.AbsenceDays != nil && *r.AbsenceDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "absence_days", Message: "absence days must not be negative"})
	}
	for field, amount := range map[string]*decimal.Decimal{
		"extra_pay":           r.ExtraPay,
		"loan_deduction":      r.LoanDeduction,
		"sanction_deduction":  r.SanctionDeduction,
		"inventory_deduction": r.InventoryDeduction,
	} {
		if amount != nil && !validator.IsNonNegative(*amount) {
			errs = append(errs, validator.ValidationError{Field: field, Message: "amount must not be negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type IncidentFilter struct {
	EmployeeID string
}

type IncidentResponse struct {
	ID                 string          `json:"id"`
	EmployeeID         string          `json:"employee_id"`
	EmployeeName       string          `json:"employee_name,omitempty"`
	Period             string          `json:"period"`
	AbsenceDays        int             `json:"absence_days"`
	ExtraPay           decimal.Decimal `json:"extra_pay"`
	LoanDeduction      decimal.Decimal `json:"loan_deduction"`
	SanctionDeduction  decimal.Decimal `json:"sanction_deduction"`
	InventoryDeduction decimal.Decimal `json:"inventory_deduction"`
}
