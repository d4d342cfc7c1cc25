package sanction

import (
	"github.com/shopspring/decimal"

	"github.com/grupo-genisa/erp-backend-go/internal/pkg/validator"
)

type CreateSanctionRequest struct {
	EmployeeID string          `json:"employee_id"`
	Date       string          `json:"date"`
	Reason     string          `json:"reason"`
	Amount     decimal.Decimal `json:"amount"`
}

func (r *CreateSanctionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}
	if !validator.IsNonNegative(r.Amount) {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSanctionRequest struct {
	ID     string           `json:"-"`
	Date   *string          `json:"date,omitempty"`
	Reason *string          `json:"reason,omitempty"`
	Amount *decimal.Decimal `json:"amount,omitempty"`
}

func (r *UpdateSanctionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
		}
	}
	if r.Reason != nil && validator.IsEmpty(*r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason must not be empty"})
	}
	if r.Amount != nil && !validator.IsNonNegative(*r.Amount) {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SanctionResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name,omitempty"`
	Number       int             `json:"number"`
	Date         string          `json:"date"`
	Reason       string          `json:"reason"`
	Amount       decimal.Decimal `json:"amount"`
}
