package loan

import (
	"github.com/shopspring/decimal"

	"github.com/grupo-genisa/erp-backend-go/internal/pkg/validator"
)

type RegisterMovementRequest struct {
	EmployeeID string          `json:"employee_id"`
	Date       string          `json:"date"`
	Type       MovementType    `json:"type"`
	Account    Account         `json:"account"`
	Amount     decimal.Decimal `json:"amount"`
	Notes      string          `json:"notes,omitempty"`
}

func (r *RegisterMovementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	if !IsValidMovementType(r.Type) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be CARGO or ABONO"})
	}
	if !IsValidAccount(r.Account) {
		errs = append(errs, validator.ValidationError{Field: "account", Message: "account must be SALDO_EMPRESA or SALDO_PAULINO"})
	}
	if !validator.IsPositive(r.Amount) {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MovementResponse struct {
	ID      string          `json:"id"`
	Date    string          `json:"date"`
	Type    MovementType    `json:"type"`
	Account Account         `json:"account"`
	Amount  decimal.Decimal `json:"amount"`
	Notes   string          `json:"notes,omitempty"`
}

type LoanResponse struct {
	ID             string             `json:"id"`
	EmployeeID     string             `json:"employee_id"`
	EmployeeName   string             `json:"employee_name,omitempty"`
	CompanyBalance decimal.Decimal    `json:"company_balance"`
	PaulinoBalance decimal.Decimal    `json:"paulino_balance"`
	Total          decimal.Decimal    `json:"total"`
	Movements      []MovementResponse `json:"movements,omitempty"`
}
