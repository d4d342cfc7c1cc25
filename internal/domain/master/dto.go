package master

import (
	"github.com/shopspring/decimal"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/company"
	"github.com/grupo-genisa/erp-backend-go/internal/pkg/validator"
)

type CreatePositionRequest struct {
	Name       string          `json:"name"`
	BaseSalary decimal.Decimal `json:"base_salary"`
}

func (r *CreatePositionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !validator.IsNonNegative(r.BaseSalary) {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "base_salary must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePositionRequest struct {
	ID         string           `json:"-"`
	Name       *string          `json:"name,omitempty"`
	BaseSalary *decimal.Decimal `json:"base_salary,omitempty"`
}

func (r *UpdatePositionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be blank"})
	}
	if r.BaseSalary != nil && !validator.IsNonNegative(*r.BaseSalary) {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "base_salary must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PositionResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	BaseSalary decimal.Decimal `json:"base_salary"`
}

type CreateAccountRequest struct {
	Name    string          `json:"name"`
	Company company.Company `json:"company"`
	Type    AccountType     `json:"type"`
	Balance decimal.Decimal `json:"balance"`
}

func (r *CreateAccountRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !r.Company.IsValid() {
		errs = append(errs, validator.ValidationError{Field: "company", Message: "unknown company"})
	}
	if !IsValidAccountType(r.Type) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be INGRESO, EGRESO or CUENTA CORRIENTE"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RegisterAccountMovementRequest struct {
	AccountID string              `json:"-"`
	Date      string              `json:"date"`
	Type      AccountMovementType `json:"type"`
	Amount    decimal.Decimal     `json:"amount"`
	Concept   string              `json:"concept,omitempty"`
}

func (r *RegisterAccountMovementRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	if !IsValidAccountMovementType(r.Type) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be CARGO or ABONO"})
	}
	if !validator.IsPositive(r.Amount) {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AccountMovementResponse struct {
	ID      string              `json:"id"`
	Date    string              `json:"date"`
	Type    AccountMovementType `json:"type"`
	Amount  decimal.Decimal     `json:"amount"`
	Concept string              `json:"concept,omitempty"`
}

type AccountResponse struct {
	ID        string                    `json:"id"`
	Name      string                    `json:"name"`
	Company   company.Company           `json:"company"`
	Type      AccountType               `json:"type"`
	Balance   decimal.Decimal           `json:"balance"`
	Movements []AccountMovementResponse `json:"movements,omitempty"`
}

// AccountSummary totals account balances per type, the figures the finance
// overview shows before drilling into individual accounts.
type AccountSummary struct {
	Company      company.Company `json:"company,omitempty"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	TotalCurrent decimal.Decimal `json:"total_current"`
	AccountCount int             `json:"account_count"`
}

// MasterData bundles the catalogs the admin screens load in one request.
type MasterData struct {
	Positions []PositionResponse `json:"positions"`
	Companies []string           `json:"companies"`
}
