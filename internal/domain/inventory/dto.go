package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/company"
	"github.com/grupo-genisa/erp-backend-go/internal/pkg/validator"
)

type CreateItemRequest struct {
	Name        string          `json:"name"`
	Company     company.Company `json:"company"`
	Unit        string          `json:"unit"`
	Quantity    decimal.Decimal `json:"quantity"`
	CostPerUnit decimal.Decimal `json:"cost_per_unit"`
	MinQuantity decimal.Decimal `json:"min_quantity"`
}

func (r *CreateItemRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !r.Company.IsValid() {
		errs = append(errs, validator.ValidationError{Field: "company", Message: "unknown company"})
	}
	if validator.IsEmpty(r.Unit) {
		errs = append(errs, validator.ValidationError{Field: "unit", Message: "unit is required"})
	}
	if !validator.IsNonNegative(r.Quantity) {
		errs = append(errs, validator.ValidationError{Field: "quantity", Message: "quantity must not be negative"})
	}
	if !validator.IsNonNegative(r.CostPerUnit) {
		errs = append(errs, validator.ValidationError{Field: "cost_per_unit", Message: "cost per unit must not be negative"})
	}
	if !validator.IsNonNegative(r.MinQuantity) {
		errs = append(errs, validator.ValidationError{Field: "min_quantity", Message: "min quantity must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateItemRequest struct {
	ID          string           `json:"-"`
	Name        *string          `json:"name,omitempty"`
	Unit        *string          `json:"unit,omitempty"`
	Quantity    *decimal.Decimal `json:"quantity,omitempty"`
	CostPerUnit *decimal.Decimal `json:"cost_per_unit,omitempty"`
	MinQuantity *decimal.Decimal `json:"min_quantity,omitempty"`
}

func (r *UpdateItemRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if r.Unit != nil && validator.IsEmpty(*r.Unit) {
		errs = append(errs, validator.ValidationError{Field: "unit", Message: "unit must not be empty"})
	}
	if r.Quantity != nil && !validator.IsNonNegative(*r.Quantity) {
		errs = append(errs, validator.ValidationError{Field: "quantity", Message: "quantity must not be negative"})
	}
	if r.CostPerUnit != nil && !validator.IsNonNegative(*r.CostPerUnit) {
		errs = append(errs, validator.ValidationError{Field: "cost_per_unit", Message: "cost per unit must not be negative"})
	}
	if r.MinQuantity != nil && !validator.IsNonNegative(*r.MinQuantity) {
		errs = append(errs, validator.ValidationError{Field: "min_quantity", Message: "min quantity must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ItemFilter struct {
	Company      company.Company
	BelowMinimum bool
	Search       string
}

type ItemResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Company      company.Company `json:"company"`
	Unit         string          `json:"unit"`
	Quantity     decimal.Decimal `json:"quantity"`
	CostPerUnit  decimal.Decimal `json:"cost_per_unit"`
	MinQuantity  decimal.Decimal `json:"min_quantity"`
	BelowMinimum bool            `json:"below_minimum"`
}
