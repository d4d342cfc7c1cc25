package product

import (
	"github.com/shopspring/decimal"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/company"
	"github.com/grupo-genisa/erp-backend-go/internal/pkg/validator"
)

type RecipeLineRequest struct {
	InventoryID string          `json:"inventory_id"`
	Quantity    decimal.Decimal `json:"quantity"`
}

type CreateProductRequest struct {
	Name    string              `json:"name"`
	Company company.Company     `json:"company"`
	Type    Type                `json:"type"`
	Price   decimal.Decimal     `json:"price"`
	Recipe  []RecipeLineRequest `json:"recipe,omitempty"`
}

func (r *CreateProductRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !r.Company.IsValid() {
		errs = append(errs, validator.ValidationError{Field: "company", Message: "unknown company"})
	}
	if !IsValidType(r.Type) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be Platillo, Bebida, Postre or Otro"})
	}
	if !validator.IsNonNegative(r.Price) {
		errs = append(errs, validator.ValidationError{Field: "price", Message: "price must not be negative"})
	}
	if err := validateRecipe(r.Recipe); err != nil {
		errs = append(errs, *err)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProductRequest struct {
	ID     string               `json:"-"`
	Name   *string              `json:"name,omitempty"`
	Type   *Type                `json:"type,omitempty"`
	Price  *decimal.Decimal     `json:"price,omitempty"`
	Recipe *[]RecipeLineRequest `json:"recipe,omitempty"` // full replacement when present
}

func (r *UpdateProductRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if r.Type != nil && !IsValidType(*r.Type) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be Platillo, Bebida, Postre or Otro"})
	}
	if r.Price != nil && !validator.IsNonNegative(*r.Price) {
		errs = append(errs, validator.ValidationError{Field: "price", Message: "price must not be negative"})
	}
	if r.Recipe != nil {
		if err := validateRecipe(*r.Recipe); err != nil {
			errs = append(errs, *err)
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// validateRecipe rejects empty inventory ids, non-positive quantities and
// duplicate inventory items within one recipe.
func validateRecipe(recipe []RecipeLineRequest) *validator.ValidationError {
	seen := make(map[string]bool, len(recipe))
	for _, line := range recipe {
		if validator.IsEmpty(line.InventoryID) {
			return &validator.ValidationError{Field: "recipe", Message: "inventory id is required on every recipe line"}
		}
		if !validator.IsPositive(line.Quantity) {
			return &validator.ValidationError{Field: "recipe", Message: "recipe quantities must be positive"}
		}
		if seen[line.InventoryID] {
			return &validator.ValidationError{Field: "recipe", Message: "recipe lists the same inventory item twice"}
		}
		seen[line.InventoryID] = true
	}
	return nil
}

type ProductFilter struct {
	Company     company.Company
	Type        Type
	MarginAlert bool
	Search      string
}

type RecipeLineResponse struct {
	ID          string          `json:"id"`
	InventoryID string          `json:"inventory_id"`
	ItemName    string          `json:"item_name"`
	Quantity    decimal.Decimal `json:"quantity"`
}

type ProductResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Company     company.Company      `json:"company"`
	Type        Type                 `json:"type"`
	Price       decimal.Decimal      `json:"price"`
	Cost        decimal.Decimal      `json:"cost"`
	Margin      decimal.Decimal      `json:"margin"`
	MarginAlert bool                 `json:"margin_alert"`
	Recipe      []RecipeLineResponse `json:"recipe"`
}
