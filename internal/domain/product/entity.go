package product

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/company"
)

type Type string

const (
	TypePlatillo Type = "Platillo"
	TypeBebida   Type = "Bebida"
	TypePostre   Type = "Postre"
	TypeOtro     Type = "Otro"
)

func IsValidType(t Type) bool {
	switch t {
	case TypePlatillo, TypeBebida, TypePostre, TypeOtro:
		return true
	}
	return false
}

// Product is a menu item. Cost is derived from the recipe against current
// inventory prices and stored alongside the product; it is refreshed on
// every write that can move it.
type Product struct {
	ID        string
	Name      string
	Company   company.Company
	Type      Type
	Price     decimal.Decimal
	Cost      decimal.Decimal
	Recipe    []RecipeLine
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RecipeLine ties a quantity of one inventory item into a product's recipe.
type RecipeLine struct {
	ID          string
	ProductID   string
	InventoryID string
	ItemName    string
	Quantity    decimal.Decimal
}
