package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/company"
)

// Item is a stocked ingredient or supply. CostPerUnit is what one Unit
// of the item costs; recipe costing multiplies against it.
type Item struct {
	ID          string
	Name        string
	Company     company.Company
	Unit        string
	Quantity    decimal.Decimal
	CostPerUnit decimal.Decimal
	MinQuantity decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BelowMinimum reports whether current stock sits under the restock threshold.
func (i Item) BelowMinimum() bool {
	return i.Quantity.LessThan(i.MinQuantity)
}
