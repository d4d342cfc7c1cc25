package product

import "github.com/shopspring/decimal"

// MarginAlertThreshold is the margin percentage under which a product is
// flagged as underpriced.
var MarginAlertThreshold = decimal.NewFromInt(30)

// RecipeCost prices a recipe against the given cost-per-unit table. Lines
// whose inventory item is missing from the table contribute zero; the
// rest contribute quantity times unit cost.
func RecipeCost(recipe []RecipeLine, costPerUnit map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, line := range recipe {
		unit, ok := costPerUnit[line.InventoryID]
		if !ok {
			continue
		}
		total = total.Add(line.Quantity.Mul(unit))
	}
	return total
}

// Margin returns the gross margin percentage for a sale price and cost:
// (price - cost) / price * 100. A price of zero or less yields zero
// rather than a division error.
func Margin(price, cost decimal.Decimal) decimal.Decimal {
	if price.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return price.Sub(cost).Div(price).Mul(decimal.NewFromInt(100))
}

// MarginBelowThreshold reports whether the product's margin falls under
// the alert threshold.
func MarginBelowThreshold(price, cost decimal.Decimal) bool {
	return Margin(price, cost).LessThan(MarginAlertThreshold)
}
