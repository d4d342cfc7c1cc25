package product

import (
	"context"

	"github.com/shopspring/decimal"
)

type ProductRepository interface {
	GetByID(ctx context.Context, id string) (Product, error)
	List(ctx context.Context, filter ProductFilter) ([]Product, error)
	// ListByInventoryItem returns products whose recipe uses the item.
	ListByInventoryItem(ctx context.Context, inventoryID string) ([]Product, error)
	// Create stores the product with its recipe lines in one transaction.
	Create(ctx context.Context, p Product) (Product, error)
	// Update rewrites the product row and, when recipe is non-nil,
	// replaces the recipe lines wholesale.
	Update(ctx context.Context, p Product, replaceRecipe bool) error
	// UpdateCost refreshes only the stored cost of a product.
	UpdateCost(ctx context.Context, id string, cost decimal.Decimal) error
	Delete(ctx context.Context, id string) error
}
