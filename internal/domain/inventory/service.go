package inventory

import "context"

type InventoryService interface {
	CreateItem(ctx context.Context, req CreateItemRequest) (ItemResponse, error)
	GetItem(ctx context.Context, id string) (ItemResponse, error)
	ListItems(ctx context.Context, filter ItemFilter) ([]ItemResponse, error)
	// UpdateItem persists the change and refreshes the stored cost of
	// every product whose recipe uses the item when the unit cost moved.
	UpdateItem(ctx context.Context, req UpdateItemRequest) error
	DeleteItem(ctx context.Context, id string) error
}
