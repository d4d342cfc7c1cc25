package inventory

import "context"

type ItemRepository interface {
	GetByID(ctx context.Context, id string) (Item, error)
	GetByIDs(ctx context.Context, ids []string) ([]Item, error)
	List(ctx context.Context, filter ItemFilter) ([]Item, error)
	Create(ctx context.Context, item Item) (Item, error)
	Update(ctx context.Context, req UpdateItemRequest) error
	Delete(ctx context.Context, id string) error
	CountRecipeReferences(ctx context.Context, id string) (int, error)
}
