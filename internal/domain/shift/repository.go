package shift

import "context"

type ShiftRepository interface {
	GetByID(ctx context.Context, id string) (Shift, error)
	List(ctx context.Context, filter ShiftFilter) ([]Shift, error)
	Create(ctx context.Context, sh Shift) (Shift, error)
	Resolve(ctx context.Context, id string, status Status, resolvedBy string) error
	Delete(ctx context.Context, id string) error
}
