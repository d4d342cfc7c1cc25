package shift

import "context"

type ShiftService interface {
	CreateShift(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)
	// GetShift and ListShifts are scoped: callers without the shift
	// management permission only see their own shifts.
	GetShift(ctx context.Context, id string) (ShiftResponse, error)
	ListShifts(ctx context.Context, filter ShiftFilter) ([]ShiftResponse, error)
	// ResolveShift approves or rejects a pending shift; resolved shifts
	// cannot be resolved again.
	ResolveShift(ctx context.Context, req ResolveShiftRequest) error
	DeleteShift(ctx context.Context, id string) error
}
