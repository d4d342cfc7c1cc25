package attendance

import (
	"context"
	"io"
)

type AttendanceService interface {
	// GetStatus derives the employee's allowed next action from their
	// latest record.
	GetStatus(ctx context.Context, employeeID string) (StatusResponse, error)
	CheckIn(ctx context.Context, req ClockRequest) (RecordResponse, error)
	CheckOut(ctx context.Context, req ClockRequest) (RecordResponse, error)
	ListRecords(ctx context.Context, filter RecordFilter) ([]RecordResponse, error)
	// ImportCSV loads a whole attendance file or nothing, reporting every
	// bad line by number.
	ImportCSV(ctx context.Context, r io.Reader) (ImportResponse, error)
	DeleteRecord(ctx context.Context, id string) error
}
