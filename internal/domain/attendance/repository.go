package attendance

import "context"

type RecordRepository interface {
	GetByID(ctx context.Context, id string) (Record, error)
	// GetLatestByEmployee returns the employee's most recent record by
	// date then check-in time.
	GetLatestByEmployee(ctx context.Context, employeeID string) (Record, error)
	List(ctx context.Context, filter RecordFilter) ([]Record, error)
	Create(ctx context.Context, r Record) (Record, error)
	CloseRecord(ctx context.Context, id, checkOut string) error
	// CreateBatch inserts all records in one transaction; any failure
	// rolls the whole batch back.
	CreateBatch(ctx context.Context, records []Record) error
	Delete(ctx context.Context, id string) error
}
