package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/shift"
	"github.com/grupo-genisa/erp-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

const shiftColumns = `id, employee_id, covered_by, date, start_time, end_time, company, status,
	resolved_by, resolved_at, created_at, updated_at`

func scanShift(row pgx.Row) (shift.Shift, error) {
	var sh shift.Shift
	err := row.Scan(
		&sh.ID, &sh.EmployeeID, &sh.CoveredBy, &sh.Date, &sh.StartTime, &sh.EndTime,
		&sh.Company, &sh.Status, &sh.ResolvedBy, &sh.ResolvedAt,
		&sh.CreatedAt, &sh.UpdatedAt,
	)
	return sh, err
}

func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE id = $1`
	sh, err := scanShift(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("get shift by id: %w", err)
	}
	return sh, nil
}

func (r *shiftRepositoryImpl) List(ctx context.Context, filter shift.ShiftFilter) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE 1=1`
	var args []any

	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		query += fmt.Sprintf(" AND employee_id = $%d", len(args))
	}
	if filter.Company != "" {
		args = append(args, filter.Company)
		query += fmt.Sprintf(" AND company = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY date DESC, start_time DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		sh, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, sh)
	}
	return shifts, rows.Err()
}

func (r *shiftRepositoryImpl) Create(ctx context.Context, sh shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (employee_id, covered_by, date, start_time, end_time, company, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + shiftColumns

	created, err := scanShift(q.QueryRow(ctx, query,
		sh.EmployeeID, sh.CoveredBy, sh.Date, sh.StartTime, sh.EndTime, sh.Company, sh.Status,
	))
	if err != nil {
		return shift.Shift{}, fmt.Errorf("create shift: %w", err)
	}
	return created, nil
}

// Resolve flips a pending shift; the status guard in the WHERE clause
// makes double resolution a no-op that surfaces as ErrAlreadyResolved.
func (r *shiftRepositoryImpl) Resolve(ctx context.Context, id string, status shift.Status, resolvedBy string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET status = $1, resolved_by = $2, resolved_at = NOW(), updated_at = NOW()
		WHERE id = $3 AND status = $4
	`

	tag, err := q.Exec(ctx, query, status, resolvedBy, id, shift.StatusPending)
	if err != nil {
		return fmt.Errorf("resolve shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return shift.ErrAlreadyResolved
	}
	return nil
}

func (r *shiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}
