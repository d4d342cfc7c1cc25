package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/sanction"
	"github.com/grupo-genisa/erp-backend-go/internal/pkg/database"
)

type sanctionRepositoryImpl struct {
	db *database.DB
}

func NewSanctionRepository(db *database.DB) sanction.SanctionRepository {
	return &sanctionRepositoryImpl{db: db}
}

const sanctionColumns = `id, employee_id, number, date, reason, amount, created_at, updated_at`

func scanSanction(row pgx.Row) (sanction.Sanction, error) {
	var s sanction.Sanction
	err := row.Scan(&s.ID, &s.EmployeeID, &s.Number, &s.Date, &s.Reason, &s.Amount, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func collectSanctions(rows pgx.Rows) ([]sanction.Sanction, error) {
	var sanctions []sanction.Sanction
	for rows.Next() {
		s, err := scanSanction(rows)
		if err != nil {
			return nil, err
		}
		sanctions = append(sanctions, s)
	}
	return sanctions, rows.Err()
}

func (r *sanctionRepositoryImpl) GetByID(ctx context.Context, id string) (sanction.Sanction, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + sanctionColumns + ` FROM sanctions WHERE id = $1`
	s, err := scanSanction(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return sanction.Sanction{}, sanction.ErrSanctionNotFound
		}
		return sanction.Sanction{}, fmt.Errorf("get sanction by id: %w", err)
	}
	return s, nil
}

func (r *sanctionRepositoryImpl) List(ctx context.Context) ([]sanction.Sanction, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+sanctionColumns+` FROM sanctions ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list sanctions: %w", err)
	}
	defer rows.Close()

	return collectSanctions(rows)
}

func (r *sanctionRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]sanction.Sanction, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + sanctionColumns + ` FROM sanctions WHERE employee_id = $1 ORDER BY date DESC`
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list sanctions by employee: %w", err)
	}
	defer rows.Close()

	return collectSanctions(rows)
}

func (r *sanctionRepositoryImpl) ListByEmployeeInPeriod(ctx context.Context, employeeID string, from, to time.Time) ([]sanction.Sanction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + sanctionColumns + `
		FROM sanctions
		WHERE employee_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date
	`
	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list sanctions in period: %w", err)
	}
	defer rows.Close()

	return collectSanctions(rows)
}

func (r *sanctionRepositoryImpl) Create(ctx context.Context, s sanction.Sanction) (sanction.Sanction, error) {
	q := GetQuerier(ctx, r.db)

	// number is sequential per employee, assigned here so callers never
	// pick their own.
	query := `
		INSERT INTO sanctions (employee_id, number, date, reason, amount)
		VALUES (
			$1,
			(SELECT COALESCE(MAX(number), 0) + 1 FROM sanctions WHERE employee_id = $1),
			$2, $3, $4
		)
		RETURNING ` + sanctionColumns

	created, err := scanSanction(q.QueryRow(ctx, query, s.EmployeeID, s.Date, s.Reason, s.Amount))
	if err != nil {
		return sanction.Sanction{}, fmt.Errorf("create sanction: %w", err)
	}
	return created, nil
}

func (r *sanctionRepositoryImpl) Update(ctx context.Context, req sanction.UpdateSanctionRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{"updated_at = NOW()"}
	var args []any

	if req.Date != nil {
		args = append(args, *req.Date)
		setClauses = append(setClauses, fmt.Sprintf("date = $%d", len(args)))
	}
	if req.Reason != nil {
		args = append(args, *req.Reason)
		setClauses = append(setClauses, fmt.Sprintf("reason = $%d", len(args)))
	}
	if req.Amount != nil {
		args = append(args, *req.Amount)
		setClauses = append(setClauses, fmt.Sprintf("amount = $%d", len(args)))
	}

	args = append(args, req.ID)
	query := fmt.Sprintf("UPDATE sanctions SET %s WHERE id = $%d",
		strings.Join(setClauses, ", "), len(args))

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update sanction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sanction.ErrSanctionNotFound
	}
	return nil
}

func (r *sanctionRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM sanctions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sanction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sanction.ErrSanctionNotFound
	}
	return nil
}
