package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/company"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/payroll"
	"github.com/grupo-genisa/erp-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.RunRepository {
	return &payrollRepositoryImpl{db: db}
}

const runColumns = `id, company, period_start, period_end, total_cost, generated_by, generated_at`

func scanRun(row pgx.Row) (payroll.Run, error) {
	var run payroll.Run
	err := row.Scan(
		&run.ID, &run.Company, &run.PeriodStart, &run.PeriodEnd,
		&run.TotalCost, &run.GeneratedBy, &run.GeneratedAt,
	)
	return run, err
}

func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.Run, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + runColumns + ` FROM payroll_runs WHERE id = $1`
	run, err := scanRun(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Run{}, payroll.ErrRunNotFound
		}
		return payroll.Run{}, fmt.Errorf("get payroll run by id: %w", err)
	}

	if err := r.loadDetails(ctx, &run); err != nil {
		return payroll.Run{}, err
	}
	return run, nil
}

func (r *payrollRepositoryImpl) List(ctx context.Context, filter payroll.RunFilter) ([]payroll.Run, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + runColumns + ` FROM payroll_runs WHERE 1=1`
	var args []any

	if filter.Company != "" {
		args = append(args, filter.Company)
		query += fmt.Sprintf(" AND company = $%d", len(args))
	}
	if filter.Year != 0 {
		args = append(args, filter.Year)
		query += fmt.Sprintf(" AND EXTRACT(YEAR FROM period_start) = $%d", len(args))
	}
	query += " ORDER BY period_start DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payroll runs: %w", err)
	}
	defer rows.Close()

	var runs []payroll.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func (r *payrollRepositoryImpl) ExistsForPeriod(ctx context.Context, c company.Company, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM payroll_runs
			WHERE company = $1 AND period_start = $2 AND period_end = $3
		)
	`
	if err := q.QueryRow(ctx, query, c, start, end).Scan(&exists); err != nil {
		return false, fmt.Errorf("check payroll run exists: %w", err)
	}
	return exists, nil
}

// Create stores the run header and every detail line in one transaction.
// There is no Update counterpart: stored runs are immutable.
func (r *payrollRepositoryImpl) Create(ctx context.Context, run payroll.Run) (payroll.Run, error) {
	var created payroll.Run

	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		runQuery := `
			INSERT INTO payroll_runs (company, period_start, period_end, total_cost, generated_by)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING ` + runColumns

		var err error
		created, err = scanRun(q.QueryRow(txCtx, runQuery,
			run.Company, run.PeriodStart, run.PeriodEnd, run.TotalCost, run.GeneratedBy,
		))
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return payroll.ErrRunExists
			}
			return fmt.Errorf("create payroll run: %w", err)
		}

		detailQuery := `
			INSERT INTO payroll_details (
				run_id, employee_id, employee_name, base_salary, bonuses, extra_payments,
				loan_deductions, sanction_deductions, absence_deductions, total_deductions, net_pay
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`
		for _, d := range run.Details {
			_, err := q.Exec(txCtx, detailQuery,
				created.ID, d.EmployeeID, d.EmployeeName, d.BaseSalary, d.Bonuses,
				d.ExtraPayments, d.LoanDeductions, d.SanctionDeductions,
				d.AbsenceDeductions, d.TotalDeductions, d.NetPay,
			)
			if err != nil {
				return fmt.Errorf("create payroll detail: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return payroll.Run{}, err
	}

	return r.GetByID(ctx, created.ID)
}

func (r *payrollRepositoryImpl) loadDetails(ctx context.Context, run *payroll.Run) error {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, run_id, employee_id, employee_name, base_salary, bonuses, extra_payments,
			loan_deductions, sanction_deductions, absence_deductions, total_deductions, net_pay
		FROM payroll_details
		WHERE run_id = $1
		ORDER BY employee_name
	`

	rows, err := q.Query(ctx, query, run.ID)
	if err != nil {
		return fmt.Errorf("load payroll details: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var d payroll.Detail
		err := rows.Scan(
			&d.ID, &d.RunID, &d.EmployeeID, &d.EmployeeName, &d.BaseSalary,
			&d.Bonuses, &d.ExtraPayments, &d.LoanDeductions, &d.SanctionDeductions,
			&d.AbsenceDeductions, &d.TotalDeductions, &d.NetPay,
		)
		if err != nil {
			return err
		}
		run.Details = append(run.Details, d)
	}
	return rows.Err()
}

func (r *payrollRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	// Details cascade with the run.
	tag, err := q.Exec(ctx, `DELETE FROM payroll_runs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payroll run: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrRunNotFound
	}
	return nil
}
