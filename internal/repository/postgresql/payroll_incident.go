package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/payroll"
	"github.com/grupo-genisa/erp-backend-go/internal/pkg/database"
)

type payrollIncidentRepositoryImpl struct {
	db *database.DB
}

func NewPayrollIncidentRepository(db *database.DB) payroll.IncidentRepository {
	return &payrollIncidentRepositoryImpl{db: db}
}

const payrollIncidentColumns = `id, employee_id, period, absence_days, extra_pay,
	loan_deduction, sanction_deduction, inventory_deduction, created_at, updated_at`

func scanPayrollIncident(row pgx.Row) (payroll.Incident, error) {
	var inc payroll.Incident
	err := row.Scan(
		&inc.ID, &inc.EmployeeID, &inc.Period, &inc.AbsenceDays, &inc.ExtraPay,
		&inc.LoanDeduction, &inc.SanctionDeduction, &inc.InventoryDeduction,
		&inc.CreatedAt, &inc.UpdatedAt,
	)
	return inc, err
}

func (r *payrollIncidentRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.Incident, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollIncidentColumns + ` FROM payroll_incidents WHERE id = $1`
	inc, err := scanPayrollIncident(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Incident{}, payroll.ErrIncidentNotFound
		}
		return payroll.Incident{}, fmt.Errorf("get payroll incident by id: %w", err)
	}
	return inc, nil
}

func (r *payrollIncidentRepositoryImpl) List(ctx context.Context, filter payroll.IncidentFilter) ([]payroll.Incident, error) {
	query := `SELECT ` + payrollIncidentColumns + ` FROM payroll_incidents WHERE 1=1`
	var args []any

	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		query += fmt.Sprintf(" AND employee_id = $%d", len(args))
	}
	query += " ORDER BY period DESC, created_at DESC"

	return r.queryIncidents(ctx, query, args...)
}

func (r *payrollIncidentRepositoryImpl) ListByEmployeeInPeriod(ctx context.Context, employeeID string, from, to time.Time) ([]payroll.Incident, error) {
	query := `SELECT ` + payrollIncidentColumns + `
		FROM payroll_incidents
		WHERE employee_id = $1 AND period BETWEEN $2 AND $3
		ORDER BY period`
	return r.queryIncidents(ctx, query, employeeID, from, to)
}

func (r *payrollIncidentRepositoryImpl) queryIncidents(ctx context.Context, query string, args ...any) ([]payroll.Incident, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payroll incidents: %w", err)
	}
	defer rows.Close()

	var incidents []payroll.Incident
	for rows.Next() {
		inc, err := scanPayrollIncident(rows)
		if err != nil {
			return nil, err
		}
		incidents = append(incidents, inc)
	}
	return incidents, rows.Err()
}

func (r *payrollIncidentRepositoryImpl) Create(ctx context.Context, inc payroll.Incident) (payroll.Incident, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_incidents (employee_id, period, absence_days, extra_pay,
			loan_deduction, sanction_deduction, inventory_deduction)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + payrollIncidentColumns

	created, err := scanPayrollIncident(q.QueryRow(ctx, query,
		inc.EmployeeID, inc.Period, inc.AbsenceDays, inc.ExtraPay,
		inc.LoanDeduction, inc.SanctionDeduction, inc.InventoryDeduction,
	))
	if err != nil {
		return payroll.Incident{}, fmt.Errorf("create payroll incident: %w", err)
	}
	return created, nil
}

func (r *payrollIncidentRepositoryImpl) Update(ctx context.Context, req payroll.UpdateIncidentRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{"updated_at = NOW()"}
	args := []any{}

	if req.Period != nil {
		args = append(args, *req.Period)
		setClauses = append(setClauses, fmt.Sprintf("period = $%d", len(args)))
	}
	if req.AbsenceDays != nil {
		args = append(args, *req.AbsenceDays)
		setClauses = append(setClauses, fmt.Sprintf("absence_days = $%d", len(args)))
	}
	if req.ExtraPay != nil {
		args = append(args, *req.ExtraPay)
		setClauses = append(setClauses, fmt.Sprintf("extra_pay = $%d", len(args)))
	}
	if req.LoanDeduction != nil {
		args = append(args, *req.LoanDeduction)
		setClauses = append(setClauses, fmt.Sprintf("loan_deduction = $%d", len(args)))
	}
	if req.SanctionDeduction != nil {
		args = append(args, *req.SanctionDeduction)
		setClauses = append(setClauses, fmt.Sprintf("sanction_deduction = $%d", len(args)))
	}
	if req.InventoryDeduction != nil {
		args = append(args, *req.InventoryDeduction)
		setClauses = append(setClauses, fmt.Sprintf("inventory_deduction = $%d", len(args)))
	}

	args = append(args, req.ID)
	query := fmt.Sprintf(`UPDATE payroll_incidents SET %s WHERE id = $%d`,
		strings.Join(setClauses, ", "), len(args))

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update payroll incident: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrIncidentNotFound
	}
	return nil
}

func (r *payrollIncidentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payroll_incidents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payroll incident: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrIncidentNotFound
	}
	return nil
}
