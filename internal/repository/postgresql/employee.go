package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/company"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/employee"
	"github.com/grupo-genisa/erp-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, full_name, short_name, position, company, payment_type, hire_date,
	social_insurance_at, monthly_base, monthly_bonus, active, role, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.FullName, &emp.ShortName, &emp.Position, &emp.Company,
		&emp.PaymentType, &emp.HireDate, &emp.SocialInsuranceAt,
		&emp.MonthlyBase, &emp.MonthlyBonus, &emp.Active, &emp.Role,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("get employee by id: %w", err)
	}
	return emp, nil
}

func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE 1=1`
	var args []any

	if filter.Company != nil {
		args = append(args, *filter.Company)
		query += fmt.Sprintf(" AND company = $%d", len(args))
	}
	if filter.ActiveOnly {
		query += " AND active = TRUE"
	}
	if filter.Search != nil && *filter.Search != "" {
		args = append(args, "%"+strings.ToLower(*filter.Search)+"%")
		query += fmt.Sprintf(" AND (LOWER(full_name) LIKE $%d OR LOWER(short_name) LIKE $%d)", len(args), len(args))
	}
	query += " ORDER BY full_name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (r *employeeRepositoryImpl) GetActiveByCompany(ctx context.Context, c company.Company) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE company = $1 AND active = TRUE ORDER BY full_name`

	rows, err := q.Query(ctx, query, c)
	if err != nil {
		return nil, fmt.Errorf("get active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			full_name, short_name, position, company, payment_type, hire_date,
			social_insurance_at, monthly_base, monthly_bonus, active, role
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		emp.FullName, emp.ShortName, emp.Position, emp.Company, emp.PaymentType,
		emp.HireDate, emp.SocialInsuranceAt, emp.MonthlyBase, emp.MonthlyBonus,
		emp.Active, emp.Role,
	))
	if err != nil {
		return employee.Employee{}, fmt.Errorf("create employee: %w", err)
	}
	return created, nil
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{"updated_at = NOW()"}
	var args []any

	addSet := func(column string, value any) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.FullName != nil {
		addSet("full_name", *req.FullName)
	}
	if req.ShortName != nil {
		addSet("short_name", *req.ShortName)
	}
	if req.Position != nil {
		addSet("position", *req.Position)
	}
	if req.Company != nil {
		addSet("company", *req.Company)
	}
	if req.PaymentType != nil {
		addSet("payment_type", *req.PaymentType)
	}
	if req.HireDate != nil {
		addSet("hire_date", *req.HireDate)
	}
	if req.SocialInsuranceAt != nil {
		addSet("social_insurance_at", *req.SocialInsuranceAt)
	}
	if req.MonthlyBase != nil {
		addSet("monthly_base", *req.MonthlyBase)
	}
	if req.MonthlyBonus != nil {
		addSet("monthly_bonus", *req.MonthlyBonus)
	}
	if req.Active != nil {
		addSet("active", *req.Active)
	}

	args = append(args, req.ID)
	query := fmt.Sprintf("UPDATE employees SET %s WHERE id = $%d",
		strings.Join(setClauses, ", "), len(args))

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// CountReferences totals the rows in dependent tables that point at the
// employee. Deletion is refused while this is non-zero.
func (r *employeeRepositoryImpl) CountReferences(ctx context.Context, id string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM attendance_records WHERE employee_id = $1) +
			(SELECT COUNT(*) FROM loans WHERE employee_id = $1) +
			(SELECT COUNT(*) FROM sanctions WHERE employee_id = $1) +
			(SELECT COUNT(*) FROM incidents WHERE employee_id = $1) +
			(SELECT COUNT(*) FROM contracts WHERE employee_id = $1) +
			(SELECT COUNT(*) FROM shift_change_requests WHERE employee_id = $1) +
			(SELECT COUNT(*) FROM payroll_details WHERE employee_id = $1)
	`

	var count int64
	if err := q.QueryRow(ctx, query, id).Scan(&count); err != nil {
		return 0, fmt.Errorf("count employee references: %w", err)
	}
	return count, nil
}
