package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/contract"
	"github.com/grupo-genisa/erp-backend-go/internal/pkg/database"
)

type contractRepositoryImpl struct {
	db *database.DB
}

func NewContractRepository(db *database.DB) contract.ContractRepository {
	return &contractRepositoryImpl{db: db}
}

const contractColumns = `id, employee_id, type, expiry_date, created_at, updated_at`

func scanContract(row pgx.Row) (contract.Contract, error) {
	var c contract.Contract
	err := row.Scan(&c.ID, &c.EmployeeID, &c.Type, &c.ExpiryDate, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *contractRepositoryImpl) GetByID(ctx context.Context, id string) (contract.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + contractColumns + ` FROM contracts WHERE id = $1`
	c, err := scanContract(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return contract.Contract{}, contract.ErrContractNotFound
		}
		return contract.Contract{}, fmt.Errorf("get contract by id: %w", err)
	}
	return c, nil
}

func (r *contractRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (contract.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + contractColumns + ` FROM contracts WHERE employee_id = $1`
	c, err := scanContract(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return contract.Contract{}, contract.ErrContractNotFound
		}
		return contract.Contract{}, fmt.Errorf("get contract by employee: %w", err)
	}
	return c, nil
}

func (r *contractRepositoryImpl) List(ctx context.Context) ([]contract.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + contractColumns + ` FROM contracts ORDER BY expiry_date NULLS LAST`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close()

	return collectContracts(rows)
}

func (r *contractRepositoryImpl) ListExpiringWithin(ctx context.Context, days int) ([]contract.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + contractColumns + `
		FROM contracts
		WHERE expiry_date IS NOT NULL
			AND expiry_date <= CURRENT_DATE + $1 * INTERVAL '1 day'
		ORDER BY expiry_date
	`

	rows, err := q.Query(ctx, query, days)
	if err != nil {
		return nil, fmt.Errorf("list expiring contracts: %w", err)
	}
	defer rows.Close()

	return collectContracts(rows)
}

func collectContracts(rows pgx.Rows) ([]contract.Contract, error) {
	var contracts []contract.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, c)
	}
	return contracts, rows.Err()
}

func (r *contractRepositoryImpl) Create(ctx context.Context, c contract.Contract) (contract.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO contracts (employee_id, type, expiry_date)
		VALUES ($1, $2, $3)
		RETURNING ` + contractColumns

	created, err := scanContract(q.QueryRow(ctx, query, c.EmployeeID, c.Type, c.ExpiryDate))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return contract.Contract{}, contract.ErrContractExists
		}
		return contract.Contract{}, fmt.Errorf("create contract: %w", err)
	}
	return created, nil
}

func (r *contractRepositoryImpl) Update(ctx context.Context, req contract.UpdateContractRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{"updated_at = NOW()"}
	var args []any

	if req.Type != nil {
		args = append(args, *req.Type)
		setClauses = append(setClauses, fmt.Sprintf("type = $%d", len(args)))
	}
	if req.ExpiryDate != nil {
		if *req.ExpiryDate == "" {
			setClauses = append(setClauses, "expiry_date = NULL")
		} else {
			args = append(args, *req.ExpiryDate)
			setClauses = append(setClauses, fmt.Sprintf("expiry_date = $%d", len(args)))
		}
	}

	args = append(args, req.ID)
	query := fmt.Sprintf("UPDATE contracts SET %s WHERE id = $%d",
		strings.Join(setClauses, ", "), len(args))

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update contract: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return contract.ErrContractNotFound
	}
	return nil
}

func (r *contractRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM contracts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contract: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return contract.ErrContractNotFound
	}
	return nil
}
