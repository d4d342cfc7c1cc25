package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/company"
	"github.com/grupo-genisa/erp-backend-go/internal/domain/master"
	"github.com/grupo-genisa/erp-backend-go/internal/pkg/database"
)

type positionRepositoryImpl struct {
	db *database.DB
}

func NewPositionRepository(db *database.DB) master.PositionRepository {
	return &positionRepositoryImpl{db: db}
}

func (r *positionRepositoryImpl) GetByID(ctx context.Context, id string) (master.Position, error) {
	q := GetQuerier(ctx, r.db)

	var p master.Position
	query := `SELECT id, name, base_salary, created_at, updated_at FROM positions WHERE id = $1`
	err := q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.BaseSalary, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return master.Position{}, master.ErrPositionNotFound
		}
		return master.Position{}, fmt.Errorf("get position by id: %w", err)
	}
	return p, nil
}

func (r *positionRepositoryImpl) List(ctx context.Context) ([]master.Position, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, base_salary, created_at, updated_at FROM positions ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list positions: %w", err)
	}
	defer rows.Close()

	var positions []master.Position
	for rows.Next() {
		var p master.Position
		if err := rows.Scan(&p.ID, &p.Name, &p.BaseSalary, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}
	return positions, rows.Err()
}

func (r *positionRepositoryImpl) Create(ctx context.Context, p master.Position) (master.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO positions (name, base_salary)
		VALUES ($1, $2)
		RETURNING id, name, base_salary, created_at, updated_at
	`

	var created master.Position
	err := q.QueryRow(ctx, query, p.Name, p.BaseSalary).Scan(&created.ID, &created.Name, &created.BaseSalary, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return master.Position{}, master.ErrPositionExists
		}
		return master.Position{}, fmt.Errorf("create position: %w", err)
	}
	return created, nil
}

func (r *positionRepositoryImpl) Update(ctx context.Context, req master.UpdatePositionRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{"updated_at = NOW()"}
	args := []any{}

	if req.Name != nil {
		args = append(args, *req.Name)
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", len(args)))
	}
	if req.BaseSalary != nil {
		args = append(args, *req.BaseSalary)
		setClauses = append(setClauses, fmt.Sprintf("base_salary = $%d", len(args)))
	}

	args = append(args, req.ID)
	query := fmt.Sprintf(`UPDATE positions SET %s WHERE id = $%d`,
		strings.Join(setClauses, ", "), len(args))

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return master.ErrPositionExists
		}
		return fmt.Errorf("update position: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return master.ErrPositionNotFound
	}
	return nil
}

func (r *positionRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM positions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete position: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return master.ErrPositionNotFound
	}
	return nil
}

func (r *positionRepositoryImpl) CountEmployeeReferences(ctx context.Context, name string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE position = $1`, name).Scan(&count); err != nil {
		return 0, fmt.Errorf("count position references: %w", err)
	}
	return count, nil
}

type accountRepositoryImpl struct {
	db *database.DB
}

func NewAccountRepository(db *database.DB) master.AccountRepository {
	return &accountRepositoryImpl{db: db}
}

const accountColumns = `id, name, company, type, balance, created_at, updated_at`

func scanAccount(row pgx.Row) (master.Account, error) {
	var a master.Account
	err := row.Scan(&a.ID, &a.Name, &a.Company, &a.Type, &a.Balance, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (r *accountRepositoryImpl) GetByID(ctx context.Context, id string) (master.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	a, err := scanAccount(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return master.Account{}, master.ErrAccountNotFound
		}
		return master.Account{}, fmt.Errorf("get account by id: %w", err)
	}
	return a, nil
}

func (r *accountRepositoryImpl) List(ctx context.Context, c company.Company) ([]master.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + accountColumns + ` FROM accounts`
	var args []any
	if c != "" {
		query += ` WHERE company = $1`
		args = append(args, c)
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []master.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (r *accountRepositoryImpl) Create(ctx context.Context, a master.Account) (master.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO accounts (name, company, type, balance)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + accountColumns

	created, err := scanAccount(q.QueryRow(ctx, query, a.Name, a.Company, a.Type, a.Balance))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return master.Account{}, master.ErrAccountExists
		}
		return master.Account{}, fmt.Errorf("create account: %w", err)
	}
	return created, nil
}

func (r *accountRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return master.ErrAccountNotFound
	}
	return nil
}

func (r *accountRepositoryImpl) ListMovements(ctx context.Context, accountID string) ([]master.AccountMovement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, account_id, date, type, amount, concept, created_at
		FROM account_movements
		WHERE account_id = $1
		ORDER BY date DESC, created_at DESC
	`

	rows, err := q.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("list account movements: %w", err)
	}
	defer rows.Close()

	var movements []master.AccountMovement
	for rows.Next() {
		var m master.AccountMovement
		if err := rows.Scan(&m.ID, &m.AccountID, &m.Date, &m.Type, &m.Amount, &m.Concept, &m.CreatedAt); err != nil {
			return nil, err
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}

func (r *accountRepositoryImpl) AppendMovement(ctx context.Context, m master.AccountMovement, a master.Account) error {
	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		insertQuery := `
			INSERT INTO account_movements (account_id, date, type, amount, concept)
			VALUES ($1, $2, $3, $4, $5)
		`
		if _, err := q.Exec(txCtx, insertQuery, m.AccountID, m.Date, m.Type, m.Amount, m.Concept); err != nil {
			return fmt.Errorf("insert account movement: %w", err)
		}

		updateQuery := `UPDATE accounts SET balance = $1, updated_at = NOW() WHERE id = $2`
		tag, err := q.Exec(txCtx, updateQuery, a.Balance, a.ID)
		if err != nil {
			return fmt.Errorf("update account balance: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return master.ErrAccountNotFound
		}
		return nil
	})
}
