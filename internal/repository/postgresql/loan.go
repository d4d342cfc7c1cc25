package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/loan"
	"github.com/grupo-genisa/erp-backend-go/internal/pkg/database"
)

type loanRepositoryImpl struct {
	db *database.DB
}

func NewLoanRepository(db *database.DB) loan.LoanRepository {
	return &loanRepositoryImpl{db: db}
}

const loanColumns = `id, employee_id, company_balance, paulino_balance, created_at, updated_at`

func scanLoan(row pgx.Row) (loan.Loan, error) {
	var l loan.Loan
	err := row.Scan(&l.ID, &l.EmployeeID, &l.CompanyBalance, &l.PaulinoBalance, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}

func (r *loanRepositoryImpl) GetByID(ctx context.Context, id string) (loan.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + loanColumns + ` FROM loans WHERE id = $1`
	l, err := scanLoan(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return loan.Loan{}, loan.ErrLoanNotFound
		}
		return loan.Loan{}, fmt.Errorf("get loan by id: %w", err)
	}
	return l, nil
}

func (r *loanRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (loan.Loan, error) {
	q := GetQuerier(ctx, r.db)

	// FOR UPDATE so concurrent movements against the same loan serialize
	// when called inside a transaction.
	query := `SELECT ` + loanColumns + ` FROM loans WHERE employee_id = $1 FOR UPDATE`
	l, err := scanLoan(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return loan.Loan{}, loan.ErrLoanNotFound
		}
		return loan.Loan{}, fmt.Errorf("get loan by employee: %w", err)
	}
	return l, nil
}

func (r *loanRepositoryImpl) List(ctx context.Context) ([]loan.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + loanColumns + `
		FROM loans
		WHERE company_balance <> 0 OR paulino_balance <> 0
		ORDER BY updated_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}
	defer rows.Close()

	var loans []loan.Loan
	for rows.Next() {
		l, err := scanLoan(rows)
		if err != nil {
			return nil, err
		}
		loans = append(loans, l)
	}
	return loans, rows.Err()
}

func (r *loanRepositoryImpl) Create(ctx context.Context, l loan.Loan) (loan.Loan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO loans (employee_id, company_balance, paulino_balance)
		VALUES ($1, $2, $3)
		RETURNING ` + loanColumns

	created, err := scanLoan(q.QueryRow(ctx, query, l.EmployeeID, l.CompanyBalance, l.PaulinoBalance))
	if err != nil {
		return loan.Loan{}, fmt.Errorf("create loan: %w", err)
	}
	return created, nil
}

func (r *loanRepositoryImpl) ListMovements(ctx context.Context, loanID string) ([]loan.Movement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, loan_id, date, type, account, amount, notes, created_at
		FROM loan_movements
		WHERE loan_id = $1
		ORDER BY date DESC, created_at DESC
	`

	rows, err := q.Query(ctx, query, loanID)
	if err != nil {
		return nil, fmt.Errorf("list loan movements: %w", err)
	}
	defer rows.Close()

	var movements []loan.Movement
	for rows.Next() {
		var m loan.Movement
		if err := rows.Scan(&m.ID, &m.LoanID, &m.Date, &m.Type, &m.Account, &m.Amount, &m.Notes, &m.CreatedAt); err != nil {
			return nil, err
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}

// AppendMovement writes the history row and the already-recomputed
// balances together. The caller runs it inside WithTransaction.
func (r *loanRepositoryImpl) AppendMovement(ctx context.Context, m loan.Movement, l loan.Loan) error {
	q := GetQuerier(ctx, r.db)

	insertQuery := `
		INSERT INTO loan_movements (loan_id, date, type, account, amount, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := q.Exec(ctx, insertQuery, m.LoanID, m.Date, m.Type, m.Account, m.Amount, m.Notes); err != nil {
		return fmt.Errorf("insert loan movement: %w", err)
	}

	updateQuery := `
		UPDATE loans
		SET company_balance = $1, paulino_balance = $2, updated_at = NOW()
		WHERE id = $3
	`
	tag, err := q.Exec(ctx, updateQuery, l.CompanyBalance, l.PaulinoBalance, l.ID)
	if err != nil {
		return fmt.Errorf("update loan balances: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return loan.ErrLoanNotFound
	}
	return nil
}
