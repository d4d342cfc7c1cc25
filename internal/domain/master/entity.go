package master

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/company"
)

// Position is a catalog entry for a job position with its reference base
// salary. Employees keep a free-text position, so the catalog is a lookup,
// not a foreign key.
type Position struct {
	ID         string
	Name       string
	BaseSalary decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AccountType classifies a financial account.
type AccountType string

const (
	AccountIncome  AccountType = "INGRESO"
	AccountExpense AccountType = "EGRESO"
	AccountCurrent AccountType = "CUENTA CORRIENTE"
)

func IsValidAccountType(t AccountType) bool {
	switch t {
	case AccountIncome, AccountExpense, AccountCurrent:
		return true
	}
	return false
}

// Account is a financial account of one company. Its balance only moves
// through recorded movements.
type Account struct {
	ID        string
	Name      string
	Company   company.Company
	Type      AccountType
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AccountMovementType is the direction of an account movement. CARGO
// adds to the balance, ABONO subtracts.
type AccountMovementType string

const (
	AccountMovementCargo AccountMovementType = "CARGO"
	AccountMovementAbono AccountMovementType = "ABONO"
)

func IsValidAccountMovementType(t AccountMovementType) bool {
	return t == AccountMovementCargo || t == AccountMovementAbono
}

// AccountMovement is one append-only entry in an account's history.
type AccountMovement struct {
	ID        string
	AccountID string
	Date      time.Time
	Type      AccountMovementType
	Amount    decimal.Decimal
	Concept   string
	CreatedAt time.Time
}
