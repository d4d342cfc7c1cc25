package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account distinguishes the two pockets a loan can draw from.
type Account string

const (
	AccountCompany Account = "SALDO_EMPRESA"
	AccountPaulino Account = "SALDO_PAULINO"
)

func IsValidAccount(a Account) bool {
	return a == AccountCompany || a == AccountPaulino
}

// MovementType is the direction of a loan movement. CARGO increases the
// balance (money handed to the employee), ABONO decreases it (repayment).
type MovementType string

const (
	MovementCargo MovementType = "CARGO"
	MovementAbono MovementType = "ABONO"
)

func IsValidMovementType(t MovementType) bool {
	return t == MovementCargo || t == MovementAbono
}

// Loan tracks what an employee owes, split across the two accounts. One
// loan record per employee; the movement history is append-only.
type Loan struct {
	ID             string
	EmployeeID     string
	CompanyBalance decimal.Decimal
	PaulinoBalance decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Total is the combined debt across both accounts.
func (l Loan) Total() decimal.Decimal {
	return l.CompanyBalance.Add(l.PaulinoBalance)
}

// Balance returns the balance of the given account.
func (l Loan) Balance(a Account) decimal.Decimal {
	if a == AccountPaulino {
		return l.PaulinoBalance
	}
	return l.CompanyBalance
}

// Movement is one entry in a loan's history.
type Movement struct {
	ID        string
	LoanID    string
	Date      time.Time
	Type      MovementType
	Account   Account
	Amount    decimal.Decimal
	Notes     string
	CreatedAt time.Time
}
