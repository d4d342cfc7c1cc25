package sanction

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sanction is a disciplinary record. Number is sequential per employee,
// assigned by the repository at insert.
type Sanction struct {
	ID         string
	EmployeeID string
	Number     int
	Date       time.Time
	Reason     string
	Amount     decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
