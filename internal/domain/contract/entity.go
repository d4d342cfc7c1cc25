package contract

import "time"

type Contract struct {
	ID         string
	EmployeeID string
	Type       string
	ExpiryDate *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
