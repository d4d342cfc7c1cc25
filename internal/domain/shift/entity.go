package shift

import (
	"time"

	"github.com/grupo-genisa/erp-backend-go/internal/domain/company"
)

// Status tracks a shift through review.
type Status string

const (
	StatusPending  Status = "PENDIENTE"
	StatusApproved Status = "APROBADO"
	StatusRejected Status = "RECHAZADO"
)

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Shift is one employee's turn on a given date: start and end time of
// day plus the company the turn belongs to. CoveredBy optionally points
// at the employee covering the turn. A shift stays PENDIENTE until a
// manager resolves it.
type Shift struct {
	ID         string
	EmployeeID string
	CoveredBy  *string
	Date       time.Time
	StartTime  string
	EndTime    string
	Company    company.Company
	Status     Status
	ResolvedBy *string
	ResolvedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
