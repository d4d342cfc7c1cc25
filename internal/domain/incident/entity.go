package incident

import "time"

// Incident is a free-form HR note about an employee: what happened and
// what was observed or agreed afterwards. Payroll figures live in the
// payroll incidents, not here.
type Incident struct {
	ID          string
	EmployeeID  string
	Date        time.Time
	Description string
	Observation string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
