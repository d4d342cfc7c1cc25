package attendance

import "time"

// Record is one check-in, optionally closed by a check-out. Times of day
// are stored as HH:MM:SS strings; only their ordering matters.
type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    string
	CheckOut   *string
	Source     Source
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Open reports whether the record is still waiting for a check-out.
func (r Record) Open() bool {
	return r.CheckOut == nil
}

// Source says how a record entered the system.
type Source string

const (
	SourceClock  Source = "clock"
	SourceImport Source = "import"
	SourceManual Source = "manual"
)

// NextAction is what an employee is allowed to do next, derived from
// their latest record rather than stored anywhere.
type NextAction string

const (
	ActionCheckIn  NextAction = "check_in"
	ActionCheckOut NextAction = "check_out"
)

// Gate derives the allowed next action from the latest record. No record
// yet, or a closed one, means the employee may check in.
func Gate(latest *Record) NextAction {
	if latest != nil && latest.Open() {
		return ActionCheckOut
	}
	return ActionCheckIn
}
