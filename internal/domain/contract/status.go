package contract

import "time"

// Status classifies a contract against a reference date. It is never
// persisted; re-running the classification later can move a contract
// from valid to expiring to expired without any write.
type Status string

const (
	StatusIndeterminate Status = "indeterminate"
	StatusExpired       Status = "expired"
	StatusExpiring      Status = "expiring"
	StatusValid         Status = "valid"
)

// ExpiringWindowDays is the lead time during which a contract counts as expiring.
const ExpiringWindowDays = 30

// Classify returns the status of a contract with the given expiry date as
// of now, plus the number of calendar days until expiry (negative once
// expired, zero when there is no expiry date).
func Classify(expiry *time.Time, now time.Time) (Status, int) {
	if expiry == nil {
		return StatusIndeterminate, 0
	}

	days := daysBetween(now, *expiry)
	switch {
	case days < 0:
		return StatusExpired, days
	case days <= ExpiringWindowDays:
		return StatusExpiring, days
	default:
		return StatusValid, days
	}
}

// daysBetween counts whole calendar days from a to b, ignoring the
// time-of-day component of both.
func daysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
