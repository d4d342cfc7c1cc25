package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
	date := func(days int) *time.Time {
		d := now.AddDate(0, 0, days)
		return &d
	}

	cases := []struct {
		name     string
		expiry   *time.Time
		want     Status
		wantDays int
	}{
		{"no expiry date", nil, StatusIndeterminate, 0},
		{"expired yesterday", date(-1), StatusExpired, -1},
		{"expired long ago", date(-90), StatusExpired, -90},
		{"expires today", date(0), StatusExpiring, 0},
		{"expires in 10 days", date(10), StatusExpiring, 10},
		{"expires in exactly 30 days", date(30), StatusExpiring, 30},
		{"expires in 31 days", date(31), StatusValid, 31},
		{"expires in 45 days", date(45), StatusValid, 45},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, days := Classify(c.expiry, now)
			assert.Equal(t, c.want, got)
			assert.Equal(t, c.wantDays, days)
		})
	}
}

func TestClassifyIgnoresTimeOfDay(t *testing.T) {
	// An expiry late tonight is still "today" regardless of the clock.
	now := time.Date(2024, 6, 15, 23, 59, 0, 0, time.UTC)
	expiry := time.Date(2024, 6, 15, 0, 1, 0, 0, time.UTC)

	got, days := Classify(&expiry, now)
	assert.Equal(t, StatusExpiring, got)
	assert.Equal(t, 0, days)
}

func TestClassifyMovesWithoutWrites(t *testing.T) {
	expiry := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	early, _ := Classify(&expiry, expiry.AddDate(0, 0, -60))
	near, _ := Classify(&expiry, expiry.AddDate(0, 0, -10))
	late, _ := Classify(&expiry, expiry.AddDate(0, 0, 5))

	assert.Equal(t, StatusValid, early)
	assert.Equal(t, StatusExpiring, near)
	assert.Equal(t, StatusExpired, late)
}
