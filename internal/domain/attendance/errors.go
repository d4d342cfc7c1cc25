package attendance

import "errors"

var (
	ErrRecordNotFound   = errors.New("attendance record not found")
	ErrAlreadyCheckedIn = errors.New("employee already has an open check-in")
	ErrNotCheckedIn     = errors.New("employee has no open check-in")
)
