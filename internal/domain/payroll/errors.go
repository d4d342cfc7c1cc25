package payroll

import "errors"

var (
	ErrRunNotFound      = errors.New("payroll run not found")
	ErrRunExists        = errors.New("payroll run already exists for this company and period")
	ErrNoActiveStaff    = errors.New("company has no active employees in the period")
	ErrIncidentNotFound = errors.New("payroll incident not found")
)
