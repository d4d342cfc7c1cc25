package master

import "errors"

var (
	ErrPositionNotFound   = errors.New("position not found")
	ErrPositionExists     = errors.New("position already exists")
	ErrPositionReferenced = errors.New("position is assigned to an employee")
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountExists      = errors.New("account already exists for this company")
)
