package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeReferenced = errors.New("employee still referenced by other records")
)
