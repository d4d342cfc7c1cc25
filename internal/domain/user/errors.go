package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailExists            = errors.New("email already registered")
	ErrAdminAccessRequired    = errors.New("admin access required")
	ErrManagerAccessRequired  = errors.New("manager access required")
	ErrInsufficientPermission = errors.New("insufficient permission")
)
