package user

import "time"

type User struct {
	ID           string
	EmployeeID   *string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

func IsValidRole(r string) bool {
	switch Role(r) {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}
