package domain

import "time"

// Role is the closed set of actor kinds known to the portal.
type Role string

const (
	RoleStudent  Role = "student"
	RoleEmployer Role = "employer"
	RoleOfficer  Role = "officer"
	RoleAdmin    Role = "admin"
)

// Roles lists every valid role.
func Roles() []Role {
	return []Role{RoleStudent, RoleEmployer, RoleOfficer, RoleAdmin}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleEmployer, RoleOfficer, RoleAdmin:
		return true
	default:
		return false
	}
}

// User is an account holder of any role.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	Name         string
	Email        string
	CreatedAt    time.Time
}
