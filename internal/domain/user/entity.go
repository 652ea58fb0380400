package user

import "time"

type Role string

const (
	RoleEmployee Role = "employee" // Regular employee, manages own attendance
	RoleManager  Role = "manager"  // Sees every employee's attendance
)

// ValidRoles lists every role accepted at registration.
var ValidRoles = []string{string(RoleEmployee), string(RoleManager)}

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	EmployeeID   *string
	Department   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsManager checks if user has the manager role
func (u *User) IsManager() bool {
	return u.Role == RoleManager
}
