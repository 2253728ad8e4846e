package domain

import "time"

// UserRole enumerates the roles a user can hold.
type UserRole string

const (
	// UserRoleCliente is the store default for users created through signup.
	UserRoleCliente UserRole = "CLIENTE"
	// UserRoleAsesor marks advisors eligible for case auto-assignment.
	UserRoleAsesor UserRole = "ASESOR"
)

// User is the domain model for people who open cases or advise on them.
// Password is nullable; the signup flow creates users without one.
type User struct {
	ID        string
	Name      string
	Email     string
	Password  *string
	Role      UserRole
	CreatedAt time.Time
}
