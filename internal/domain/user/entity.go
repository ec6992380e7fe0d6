package user

import "time"

type Role string

const (
	RoleAdmin Role = "admin" // Full access, sees aggregate statistics
	RoleUser  Role = "user"  // Authenticated team member
	RoleGuest Role = "guest" // Unauthenticated, public calendar only
)

var RoleValues = []string{
	string(RoleAdmin),
	string(RoleUser),
	string(RoleGuest),
}

type User struct {
	ID        string
	Principal string
	Email     *string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin checks if the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
