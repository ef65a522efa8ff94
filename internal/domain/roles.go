package domain

type Role string

const (
	// Admin manages accounts: register, delete, and read every profile.
	RoleAdmin Role = "admin"
	// Staff manage their own profile data. Default role for new accounts.
	RoleStaff Role = "staff"
	// Interns have the same self-service rights as staff.
	RoleIntern Role = "intern"
)

// ParseRole validates a role string at the boundary and returns the typed
// value carried everywhere else.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleStaff, RoleIntern:
		return Role(s), true
	}
	return "", false
}

func IsValidRole(s string) bool {
	_, ok := ParseRole(s)
	return ok
}
