package constants

const (
	Admin = "admin"
	User  = "user"
)

// ValidRoles is the set of allowed values for the role column (users and
// account invitations share it).
var ValidRoles = []string{User, Admin}

// IsValidRole returns true if role is one of the allowed values.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}
