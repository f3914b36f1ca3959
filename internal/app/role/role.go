package role

// Role is the access level carried in JWT claims and stored per user.
type Role string

const (
	User    Role = "user"
	Manager Role = "manager"
	Admin   Role = "admin"
)

// Valid reports whether r is one of the known roles.
func Valid(r Role) bool {
	switch r {
	case User, Manager, Admin:
		return true
	}
	return false
}
