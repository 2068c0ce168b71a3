package models

const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
)

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	return role == RoleEmployee || role == RoleManager
}
