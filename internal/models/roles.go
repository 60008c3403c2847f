package models

const (
	RolePatient = "patient"
	RoleAdmin   = "admin"
)

// ValidRole reports whether role is one of the supported account roles.
func ValidRole(role string) bool {
	switch role {
	case RolePatient, RoleAdmin:
		return true
	}
	return false
}
