package user

import "fmt"

// UserRole is the closed set of account roles. The type carries no
// privilege ordering; authorization decisions belong to the caller.
type UserRole string

const (
	RoleAnonymous     UserRole = "ANONYMOUS"
	RoleAuthenticated UserRole = "AUTHENTICATED"
	RoleManager       UserRole = "MANAGER"
	RoleAdmin         UserRole = "ADMIN"
)

// Roles returns every valid role in declaration order.
func Roles() []UserRole {
	return []UserRole{RoleAnonymous, RoleAuthenticated, RoleManager, RoleAdmin}
}

// ParseUserRole converts a raw string into a UserRole, rejecting anything
// outside the closed set.
func ParseUserRole(s string) (UserRole, error) {
	role := UserRole(s)
	if !role.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
	return role, nil
}

// Valid reports membership in the closed role set.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAnonymous, RoleAuthenticated, RoleManager, RoleAdmin:
		return true
	}
	return false
}

func (r UserRole) String() string {
	return string(r)
}
