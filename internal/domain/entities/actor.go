package entities

import "strings"

// Role is the actor role carried by the authentication context.
// The zero value is the anonymous role.
type Role string

const (
	RoleAnonymous Role = ""
	RoleUser      Role = "user"
	RoleManager   Role = "manager"
	RoleAdmin     Role = "admin"
)

// ParseRole normalizes a role claim. Unknown values resolve to RoleAnonymous.
func ParseRole(raw string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleUser:
		return RoleUser
	case RoleManager:
		return RoleManager
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleAnonymous
	}
}

// Actor is whoever performs an action on a valuation.
type Actor struct {
	ID   string
	Name string
	Role Role
}

func (a Actor) DisplayName() string {
	if n := strings.TrimSpace(a.Name); n != "" {
		return n
	}
	return a.ID
}

func (a Actor) IsAnonymous() bool {
	return a.Role == RoleAnonymous
}
