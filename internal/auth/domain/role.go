package domain

import "errors"

// Role is the closed set of account roles. Membership is validated at the
// boundary via ParseRole; the store only ever sees canonical values.
type Role string

const (
	RoleCustomer        Role = "customer"
	RoleDriver          Role = "driver"
	RoleServiceProvider Role = "service_provider"
)

// ErrUnknownRole reports a role value outside the closed set.
var ErrUnknownRole = errors.New("domain: unknown role")

// Roles lists every valid role.
func Roles() []Role {
	return []Role{RoleCustomer, RoleDriver, RoleServiceProvider}
}

// ParseRole validates s against the closed role set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer, RoleDriver, RoleServiceProvider:
		return Role(s), nil
	default:
		return "", ErrUnknownRole
	}
}

func (r Role) String() string { return string(r) }
