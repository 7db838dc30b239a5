package member

import "errors"

var (
	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidUsername = errors.New("invalid username format")
	ErrEmptyName       = errors.New("name and surname are required")
)

type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleMember, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
