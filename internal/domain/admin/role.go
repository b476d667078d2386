package admin

import (
	"errors"
	"regexp"
	"strings"
)

// RoleCode identifies what a console operator may do.
type RoleCode string

const (
	RoleCodeSuperAdmin RoleCode = "SUPER_ADMIN"
	RoleCodeAdmin      RoleCode = "ADMIN"
	RoleCodeViewer     RoleCode = "VIEWER"
)

var roleCodeRegexp = regexp.MustCompile(`^[A-Z0-9_]{3,64}$`)

func (c RoleCode) IsValid() bool {
	return roleCodeRegexp.MatchString(string(c))
}

// CanMutate reports whether the role may create, edit or delete entities.
func (c RoleCode) CanMutate() bool {
	return c == RoleCodeAdmin || c == RoleCodeSuperAdmin
}

var ErrInvalidRoleCode = errors.New("invalid role code")

// ParseRoleCode normalizes a role read from a request, token or database row.
func ParseRoleCode(s string) (RoleCode, error) {
	c := RoleCode(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", ErrInvalidRoleCode
	}
	return c, nil
}
