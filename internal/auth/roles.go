package auth

import (
	"strings"

	"github.com/PMerupula/Homework-3--Developing-Backend/internal/models"
)

// DefaultRoleMap matches the accounts provisioned in the Dex test
// configuration. The admin account is itself a moderator-mapped email,
// not a separate role.
var DefaultRoleMap = map[string]models.Role{
	"admin@hw3.com":     models.RoleModerator,
	"moderator@hw3.com": models.RoleModerator,
	"user@hw3.com":      models.RoleUser,
}

// Roles maps authenticated emails to roles. The table is fixed at
// construction; any email outside it is a plain user.
type Roles struct {
	byEmail map[string]models.Role
}

// NewRoles builds a role mapper. A nil or empty table falls back to
// DefaultRoleMap.
func NewRoles(table map[string]models.Role) *Roles {
	if len(table) == 0 {
		table = DefaultRoleMap
	}
	return &Roles{byEmail: table}
}

// ParseRoleMap parses a "email:role,email:role" override string. Entries
// with an unknown role name or missing separator are dropped.
func ParseRoleMap(s string) map[string]models.Role {
	if s == "" {
		return nil
	}
	table := make(map[string]models.Role)
	for _, entry := range strings.Split(s, ",") {
		email, role, ok := strings.Cut(strings.TrimSpace(entry), ":")
		if !ok {
			continue
		}
		switch models.Role(role) {
		case models.RoleUser, models.RoleModerator:
			table[email] = models.Role(role)
		}
	}
	return table
}

// RoleOf never fails; any email absent from the table is a plain user.
func (r *Roles) RoleOf(email string) models.Role {
	if role, ok := r.byEmail[email]; ok {
		return role
	}
	return models.RoleUser
}

// Privileged reports whether email maps to the moderator role.
func (r *Roles) Privileged(email string) bool {
	return r.RoleOf(email) == models.RoleModerator
}
