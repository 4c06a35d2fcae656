package auth_test

import (
	"testing"

	"github.com/PMerupula/Homework-3--Developing-Backend/internal/auth"
	"github.com/PMerupula/Homework-3--Developing-Backend/internal/models"
)

func TestRoleOf_DefaultMap(t *testing.T) {
	roles := auth.NewRoles(nil)

	cases := []struct {
		email string
		want  models.Role
	}{
		{"admin@hw3.com", models.RoleModerator},
		{"moderator@hw3.com", models.RoleModerator},
		{"user@hw3.com", models.RoleUser},
		{"stranger@example.com", models.RoleUser},
		{"", models.RoleUser},
		{"ADMIN@hw3.com", models.RoleUser}, // lookup is exact, not case-folded
	}
	for _, tc := range cases {
		if got := roles.RoleOf(tc.email); got != tc.want {
			t.Errorf("RoleOf(%q) = %q, want %q", tc.email, got, tc.want)
		}
	}
}

func TestPrivileged(t *testing.T) {
	roles := auth.NewRoles(nil)

	if !roles.Privileged("admin@hw3.com") {
		t.Error("Expected admin@hw3.com to be privileged")
	}
	if !roles.Privileged("moderator@hw3.com") {
		t.Error("Expected moderator@hw3.com to be privileged")
	}
	if roles.Privileged("user@hw3.com") {
		t.Error("Expected user@hw3.com not to be privileged")
	}
	if roles.Privileged("nobody@example.com") {
		t.Error("Expected unknown email not to be privileged")
	}
}

func TestParseRoleMap(t *testing.T) {
	table := auth.ParseRoleMap("boss@corp.com:moderator, intern@corp.com:user,broken,weird@corp.com:owner")

	if got := table["boss@corp.com"]; got != models.RoleModerator {
		t.Errorf("Expected moderator for boss@corp.com, got %q", got)
	}
	if got := table["intern@corp.com"]; got != models.RoleUser {
		t.Errorf("Expected user for intern@corp.com, got %q", got)
	}
	if _, ok := table["broken"]; ok {
		t.Error("Entry without separator should be dropped")
	}
	if _, ok := table["weird@corp.com"]; ok {
		t.Error("Entry with unknown role should be dropped")
	}

	if auth.ParseRoleMap("") != nil {
		t.Error("Empty override should parse to nil")
	}
}

func TestNewRoles_CustomTable(t *testing.T) {
	roles := auth.NewRoles(map[string]models.Role{
		"chief@example.com": models.RoleModerator,
	})

	if got := roles.RoleOf("chief@example.com"); got != models.RoleModerator {
		t.Errorf("Expected moderator, got %q", got)
	}
	// The default map does not apply once a custom table is supplied.
	if got := roles.RoleOf("admin@hw3.com"); got != models.RoleUser {
		t.Errorf("Expected user for admin@hw3.com under custom table, got %q", got)
	}
}
