package auth_test

import (
	"errors"
	"testing"

	"github.com/PMerupula/Homework-3--Developing-Backend/internal/auth"
	"github.com/PMerupula/Homework-3--Developing-Backend/internal/models"
)

func comment(author string) *models.Comment {
	return &models.Comment{ID: "c1", URL: "https://x", AuthorEmail: author, Text: "hi"}
}

func TestCanModerate(t *testing.T) {
	roles := auth.NewRoles(nil)

	cases := []struct {
		name   string
		actor  string
		role   models.Role
		author string
		action auth.Action
		want   error
	}{
		{
			name:  "plain user cannot redact",
			actor: "user@hw3.com", role: models.RoleUser,
			author: "someone@example.com", action: auth.ActionRedact,
			want: auth.ErrUnauthorized,
		},
		{
			name:  "plain user cannot soft delete",
			actor: "user@hw3.com", role: models.RoleUser,
			author: "someone@example.com", action: auth.ActionSoftDelete,
			want: auth.ErrUnauthorized,
		},
		{
			name:  "moderator soft deletes ordinary user's comment",
			actor: "moderator@hw3.com", role: models.RoleModerator,
			author: "someone@example.com", action: auth.ActionSoftDelete,
			want: nil,
		},
		{
			name:  "moderator soft deletes own comment",
			actor: "moderator@hw3.com", role: models.RoleModerator,
			author: "moderator@hw3.com", action: auth.ActionSoftDelete,
			want: nil,
		},
		{
			name:  "moderator cannot soft delete admin's comment",
			actor: "moderator@hw3.com", role: models.RoleModerator,
			author: "admin@hw3.com", action: auth.ActionSoftDelete,
			want: auth.ErrForbidden,
		},
		{
			name:  "admin cannot soft delete moderator's comment",
			actor: "admin@hw3.com", role: models.RoleModerator,
			author: "moderator@hw3.com", action: auth.ActionSoftDelete,
			want: auth.ErrForbidden,
		},
		{
			// Redact has no same-author restriction; the asymmetry with
			// soft delete is intentional.
			name:  "admin redacts moderator's comment",
			actor: "admin@hw3.com", role: models.RoleModerator,
			author: "moderator@hw3.com", action: auth.ActionRedact,
			want: nil,
		},
		{
			name:  "moderator redacts admin's comment",
			actor: "moderator@hw3.com", role: models.RoleModerator,
			author: "admin@hw3.com", action: auth.ActionRedact,
			want: nil,
		},
		{
			name:  "moderator redacts ordinary comment",
			actor: "moderator@hw3.com", role: models.RoleModerator,
			author: "someone@example.com", action: auth.ActionRedact,
			want: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := roles.CanModerate(tc.actor, tc.role, comment(tc.author), tc.action)
			if !errors.Is(err, tc.want) {
				t.Errorf("CanModerate() = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestCanModerate_TombstonedStaysModeratable(t *testing.T) {
	roles := auth.NewRoles(nil)
	target := comment("someone@example.com")
	target.Text = models.Tombstone

	if err := roles.CanModerate("moderator@hw3.com", models.RoleModerator, target, auth.ActionSoftDelete); err != nil {
		t.Errorf("Soft delete on tombstoned comment should be permitted, got %v", err)
	}
	if err := roles.CanModerate("moderator@hw3.com", models.RoleModerator, target, auth.ActionRedact); err != nil {
		t.Errorf("Redact on tombstoned comment should be permitted, got %v", err)
	}
}
