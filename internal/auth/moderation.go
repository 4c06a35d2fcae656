package auth

import (
	"errors"

	"github.com/PMerupula/Homework-3--Developing-Backend/internal/models"
)

var (
	// ErrUnauthorized denies callers without the moderator role.
	ErrUnauthorized = errors.New("moderator role required")

	// ErrForbidden denies a privileged actor touching another privileged
	// account's comment.
	ErrForbidden = errors.New("cannot remove comments by other moderators or admins")
)

// Action is a moderation operation on a comment's text.
type Action int

const (
	// ActionRedact overwrites the text with moderator-supplied content.
	ActionRedact Action = iota
	// ActionSoftDelete overwrites the text with the fixed tombstone.
	ActionSoftDelete
)

// CanModerate decides whether the actor may apply action to the target
// comment. Both actions require the moderator role. Soft delete
// additionally refuses to touch a privileged author's comment unless the
// actor is that author: moderators and the admin may remove their own
// comments but not each other's. Redact carries no such restriction; the
// asymmetry is deliberate fidelity to the deployed policy, not an
// endorsement of it.
func (r *Roles) CanModerate(actorEmail string, actorRole models.Role, target *models.Comment, action Action) error {
	if actorRole != models.RoleModerator {
		return ErrUnauthorized
	}
	if action == ActionSoftDelete && r.Privileged(target.AuthorEmail) && actorEmail != target.AuthorEmail {
		return ErrForbidden
	}
	return nil
}
