package models

import (
	"time"
)

// Tombstone is the replacement text a comment carries after a soft delete.
// Soft delete never removes the row; it only overwrites the text.
const Tombstone = "Comment was removed by a moderator"

// Comment is a user comment attached to an article URL. AuthorEmail and
// CreatedAt are immutable once the comment is stored; Text changes only
// through moderation (redact or soft delete).
type Comment struct {
	ID          string    `json:"id" db:"id"`
	URL         string    `json:"url" db:"url"`
	AuthorEmail string    `json:"author_email" db:"author_email"`
	DisplayName string    `json:"display_name,omitempty" db:"display_name"`
	Text        string    `json:"text" db:"text"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
