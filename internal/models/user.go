package models

// Role is the derived authorization tier of a session. Roles are computed
// from the email on every request and never persisted.
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
)

// User is the authenticated identity attached to a request. Username falls
// back to the email local part when the provider sends no name claim.
type User struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
