package service

import (
	"context"
	"fmt"

	"github.com/PMerupula/Homework-3--Developing-Backend/internal/auth"
	"github.com/PMerupula/Homework-3--Developing-Backend/internal/models"
	"github.com/PMerupula/Homework-3--Developing-Backend/internal/repository"
	"github.com/rs/zerolog"
)

// commentService is the concrete implementation of CommentService
type commentService struct {
	repo  repository.CommentRepository
	roles *auth.Roles
	log   zerolog.Logger
}

func newCommentService(repo repository.CommentRepository, roles *auth.Roles, log zerolog.Logger) *commentService {
	return &commentService{
		repo:  repo,
		roles: roles,
		log:   log.With().Str("component", "comments").Logger(),
	}
}

// Post stores a new comment under the caller's identity.
func (s *commentService) Post(ctx context.Context, user *models.User, url, text string) (*models.Comment, error) {
	if user == nil {
		return nil, auth.ErrUnauthorized
	}
	if url == "" || text == "" {
		return nil, validationErr("Missing url or text")
	}

	comment := &models.Comment{
		URL:         url,
		AuthorEmail: user.Email,
		DisplayName: user.Username,
		Text:        text,
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.log.Info().
		Str("id", comment.ID).
		Str("url", url).
		Msg("comment posted")
	return comment, nil
}

// ListForURL returns the comments attached to an article URL.
func (s *commentService) ListForURL(ctx context.Context, url string) ([]models.Comment, error) {
	if url == "" {
		return nil, validationErr("Missing article URL")
	}
	return s.repo.ListByURL(ctx, url)
}

// Redact overwrites a comment's text with moderator-supplied content.
func (s *commentService) Redact(ctx context.Context, user *models.User, id, text string) error {
	if err := requireModerator(user); err != nil {
		return err
	}
	if text == "" {
		return validationErr("Missing redacted text")
	}
	return s.moderate(ctx, user, id, auth.ActionRedact, text)
}

// SoftDelete overwrites a comment's text with the fixed tombstone. The row
// stays; soft delete is an overwrite, never a deletion.
func (s *commentService) SoftDelete(ctx context.Context, user *models.User, id string) error {
	if err := requireModerator(user); err != nil {
		return err
	}
	return s.moderate(ctx, user, id, auth.ActionSoftDelete, models.Tombstone)
}

// moderate loads the target, runs the authorization check and applies the
// text overwrite. Tombstoned comments stay moderatable under the same
// rules.
func (s *commentService) moderate(ctx context.Context, user *models.User, id string, action auth.Action, newText string) error {
	comment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find comment: %w", err)
	}
	if comment == nil {
		return ErrNotFound
	}
	if err := s.roles.CanModerate(user.Email, user.Role, comment, action); err != nil {
		return err
	}

	ok, err := s.repo.UpdateText(ctx, id, newText)
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	if !ok {
		return ErrNotFound
	}

	s.log.Info().
		Str("id", id).
		Str("actor", user.Email).
		Bool("tombstone", action == auth.ActionSoftDelete).
		Msg("comment moderated")
	return nil
}

// requireModerator gates moderation before any field validation so
// unauthenticated callers always see 401, never 400.
func requireModerator(user *models.User) error {
	if user == nil || user.Role != models.RoleModerator {
		return auth.ErrUnauthorized
	}
	return nil
}
