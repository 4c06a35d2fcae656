package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/PMerupula/Homework-3--Developing-Backend/internal/auth"
	"github.com/PMerupula/Homework-3--Developing-Backend/internal/mocks"
	"github.com/PMerupula/Homework-3--Developing-Backend/internal/models"
	"github.com/PMerupula/Homework-3--Developing-Backend/internal/news"
	"github.com/PMerupula/Homework-3--Developing-Backend/internal/repository"
	"github.com/PMerupula/Homework-3--Developing-Backend/internal/service"
	"github.com/rs/zerolog"
)

func setupServices(repo *mocks.MockCommentRepository) *service.Services {
	roles := auth.NewRoles(nil)
	agg := news.NewAggregator(mocks.NewMockSearcher(), "test-key", nil)
	return service.NewServices(&repository.Repositories{Comment: repo}, roles, agg, zerolog.Nop())
}

func moderator() *models.User {
	return &models.User{Email: "moderator@hw3.com", Username: "moderator", Role: models.RoleModerator}
}

func admin() *models.User {
	return &models.User{Email: "admin@hw3.com", Username: "admin", Role: models.RoleModerator}
}

func plainUser() *models.User {
	return &models.User{Email: "a@b.com", Username: "a", Role: models.RoleUser}
}

func TestPost_RoundTrip(t *testing.T) {
	repo := mocks.NewMockCommentRepository()
	svc := setupServices(repo)
	ctx := context.Background()

	comment, err := svc.Comment.Post(ctx, plainUser(), "https://x", "hi")
	if err != nil {
		t.Fatalf("Post failed: %v", err)
	}
	if comment.ID == "" {
		t.Error("Expected a store-generated id")
	}
	if comment.AuthorEmail != "a@b.com" {
		t.Errorf("Expected author a@b.com, got %q", comment.AuthorEmail)
	}
	if comment.CreatedAt.IsZero() {
		t.Error("Expected a creation timestamp")
	}

	stored, err := repo.GetByID(ctx, comment.ID)
	if err != nil || stored == nil {
		t.Fatalf("Stored comment not retrievable: %v", err)
	}
	if stored.URL != "https://x" || stored.Text != "hi" || stored.AuthorEmail != "a@b.com" {
		t.Errorf("Round trip mismatch: %+v", stored)
	}
}

func TestPost_RequiresSessionAndFields(t *testing.T) {
	svc := setupServices(mocks.NewMockCommentRepository())
	ctx := context.Background()

	if _, err := svc.Comment.Post(ctx, nil, "https://x", "hi"); !errors.Is(err, auth.ErrUnauthorized) {
		t.Errorf("Expected ErrUnauthorized for anonymous post, got %v", err)
	}

	var ve *service.ValidationError
	if _, err := svc.Comment.Post(ctx, plainUser(), "", "hi"); !errors.As(err, &ve) {
		t.Errorf("Expected validation error for missing url, got %v", err)
	}
	if _, err := svc.Comment.Post(ctx, plainUser(), "https://x", ""); !errors.As(err, &ve) {
		t.Errorf("Expected validation error for missing text, got %v", err)
	}
}

func TestListForURL(t *testing.T) {
	repo := mocks.NewMockCommentRepository()
	svc := setupServices(repo)
	ctx := context.Background()

	if _, err := svc.Comment.Post(ctx, plainUser(), "https://x", "first"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Comment.Post(ctx, plainUser(), "https://y", "other page"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Comment.Post(ctx, plainUser(), "https://x", "second"); err != nil {
		t.Fatal(err)
	}

	comments, err := svc.Comment.ListForURL(ctx, "https://x")
	if err != nil {
		t.Fatalf("ListForURL failed: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("Expected 2 comments, got %d", len(comments))
	}
	if comments[0].Text != "first" || comments[1].Text != "second" {
		t.Errorf("Unexpected listing order: %+v", comments)
	}

	var ve *service.ValidationError
	if _, err := svc.Comment.ListForURL(ctx, ""); !errors.As(err, &ve) {
		t.Errorf("Expected validation error for missing url, got %v", err)
	}
}

func TestRedact(t *testing.T) {
	repo := mocks.NewMockCommentRepository()
	svc := setupServices(repo)
	ctx := context.Background()

	posted, err := svc.Comment.Post(ctx, moderator(), "https://x", "hot take")
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Comment.Redact(ctx, plainUser(), posted.ID, "[removed]"); !errors.Is(err, auth.ErrUnauthorized) {
		t.Errorf("Expected ErrUnauthorized for plain user, got %v", err)
	}
	if err := svc.Comment.Redact(ctx, nil, posted.ID, "[removed]"); !errors.Is(err, auth.ErrUnauthorized) {
		t.Errorf("Expected ErrUnauthorized for anonymous caller, got %v", err)
	}

	var ve *service.ValidationError
	if err := svc.Comment.Redact(ctx, admin(), posted.ID, ""); !errors.As(err, &ve) {
		t.Errorf("Expected validation error for missing text, got %v", err)
	}

	if err := svc.Comment.Redact(ctx, admin(), "missing-id", "[removed]"); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	// Admin redacting another privileged author's comment is permitted;
	// only soft delete carries the same-author restriction.
	if err := svc.Comment.Redact(ctx, admin(), posted.ID, "[removed]"); err != nil {
		t.Fatalf("Redact failed: %v", err)
	}

	stored, _ := repo.GetByID(ctx, posted.ID)
	if stored.Text != "[removed]" {
		t.Errorf("Expected redacted text, got %q", stored.Text)
	}
	if stored.AuthorEmail != "moderator@hw3.com" {
		t.Errorf("Redact must not change the author, got %q", stored.AuthorEmail)
	}
	if !stored.CreatedAt.Equal(posted.CreatedAt) {
		t.Error("Redact must not change the creation timestamp")
	}
}

func TestSoftDelete(t *testing.T) {
	repo := mocks.NewMockCommentRepository()
	svc := setupServices(repo)
	ctx := context.Background()

	ordinary, err := svc.Comment.Post(ctx, plainUser(), "https://x", "hi")
	if err != nil {
		t.Fatal(err)
	}
	privileged, err := svc.Comment.Post(ctx, moderator(), "https://x", "mod note")
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Comment.SoftDelete(ctx, plainUser(), ordinary.ID); !errors.Is(err, auth.ErrUnauthorized) {
		t.Errorf("Expected ErrUnauthorized for plain user, got %v", err)
	}

	// One privileged actor may not remove another's comment.
	if err := svc.Comment.SoftDelete(ctx, admin(), privileged.ID); !errors.Is(err, auth.ErrForbidden) {
		t.Errorf("Expected ErrForbidden, got %v", err)
	}
	stored, _ := repo.GetByID(ctx, privileged.ID)
	if stored.Text != "mod note" {
		t.Errorf("Denied soft delete must leave text untouched, got %q", stored.Text)
	}

	// Privileged authors may self-remove.
	if err := svc.Comment.SoftDelete(ctx, moderator(), privileged.ID); err != nil {
		t.Fatalf("Self soft delete failed: %v", err)
	}
	stored, _ = repo.GetByID(ctx, privileged.ID)
	if stored.Text != models.Tombstone {
		t.Errorf("Expected tombstone, got %q", stored.Text)
	}

	// Any moderator may remove an ordinary user's comment.
	if err := svc.Comment.SoftDelete(ctx, admin(), ordinary.ID); err != nil {
		t.Fatalf("Soft delete failed: %v", err)
	}
	stored, _ = repo.GetByID(ctx, ordinary.ID)
	if stored.Text != models.Tombstone {
		t.Errorf("Expected tombstone, got %q", stored.Text)
	}
	if stored.AuthorEmail != "a@b.com" {
		t.Errorf("Soft delete must not change the author, got %q", stored.AuthorEmail)
	}

	if err := svc.Comment.SoftDelete(ctx, admin(), "missing-id"); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestSoftDelete_TombstonedRemainsCallable(t *testing.T) {
	repo := mocks.NewMockCommentRepository()
	svc := setupServices(repo)
	ctx := context.Background()

	posted, err := svc.Comment.Post(ctx, plainUser(), "https://x", "hi")
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.Comment.SoftDelete(ctx, admin(), posted.ID); err != nil {
		t.Fatal(err)
	}
	// No terminal state: the same operations stay callable.
	if err := svc.Comment.SoftDelete(ctx, admin(), posted.ID); err != nil {
		t.Errorf("Repeated soft delete should succeed, got %v", err)
	}
	if err := svc.Comment.Redact(ctx, admin(), posted.ID, "restored"); err != nil {
		t.Errorf("Redact after soft delete should succeed, got %v", err)
	}
	stored, _ := repo.GetByID(ctx, posted.ID)
	if stored.Text != "restored" {
		t.Errorf("Expected redacted text, got %q", stored.Text)
	}
}
