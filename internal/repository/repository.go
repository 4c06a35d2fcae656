package repository

import (
	"context"

	"github.com/PMerupula/Homework-3--Developing-Backend/internal/database"
	"github.com/PMerupula/Homework-3--Developing-Backend/internal/models"
)

// CommentRepository defines the interface for comment data operations.
// Every operation touches a single row; the store's per-row atomicity is
// all the consistency this service relies on.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByURL(ctx context.Context, url string) ([]models.Comment, error)
	GetByID(ctx context.Context, id string) (*models.Comment, error)
	UpdateText(ctx context.Context, id, text string) (bool, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Comment CommentRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Comment: NewCommentRepo(db),
	}
}
