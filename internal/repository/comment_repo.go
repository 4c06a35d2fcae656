package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/PMerupula/Homework-3--Developing-Backend/internal/database"
	"github.com/PMerupula/Homework-3--Developing-Backend/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *sqlx.DB
}

// NewCommentRepo creates a new comment repository. The shared connection is
// wrapped with sqlx for struct scanning.
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: sqlx.NewDb(db.DB, "postgres")}
}

// Create inserts a new comment, assigning its id and timestamp when unset.
func (r *commentRepo) Create(ctx context.Context, comment *models.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now().UTC()
	}
	query := `
		INSERT INTO comments (id, url, author_email, display_name, text, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		comment.ID, comment.URL, comment.AuthorEmail, comment.DisplayName,
		comment.Text, comment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// ListByURL returns all comments for an article URL in creation order.
func (r *commentRepo) ListByURL(ctx context.Context, url string) ([]models.Comment, error) {
	comments := []models.Comment{}
	query := `
		SELECT id, url, author_email, display_name, text, created_at
		FROM comments
		WHERE url = $1
		ORDER BY created_at
	`
	if err := r.db.SelectContext(ctx, &comments, query, url); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// GetByID retrieves a comment by ID. An unknown id yields (nil, nil).
func (r *commentRepo) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	var comment models.Comment
	query := `SELECT id, url, author_email, display_name, text, created_at FROM comments WHERE id = $1`
	err := r.db.GetContext(ctx, &comment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return &comment, nil
}

// UpdateText overwrites a comment's text in place, leaving every other
// column untouched. Returns false when no row matched.
func (r *commentRepo) UpdateText(ctx context.Context, id, text string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE comments SET text = $1 WHERE id = $2`, text, id)
	if err != nil {
		return false, fmt.Errorf("update comment text: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
