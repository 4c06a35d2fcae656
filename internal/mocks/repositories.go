package mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/PMerupula/Homework-3--Developing-Backend/internal/models"
)

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	Comments    map[string]*models.Comment
	Order       []string
	CreateError error
	UpdateError error
	nextID      int
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		Comments: make(map[string]*models.Comment),
	}
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	if comment.ID == "" {
		m.nextID++
		comment.ID = fmt.Sprintf("comment-%d", m.nextID)
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now().UTC()
	}
	stored := *comment
	m.Comments[comment.ID] = &stored
	m.Order = append(m.Order, comment.ID)
	return nil
}

func (m *MockCommentRepository) ListByURL(ctx context.Context, url string) ([]models.Comment, error) {
	comments := []models.Comment{}
	for _, id := range m.Order {
		if c := m.Comments[id]; c != nil && c.URL == url {
			comments = append(comments, *c)
		}
	}
	return comments, nil
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	c, ok := m.Comments[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (m *MockCommentRepository) UpdateText(ctx context.Context, id, text string) (bool, error) {
	if m.UpdateError != nil {
		return false, m.UpdateError
	}
	c, ok := m.Comments[id]
	if !ok {
		return false, nil
	}
	c.Text = text
	return true, nil
}
