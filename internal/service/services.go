package service

import (
	"context"

	"github.com/PMerupula/Homework-3--Developing-Backend/internal/auth"
	"github.com/PMerupula/Homework-3--Developing-Backend/internal/models"
	"github.com/PMerupula/Homework-3--Developing-Backend/internal/news"
	"github.com/PMerupula/Homework-3--Developing-Backend/internal/repository"
	"github.com/rs/zerolog"
)

// CommentService covers posting, listing and moderating comments.
type CommentService interface {
	Post(ctx context.Context, user *models.User, url, text string) (*models.Comment, error)
	ListForURL(ctx context.Context, url string) ([]models.Comment, error)
	Redact(ctx context.Context, user *models.User, id, text string) error
	SoftDelete(ctx context.Context, user *models.User, id string) error
}

// ArticleService produces the aggregated article feed.
type ArticleService interface {
	Aggregate(ctx context.Context) ([]models.Article, error)
}

// Services holds all service interfaces
type Services struct {
	Comment CommentService
	Article ArticleService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, roles *auth.Roles, agg *news.Aggregator, log zerolog.Logger) *Services {
	return &Services{
		Comment: newCommentService(repos.Comment, roles, log),
		Article: newArticleService(agg, log),
	}
}
