package service

import (
	"context"

	"github.com/PMerupula/Homework-3--Developing-Backend/internal/models"
	"github.com/PMerupula/Homework-3--Developing-Backend/internal/news"
	"github.com/rs/zerolog"
)

// articleService is the concrete implementation of ArticleService
type articleService struct {
	agg *news.Aggregator
	log zerolog.Logger
}

func newArticleService(agg *news.Aggregator, log zerolog.Logger) *articleService {
	return &articleService{
		agg: agg,
		log: log.With().Str("component", "articles").Logger(),
	}
}

// Aggregate returns the merged feed for the fixed facets.
func (s *articleService) Aggregate(ctx context.Context) ([]models.Article, error) {
	articles, err := s.agg.Articles(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("aggregation failed")
		return nil, err
	}
	return articles, nil
}
