package api

import (
	"net/http"

	"github.com/PMerupula/Homework-3--Developing-Backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ArticleHandler serves the aggregated feed and the search key endpoint.
type ArticleHandler struct {
	svc    service.ArticleService
	apiKey string
	log    zerolog.Logger
}

// NewArticleHandler creates a new article handler
func NewArticleHandler(svc service.ArticleService, apiKey string, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{svc: svc, apiKey: apiKey, log: log}
}

// Key: GET /api/key
// Exposes the configured search API key to the client app.
func (h *ArticleHandler) Key(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"apiKey": h.apiKey})
}

// Articles: GET /api/articles
// Runs the full aggregation; any facet failure fails the request.
func (h *ArticleHandler) Articles(c *gin.Context) {
	// The page parameter is accepted but not consumed by the aggregation
	// yet; it is reserved for client-side pagination.
	_ = c.Query("page")

	articles, err := h.svc.Aggregate(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}
