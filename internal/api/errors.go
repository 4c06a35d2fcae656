package api

import (
	"errors"
	"net/http"

	"github.com/PMerupula/Homework-3--Developing-Backend/internal/auth"
	"github.com/PMerupula/Homework-3--Developing-Backend/internal/news"
	"github.com/PMerupula/Homework-3--Developing-Backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// writeError maps the service error taxonomy onto HTTP statuses and the
// JSON error envelope.
func writeError(c *gin.Context, log zerolog.Logger, err error) {
	var ve *service.ValidationError
	switch {
	case errors.Is(err, auth.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, auth.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot delete comments by other moderators/admins"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message})
	case errors.Is(err, news.ErrMissingAPIKey), errors.Is(err, news.ErrSearchUnavailable):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		log.Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
