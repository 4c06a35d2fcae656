package api

import (
	"net/http"

	"github.com/PMerupula/Homework-3--Developing-Backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CommentHandler serves comment listing, posting and moderation.
type CommentHandler struct {
	svc service.CommentService
	log zerolog.Logger
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(svc service.CommentService, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{svc: svc, log: log}
}

// List: GET /api/comments?url=...
func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.svc.ListForURL(c.Request.Context(), c.Query("url"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// Post: POST /api/comments
// Body: {"url": ..., "text": ...}; requires a session.
func (h *CommentHandler) Post(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		URL  string `json:"url"`
		Text string `json:"text"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json: " + err.Error()})
		return
	}

	comment, err := h.svc.Post(c.Request.Context(), user, req.URL, req.Text)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "comment": comment})
}

// Delete: POST /api/comments/delete/:id
// Soft delete: the comment text becomes the tombstone, the row stays.
func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.svc.SoftDelete(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Redact: PATCH /api/comments/:id
// Body: {"text": ...}; replaces the comment text verbatim.
func (h *CommentHandler) Redact(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	// Body decode errors surface as a missing-text validation failure so
	// the moderator gate still runs first.
	_ = c.ShouldBindJSON(&req)

	if err := h.svc.Redact(c.Request.Context(), currentUser(c), c.Param("id"), req.Text); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
