package api

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/PMerupula/Homework-3--Developing-Backend/internal/auth"
	"github.com/PMerupula/Homework-3--Developing-Backend/internal/config"
	"github.com/PMerupula/Homework-3--Developing-Backend/internal/models"
	"github.com/PMerupula/Homework-3--Developing-Backend/internal/service"
	"github.com/PMerupula/Homework-3--Developing-Backend/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// sessionCookie names the cookie carrying the opaque session token.
const sessionCookie = "session_token"

// userKey is the Gin context key the resolved identity is stashed under.
const userKey = "current_user"

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, sessions session.Store, authn Authenticator, roles *auth.Roles, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode from the deployment flag
	if cfg.Server.Env == "development" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())
	router.Use(sessionMiddleware(sessions, roles))

	// Handlers
	articleHandler := NewArticleHandler(services.Article, cfg.News.APIKey, log)
	commentHandler := NewCommentHandler(services.Comment, log)
	authHandler := NewAuthHandler(authn, sessions, cfg, log)

	// Health check
	router.GET("/health", healthCheck)

	// JSON API
	api := router.Group("/api")
	{
		api.GET("/key", articleHandler.Key)
		api.GET("/articles", articleHandler.Articles)
		api.GET("/user", authHandler.CurrentUser)
		api.GET("/comments", commentHandler.List)
		api.POST("/comments", commentHandler.Post)
		api.POST("/comments/delete/:id", commentHandler.Delete)
		api.PATCH("/comments/:id", commentHandler.Redact)
	}

	// OIDC flow
	router.GET("/", authHandler.Login)
	router.GET("/login", authHandler.Login)
	router.GET("/authorize", authHandler.Authorize)
	router.GET("/logout", authHandler.Logout)

	// Built client app with SPA fallback
	router.NoRoute(spaFallback(cfg.Assets.StaticDir, cfg.Assets.TemplateDir))

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "campus-news-backend",
	})
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS. Credentials are allowed because the session
// rides on a cookie.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// sessionMiddleware resolves the session cookie to an identity and stashes
// the resulting user on the request context. Requests without a live
// session proceed anonymously.
func sessionMiddleware(sessions session.Store, roles *auth.Roles) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(sessionCookie); err == nil && token != "" {
			if ident, err := sessions.Get(c.Request.Context(), token); err == nil {
				c.Set(userKey, &models.User{
					Email:    ident.Email,
					Username: displayName(ident),
					Role:     roles.RoleOf(ident.Email),
				})
			}
		}
		c.Next()
	}
}

// currentUser returns the resolved session user, or nil for anonymous
// requests.
func currentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(userKey); ok {
		if u, ok := v.(*models.User); ok {
			return u
		}
	}
	return nil
}

// displayName falls back to the email local part when the provider sends
// no name claim.
func displayName(ident *auth.Identity) string {
	if ident.Name != "" {
		return ident.Name
	}
	email := ident.Email
	for i := 0; i < len(email); i++ {
		if email[i] == '@' {
			return email[:i]
		}
	}
	return email
}

// spaFallback serves built client assets, falling back to the index page so
// client-side routes still resolve.
func spaFallback(staticDir, templateDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		rel := path.Clean(c.Request.URL.Path)
		full := filepath.Join(staticDir, filepath.FromSlash(rel))
		if info, err := os.Stat(full); err == nil && !info.IsDir() {
			c.File(full)
			return
		}
		c.File(filepath.Join(templateDir, "index.html"))
	}
}
