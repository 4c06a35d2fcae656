package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/PMerupula/Homework-3--Developing-Backend/internal/auth"
	"github.com/PMerupula/Homework-3--Developing-Backend/internal/config"
	"github.com/PMerupula/Homework-3--Developing-Backend/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Authenticator is the OIDC surface the handlers need; the concrete
// implementation lives in internal/auth.
type Authenticator interface {
	AuthCodeURL(state, nonce string) string
	Exchange(ctx context.Context, code, nonce string) (*auth.Identity, error)
}

// AuthHandler drives login, the provider callback, logout and the
// current-user endpoint.
type AuthHandler struct {
	authn         Authenticator
	sessions      session.Store
	frontendURL   string
	secureCookies bool
	log           zerolog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authn Authenticator, sessions session.Store, cfg *config.Config, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		authn:         authn,
		sessions:      sessions,
		frontendURL:   cfg.Server.FrontendURL,
		secureCookies: cfg.Server.Env == "production",
		log:           log.With().Str("component", "auth").Logger(),
	}
}

// Login: GET /, GET /login
// Starts the OIDC flow with a fresh state and nonce pair.
func (h *AuthHandler) Login(c *gin.Context) {
	state, err := session.NewToken()
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	nonce, err := session.NewToken()
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	if err := h.sessions.SaveLogin(c.Request.Context(), state, nonce); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.Redirect(http.StatusFound, h.authn.AuthCodeURL(state, nonce))
}

// Authorize: GET /authorize
// Completes the OIDC exchange and establishes the session.
func (h *AuthHandler) Authorize(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")
	if state == "" || code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing state or code"})
		return
	}

	nonce, err := h.sessions.TakeLogin(c.Request.Context(), state)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown or expired login state"})
			return
		}
		writeError(c, h.log, err)
		return
	}

	ident, err := h.authn.Exchange(c.Request.Context(), code, nonce)
	if err != nil {
		h.log.Warn().Err(err).Msg("OIDC exchange failed")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication failed"})
		return
	}

	token, err := h.sessions.Create(c.Request.Context(), ident)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	h.log.Info().Str("email", ident.Email).Msg("session established")
	c.SetCookie(sessionCookie, token, 24*60*60, "/", "", h.secureCookies, true)
	c.Redirect(http.StatusFound, h.frontendURL)
}

// Logout: GET /logout
// Destroys the session and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(sessionCookie); err == nil && token != "" {
		if err := h.sessions.Delete(c.Request.Context(), token); err != nil {
			h.log.Warn().Err(err).Msg("session delete failed")
		}
	}
	c.SetCookie(sessionCookie, "", -1, "/", "", h.secureCookies, true)
	c.Redirect(http.StatusFound, "/")
}

// CurrentUser: GET /api/user
// Returns the session identity with its derived role, or null.
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
