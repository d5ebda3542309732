package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medvault-dev/medvault/internal/session"
	"github.com/medvault-dev/medvault/internal/store"
)

// Handler bundles the stores and the session manager the endpoints need.
// Dependencies are injected here instead of living in package globals.
type Handler struct {
	users    *store.UserStore
	profiles *store.ProfileStore
	sessions *session.Manager
}

func New(users *store.UserStore, profiles *store.ProfileStore, sessions *session.Manager) *Handler {
	return &Handler{
		users:    users,
		profiles: profiles,
		sessions: sessions,
	}
}

func (h *Handler) setSessionCookie(ctx *gin.Context, token string, maxAge int) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
