package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medvault-dev/medvault/internal/session"
	"github.com/medvault-dev/medvault/internal/types"
)

type AuthenticatedUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// RequireSession resolves the session cookie and stashes the authenticated
// user in the gin context. Requests without a valid session are rejected
// before the downstream handler runs.
func RequireSession(sessions *session.Manager) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(session.CookieName)

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
			return
		}

		sess, err := sessions.Resolve(ctx.Request.Context(), token)

		if err != nil {
			if !errors.Is(err, session.ErrInvalidSession) {
				log.Printf("Failed to resolve session: %v", err)
			}
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
			return
		}

		ctx.Set(types.ContextUserKey, AuthenticatedUser{
			ID:       sess.UserID,
			Username: sess.Username,
		})
		ctx.Next()
	}
}
