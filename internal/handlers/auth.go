package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medvault-dev/medvault/internal/auth"
	"github.com/medvault-dev/medvault/internal/session"
	"github.com/medvault-dev/medvault/internal/store"
	"github.com/medvault-dev/medvault/internal/types"
	"github.com/medvault-dev/medvault/internal/utils"
)

type SignupRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

type LoginRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

type LoginResponse struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message"`
	RedirectTo string             `json:"redirectTo"`
	User       types.UserResponse `json:"user"`
}

type CheckAuthResponse struct {
	Authenticated bool                `json:"authenticated"`
	User          *types.UserResponse `json:"user,omitempty"`
}

func (h *Handler) Signup(ctx *gin.Context) {
	var req SignupRequest

	if err := ctx.ShouldBind(&req); err != nil {
		ctx.String(http.StatusBadRequest, "Missing username or password")
		return
	}

	if req.Username == "" || req.Password == "" {
		ctx.String(http.StatusBadRequest, "Missing username or password")
		return
	}

	passwordHash, err := auth.HashPassword(req.Password)

	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		ctx.String(http.StatusInternalServerError, "Failed to hash password")
		return
	}

	if _, err := h.users.Create(ctx.Request.Context(), req.Username, passwordHash); err != nil {
		if !errors.Is(err, store.ErrUsernameTaken) {
			log.Printf("Failed to create user: %v", err)
		}
		// The old backend collapsed duplicates and database failures into
		// one 500; clients depend on that, so it stays.
		ctx.String(http.StatusInternalServerError, "User already exists or error")
		return
	}

	ctx.String(http.StatusOK, "User registered")
}

func (h *Handler) Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.ShouldBind(&req); err != nil {
		ctx.String(http.StatusBadRequest, "Invalid request")
		return
	}

	user, err := h.users.FindByUsername(ctx.Request.Context(), req.Username)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Distinct from the wrong-password message below. This leaks
			// which usernames exist, matching the old backend's responses.
			ctx.String(http.StatusUnauthorized, "User not found")
			return
		}
		log.Printf("Failed to fetch user: %v", err)
		ctx.String(http.StatusInternalServerError, "Database error")
		return
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		ctx.String(http.StatusUnauthorized, "Incorrect password")
		return
	}

	token, err := h.sessions.Create(ctx.Request.Context(), user.ID, user.Username)

	if err != nil {
		log.Printf("Failed to create session: %v", err)
		ctx.String(http.StatusInternalServerError, "Failed to create session")
		return
	}

	h.setSessionCookie(ctx, token, int(h.sessions.TTL().Seconds()))

	ctx.JSON(http.StatusOK, LoginResponse{
		Success:    true,
		Message:    "Login successful",
		RedirectTo: "/simulation.html",
		User: types.UserResponse{
			ID:       user.ID,
			Username: user.Username,
		},
	})
}

// Logout destroys the session named by the cookie. It succeeds even when the
// session is already gone, so a second logout with a stale cookie is harmless.
func (h *Handler) Logout(ctx *gin.Context) {
	if token, err := ctx.Cookie(session.CookieName); err == nil {
		if err := h.sessions.Destroy(ctx.Request.Context(), token); err != nil {
			log.Printf("Failed to destroy session: %v", err)
			ctx.String(http.StatusInternalServerError, "Failed to log out")
			return
		}
	}

	h.setSessionCookie(ctx, "", -1)

	ctx.String(http.StatusOK, "Logout successful")
}

// CheckAuth reports session state without rejecting; pages use it to decide
// whether to redirect to the login form.
func (h *Handler) CheckAuth(ctx *gin.Context) {
	if token, err := ctx.Cookie(session.CookieName); err == nil {
		if sess, err := h.sessions.Resolve(ctx.Request.Context(), token); err == nil {
			ctx.JSON(http.StatusOK, CheckAuthResponse{
				Authenticated: true,
				User: &types.UserResponse{
					ID:       sess.UserID,
					Username: sess.Username,
				},
			})
			return
		}
	}

	ctx.JSON(http.StatusOK, CheckAuthResponse{Authenticated: false})
}

func (h *Handler) Dashboard(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}

	ctx.String(http.StatusOK, "Welcome user %s", user.Username)
}
