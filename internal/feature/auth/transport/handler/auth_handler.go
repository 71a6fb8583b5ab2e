// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"todo_backend/internal/feature/auth/domain/entity"
	"todo_backend/internal/feature/auth/transport/http/dto"
	"todo_backend/internal/feature/auth/transport/middleware"
	"todo_backend/internal/feature/auth/usecase"
)

// AuthUsecase defines the authentication operations the handlers need.
// Following Go convention, interfaces are defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new user and issues the first session token.
	Register(ctx context.Context, email, password string) (*entity.User, string, error)
	// Login authenticates credentials and issues a new session token.
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	// Logout revokes the presented session token.
	Logout(ctx context.Context, userID uint, tokenString string) error
}

// AuthHandler handles the HTTP surface of registration, login and logout.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /users.
// On success the new session token travels in the x-auth response header and
// the body carries only the user's public projection.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		return
	}

	user, tok, err := h.auth.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			// "in use" is all the caller learns; no internal detail.
			slog.Warn("register rejected: duplicate email", "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "email already in use"})
		case errors.Is(err, usecase.ErrInvalidEmail), errors.Is(err, usecase.ErrPasswordTooShort):
			c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: err.Error()})
		default:
			slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "internal error"})
		}
		return
	}

	slog.Info("user registered", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.Header(middleware.HeaderAuthToken, tok)
	c.JSON(http.StatusOK, dto.UserResFromEntity(user))
}

// Login handles POST /users/login.
// Every authentication failure is the same generic 401 with no token header,
// so responses cannot be used to probe which emails are registered.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		return
	}

	user, tok, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Warn("login failed", "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: "invalid email or password"})
			return
		}
		slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "internal error"})
		return
	}

	slog.Info("user login successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.Header(middleware.HeaderAuthToken, tok)
	c.JSON(http.StatusOK, dto.UserResFromEntity(user))
}

// Me handles GET /users/me. The gate has already resolved the identity.
func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, dto.UserResFromEntity(identity.User))
}

// Logout handles DELETE /users/me/token. It revokes exactly the session the
// request arrived on; sessions on other devices stay active.
func (h *AuthHandler) Logout(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: "unauthorized"})
		return
	}

	if err := h.auth.Logout(c.Request.Context(), identity.User.ID, identity.Token); err != nil {
		slog.Error("logout failed", "error", err, "user_id", identity.User.ID)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "internal error"})
		return
	}

	slog.Info("user logged out", "user_id", identity.User.ID)
	c.Status(http.StatusOK)
}
