// Package handler provides the HTTP handlers for the todos feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"todo_backend/internal/feature/auth/transport/middleware"
	"todo_backend/internal/feature/todos/domain/entity"
	"todo_backend/internal/feature/todos/transport/http/dto"
	"todo_backend/internal/feature/todos/usecase"
)

// TodoUsecase defines the todo operations the handlers need.
// Following Go convention, interfaces are defined by the consumer (handler),
// not the provider (usecase).
type TodoUsecase interface {
	Create(ctx context.Context, creatorID uint, text string) (*entity.Todo, error)
	List(ctx context.Context, creatorID uint) ([]*entity.Todo, error)
	Get(ctx context.Context, id, creatorID uint) (*entity.Todo, error)
	Update(ctx context.Context, id, creatorID uint, patch usecase.TodoPatch) (*entity.Todo, error)
	Delete(ctx context.Context, id, creatorID uint) error
}

// TodoHandler handles the HTTP surface of the todo CRUD. Every route sits
// behind the authentication gate; the creator is always the resolved caller.
type TodoHandler struct {
	todos TodoUsecase
}

// NewTodoHandler creates a new TodoHandler.
func NewTodoHandler(todos TodoUsecase) *TodoHandler {
	return &TodoHandler{todos: todos}
}

// callerID resolves the authenticated user, aborting with 401 when the gate
// did not run.
func callerID(c *gin.Context) (uint, bool) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorRes{Error: "unauthorized"})
		return 0, false
	}
	return identity.User.ID, true
}

// parseID parses the :id route parameter. An unparseable ID is reported as
// not found, the same as a valid ID that matches nothing.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "todo not found"})
		return 0, false
	}
	return uint(id), true
}

// Create handles POST /todos.
func (h *TodoHandler) Create(c *gin.Context) {
	creatorID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.CreateTodoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		return
	}

	todo, err := h.todos.Create(c.Request.Context(), creatorID, req.Text)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyText) {
			c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: err.Error()})
			return
		}
		slog.Error("todo create failed", "error", err, "user_id", creatorID)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, dto.TodoResFromEntity(todo))
}

// List handles GET /todos.
func (h *TodoHandler) List(c *gin.Context) {
	creatorID, ok := callerID(c)
	if !ok {
		return
	}

	todos, err := h.todos.List(c.Request.Context(), creatorID)
	if err != nil {
		slog.Error("todo list failed", "error", err, "user_id", creatorID)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, dto.TodoListResFromEntities(todos))
}

// Get handles GET /todos/:id.
func (h *TodoHandler) Get(c *gin.Context) {
	creatorID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	todo, err := h.todos.Get(c.Request.Context(), id, creatorID)
	if err != nil {
		if errors.Is(err, usecase.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "todo not found"})
			return
		}
		slog.Error("todo get failed", "error", err, "user_id", creatorID, "todo_id", id)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, dto.TodoResFromEntity(todo))
}

// Update handles PATCH /todos/:id.
func (h *TodoHandler) Update(c *gin.Context) {
	creatorID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateTodoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		return
	}

	todo, err := h.todos.Update(c.Request.Context(), id, creatorID, usecase.TodoPatch{
		Text:      req.Text,
		Completed: req.Completed,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTodoNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "todo not found"})
		case errors.Is(err, usecase.ErrEmptyText):
			c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: err.Error()})
		default:
			slog.Error("todo update failed", "error", err, "user_id", creatorID, "todo_id", id)
			c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.TodoResFromEntity(todo))
}

// Delete handles DELETE /todos/:id.
func (h *TodoHandler) Delete(c *gin.Context) {
	creatorID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.todos.Delete(c.Request.Context(), id, creatorID); err != nil {
		if errors.Is(err, usecase.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "todo not found"})
			return
		}
		slog.Error("todo delete failed", "error", err, "user_id", creatorID, "todo_id", id)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "internal error"})
		return
	}

	c.Status(http.StatusOK)
}
