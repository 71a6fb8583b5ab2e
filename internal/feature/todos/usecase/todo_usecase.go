// Package usecase implements the business logic for the todos feature.
package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"todo_backend/internal/feature/todos/domain/entity"
)

var (
	// ErrTodoNotFound is returned when no todo matches the ID for the caller.
	// A todo owned by somebody else is reported exactly the same way.
	ErrTodoNotFound = errors.New("todo not found")

	// ErrEmptyText is returned when the todo text is empty after trimming.
	ErrEmptyText = errors.New("todo text must not be empty")
)

// TodoRepository abstracts the persistence layer for todo entities.
// Following Go convention, interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type TodoRepository interface {
	// Create persists a new todo.
	Create(ctx context.Context, todo *entity.Todo) error

	// FindByID retrieves the creator's todo with the given ID, or
	// ErrTodoNotFound.
	FindByID(ctx context.Context, id, creatorID uint) (*entity.Todo, error)

	// FindAllByCreator retrieves every todo owned by the creator.
	FindAllByCreator(ctx context.Context, creatorID uint) ([]*entity.Todo, error)

	// Update persists changes to an existing todo.
	Update(ctx context.Context, todo *entity.Todo) error

	// Delete removes the creator's todo with the given ID, or returns
	// ErrTodoNotFound if there is none.
	Delete(ctx context.Context, id, creatorID uint) error
}

// TodoPatch carries the optional fields of an update. Nil means "leave as is".
type TodoPatch struct {
	Text      *string
	Completed *bool
}

// TodoUsecase implements creator-scoped CRUD on todos.
type TodoUsecase struct {
	todos TodoRepository
}

// NewTodoUsecase creates a new TodoUsecase.
func NewTodoUsecase(todos TodoRepository) *TodoUsecase {
	return &TodoUsecase{todos: todos}
}

// Create stores a new todo for the creator.
func (u *TodoUsecase) Create(ctx context.Context, creatorID uint, text string) (*entity.Todo, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	todo := &entity.Todo{Text: text, CreatorID: creatorID}
	if err := u.todos.Create(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// List returns every todo owned by the creator.
func (u *TodoUsecase) List(ctx context.Context, creatorID uint) ([]*entity.Todo, error) {
	return u.todos.FindAllByCreator(ctx, creatorID)
}

// Get returns one todo owned by the creator.
func (u *TodoUsecase) Get(ctx context.Context, id, creatorID uint) (*entity.Todo, error) {
	return u.todos.FindByID(ctx, id, creatorID)
}

// Update applies a patch to the creator's todo. Completing a todo records the
// completion time; un-completing clears it.
func (u *TodoUsecase) Update(ctx context.Context, id, creatorID uint, patch TodoPatch) (*entity.Todo, error) {
	todo, err := u.todos.FindByID(ctx, id, creatorID)
	if err != nil {
		return nil, err
	}

	if patch.Text != nil {
		text := strings.TrimSpace(*patch.Text)
		if text == "" {
			return nil, ErrEmptyText
		}
		todo.Text = text
	}

	if patch.Completed != nil {
		todo.Completed = *patch.Completed
		if todo.Completed {
			now := time.Now()
			todo.CompletedAt = &now
		} else {
			todo.CompletedAt = nil
		}
	}

	if err := u.todos.Update(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// Delete removes the creator's todo.
func (u *TodoUsecase) Delete(ctx context.Context, id, creatorID uint) error {
	return u.todos.Delete(ctx, id, creatorID)
}
