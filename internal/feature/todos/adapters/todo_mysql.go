package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"todo_backend/internal/feature/todos/domain/entity"
	"todo_backend/internal/feature/todos/usecase"
)

// todoMySQL is a MySQL implementation of the TodoRepository interface.
// Every query filters on creator_id, so one user can never see or touch
// another user's todos.
type todoMySQL struct {
	db *gorm.DB
}

// Compile-time check to ensure todoMySQL implements TodoRepository.
var _ usecase.TodoRepository = (*todoMySQL)(nil)

// NewTodoMySQL creates a new instance of todoMySQL.
func NewTodoMySQL(db *gorm.DB) *todoMySQL {
	return &todoMySQL{db: db}
}

// Create persists a new todo.
func (r *todoMySQL) Create(ctx context.Context, todo *entity.Todo) error {
	model := TodoModelFromEntity(todo)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	todo.ID = model.ID
	todo.CreatedAt = model.CreatedAt
	todo.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID retrieves the creator's todo by ID, or usecase.ErrTodoNotFound.
func (r *todoMySQL) FindByID(ctx context.Context, id, creatorID uint) (*entity.Todo, error) {
	var model TodoModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND creator_id = ?", id, creatorID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTodoNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

// FindAllByCreator retrieves every todo owned by the creator.
func (r *todoMySQL) FindAllByCreator(ctx context.Context, creatorID uint) ([]*entity.Todo, error) {
	var models []TodoModel
	err := r.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	todos := make([]*entity.Todo, len(models))
	for i, m := range models {
		todos[i] = m.ToEntity()
	}
	return todos, nil
}

// Update persists changes to an existing todo. Save writes all columns,
// including clearing completed_at back to NULL.
func (r *todoMySQL) Update(ctx context.Context, todo *entity.Todo) error {
	model := TodoModelFromEntity(todo)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes the creator's todo, or returns usecase.ErrTodoNotFound when
// no row matched.
func (r *todoMySQL) Delete(ctx context.Context, id, creatorID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND creator_id = ?", id, creatorID).
		Delete(&TodoModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrTodoNotFound
	}
	return nil
}
