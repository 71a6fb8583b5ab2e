// Package adapters provides repository implementations for the todos feature.
package adapters

import (
	"time"

	"todo_backend/internal/feature/todos/domain/entity"
)

// TodoModel is the GORM model for the todos table.
type TodoModel struct {
	ID          uint   `gorm:"primaryKey"`
	Text        string `gorm:"size:1024;not null"`
	Completed   bool   `gorm:"not null;default:false"`
	CompletedAt *time.Time
	CreatorID   uint `gorm:"index;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for GORM.
func (TodoModel) TableName() string {
	return "todos"
}

// ToEntity converts the GORM model to a domain entity.
func (m *TodoModel) ToEntity() *entity.Todo {
	return &entity.Todo{
		ID:          m.ID,
		Text:        m.Text,
		Completed:   m.Completed,
		CompletedAt: m.CompletedAt,
		CreatorID:   m.CreatorID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// TodoModelFromEntity converts a domain entity to a GORM model.
func TodoModelFromEntity(t *entity.Todo) *TodoModel {
	return &TodoModel{
		ID:          t.ID,
		Text:        t.Text,
		Completed:   t.Completed,
		CompletedAt: t.CompletedAt,
		CreatorID:   t.CreatorID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
