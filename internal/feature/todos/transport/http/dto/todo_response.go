package dto

import (
	"time"

	"todo_backend/internal/feature/todos/domain/entity"
)

// TodoRes is the outward shape of one todo.
type TodoRes struct {
	ID          uint       `json:"id"`
	Text        string     `json:"text"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt"`
}

// TodoResFromEntity converts a domain entity to its response shape.
func TodoResFromEntity(t *entity.Todo) TodoRes {
	return TodoRes{
		ID:          t.ID,
		Text:        t.Text,
		Completed:   t.Completed,
		CompletedAt: t.CompletedAt,
	}
}

// TodoListRes is the response body for GET /todos.
type TodoListRes struct {
	Todos []TodoRes `json:"todos"`
}

// TodoListResFromEntities converts a slice of todos to the list response.
func TodoListResFromEntities(todos []*entity.Todo) TodoListRes {
	res := TodoListRes{Todos: make([]TodoRes, len(todos))}
	for i, t := range todos {
		res.Todos[i] = TodoResFromEntity(t)
	}
	return res
}

// ErrorRes is the generic error response body.
type ErrorRes struct {
	Error string `json:"error"`
}
