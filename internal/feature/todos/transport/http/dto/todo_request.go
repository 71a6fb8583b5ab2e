// Package dto defines data transfer objects for the todos feature's HTTP
// transport layer.
package dto

// CreateTodoReq is the request body for POST /todos.
type CreateTodoReq struct {
	Text string `json:"text" binding:"required,min=1"`
}

// UpdateTodoReq is the request body for PATCH /todos/:id. Absent fields are
// left unchanged.
type UpdateTodoReq struct {
	Text      *string `json:"text,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}
