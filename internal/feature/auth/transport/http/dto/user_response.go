package dto

import "todo_backend/internal/feature/auth/domain/entity"

// UserRes is the public projection of a user. It never carries the password
// hash or the session list; only non-sensitive identity fields go outward.
type UserRes struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// UserResFromEntity builds the public projection of a user.
func UserResFromEntity(u *entity.User) UserRes {
	return UserRes{ID: u.ID, Email: u.Email}
}

// ErrorRes is the generic error response body.
type ErrorRes struct {
	Error string `json:"error"`
}
