// Package dto defines data transfer objects for the auth feature's HTTP
// transport layer.
package dto

// RegisterReq is the request body for POST /users.
type RegisterReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}
