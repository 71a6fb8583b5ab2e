// Package router wires handlers and middleware into the gin engine.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "todo_backend/internal/feature/auth/transport/handler"
	authmw "todo_backend/internal/feature/auth/transport/middleware"
	todohandler "todo_backend/internal/feature/todos/transport/handler"
	"todo_backend/internal/platform/http/handler"
	"todo_backend/internal/shared/ratelimiter"
)

// NewRouter builds the route table. Everything below the auth group requires
// a live session token in the x-auth header.
func NewRouter(authH *authhandler.AuthHandler, todoH *todohandler.TodoHandler,
	gate authmw.Authenticator) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	// Liveness probe.
	r.GET("/healthz", handler.Health)

	// Credential endpoints are rate limited per client IP to slow down
	// password guessing and bulk account creation.
	limiter := ratelimiter.NewRateLimiter(10, time.Minute)
	credentials := r.Group("/")
	credentials.Use(limiter.Middleware())
	{
		// Registration issues the first session token.
		credentials.POST("/users", authH.Register)
		// Login issues an additional session token.
		credentials.POST("/users/login", authH.Login)
	}

	// Protected routes.
	auth := r.Group("/")
	auth.Use(authmw.AuthRequired(gate))
	{
		auth.GET("/users/me", authH.Me)
		auth.DELETE("/users/me/token", authH.Logout)

		auth.POST("/todos", todoH.Create)
		auth.GET("/todos", todoH.List)
		auth.GET("/todos/:id", todoH.Get)
		auth.PATCH("/todos/:id", todoH.Update)
		auth.DELETE("/todos/:id", todoH.Delete)
	}

	return r
}
