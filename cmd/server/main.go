package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"todo_backend/internal/app/di"
	"todo_backend/internal/app/router"
	authadapters "todo_backend/internal/feature/auth/adapters"
	authhandler "todo_backend/internal/feature/auth/transport/handler"
	authusecase "todo_backend/internal/feature/auth/usecase"
	todoadapters "todo_backend/internal/feature/todos/adapters"
	todohandler "todo_backend/internal/feature/todos/transport/handler"
	todousecase "todo_backend/internal/feature/todos/usecase"
	"todo_backend/internal/platform/config"
	"todo_backend/internal/platform/db"
	"todo_backend/internal/platform/hash"
	platformredis "todo_backend/internal/platform/redis"
	"todo_backend/internal/platform/token"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// JWT_SECRET must be set; the server never signs with an empty key.
		log.Fatalf("configuration error: %v", err)
	}

	// db
	gormDB := db.OpenDB(cfg)

	// Redis (optional; sessions fall back to MySQL without it)
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(cfg); err != nil {
		log.Println("[WARN] Redis unavailable. Sessions stored in MySQL.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Platform services
	hasher := hash.NewHasher(cfg.BcryptCost)
	codec := token.NewCodec(cfg.JWTSecret)

	// Repository
	userRepo := authadapters.NewUserMySQL(gormDB)
	sessionRepo := di.NewSessionRepository(rdb, gormDB)
	todoRepo := todoadapters.NewTodoMySQL(gormDB)

	// Usecase
	sessionStore := authusecase.NewSessionStore(codec, sessionRepo, userRepo)
	authUC := authusecase.NewAuthUsecase(userRepo, hasher, sessionStore)
	gate := authusecase.NewGate(codec, sessionStore)
	todoUC := todousecase.NewTodoUsecase(todoRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	todoH := todohandler.NewTodoHandler(todoUC)

	r := router.NewRouter(authH, todoH, gate)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
