// Package db opens the MySQL connection used for users, sessions and todos.
package db

import (
	"fmt"
	"log"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	authadapters "todo_backend/internal/feature/auth/adapters"
	"todo_backend/internal/feature/auth/domain/entity"
	todoadapters "todo_backend/internal/feature/todos/adapters"
	"todo_backend/internal/platform/config"
)

// BuildDSN assembles the MySQL DSN. A Cloud SQL instance name switches the
// connection to the unix socket.
func BuildDSN(cfg *config.Config) string {
	if cfg.DBInstance != "" {
		return fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			cfg.DBUser, cfg.DBPassword, cfg.DBInstance, cfg.DBName)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
}

// OpenDB connects to MySQL with retry and optionally runs schema migrations.
// Startup blocks until the database is reachable or the deadline passes.
func OpenDB(cfg *config.Config) *gorm.DB {
	dsn := BuildDSN(cfg)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gmysql.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.RunMigrations {
		if err := db.AutoMigrate(
			&entity.User{},
			&authadapters.SessionModel{},
			&todoadapters.TodoModel{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
