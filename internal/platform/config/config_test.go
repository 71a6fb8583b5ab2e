package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_NAME", "todos")
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("PORT", "")
}

func TestLoad(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		setBaseEnv(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "test-secret", cfg.JWTSecret)
		assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
		assert.False(t, cfg.RunMigrations)
	})

	t.Run("missing JWT secret refuses to load", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("JWT_SECRET", "")

		_, err := Load()
		assert.ErrorIs(t, err, ErrMissingJWTSecret)
	})

	t.Run("bcrypt cost can be raised but not lowered", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("BCRYPT_COST", "12")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 12, cfg.BcryptCost)

		t.Setenv("BCRYPT_COST", "4")
		cfg, err = Load()
		require.NoError(t, err)
		assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost, "weak costs are ignored")
	})
}
