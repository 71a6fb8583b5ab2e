package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"todo_backend/internal/feature/auth/domain/entity"
	"todo_backend/internal/feature/auth/usecase"
)

// sessionMySQL is a MySQL implementation of the SessionRepository interface.
// Every operation is a single-row INSERT, DELETE or SELECT; the session list
// is never read back and rewritten as a whole.
type sessionMySQL struct {
	db *gorm.DB
}

// Compile-time check to ensure sessionMySQL implements SessionRepository.
var _ usecase.SessionRepository = (*sessionMySQL)(nil)

// NewSessionMySQL creates a new instance of sessionMySQL.
func NewSessionMySQL(db *gorm.DB) *sessionMySQL {
	return &sessionMySQL{db: db}
}

// Append inserts one session row.
func (r *sessionMySQL) Append(ctx context.Context, session *entity.Session) error {
	model := SessionModelFromEntity(session)
	return r.db.WithContext(ctx).Create(model).Error
}

// Remove deletes the row matching the token exactly. Deleting a token that
// is not present affects zero rows and is not an error.
func (r *sessionMySQL) Remove(ctx context.Context, userID uint, token string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND token = ?", userID, token).
		Delete(&SessionModel{}).Error
}

// FindActive reports whether a session row matches user, token and scope.
func (r *sessionMySQL) FindActive(ctx context.Context, userID uint, token, scope string) (bool, error) {
	var model SessionModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND token = ? AND scope = ?", userID, token, scope).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CountByUserID returns the number of active sessions for a user.
func (r *sessionMySQL) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&SessionModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
