package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"todo_backend/internal/feature/auth/domain/entity"
	"todo_backend/internal/platform/token"
)

// mockUserRepository is a mock implementation of the UserRepository interface.
type mockUserRepository struct {
	CreateFunc      func(ctx context.Context, user *entity.User) error
	FindByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
	FindByIDFunc    func(ctx context.Context, id uint) (*entity.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	user.ID = 1 // Default: pretend the store assigned an ID
	return nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrUserNotFound
}

// mockTokenCodec is a mock implementation of the TokenCodec interface. Its
// default behavior issues recognizable fake tokens and verifies them back.
type mockTokenCodec struct {
	SignFunc   func(subjectID uint, scope string) (string, error)
	VerifyFunc func(tokenString string) (*token.Claims, error)

	mu     sync.Mutex
	issued int
}

func (m *mockTokenCodec) Sign(subjectID uint, scope string) (string, error) {
	if m.SignFunc != nil {
		return m.SignFunc(subjectID, scope)
	}
	m.mu.Lock()
	m.issued++
	n := m.issued
	m.mu.Unlock()
	return fmt.Sprintf("tok-%d-%s-%d", subjectID, scope, n), nil
}

func (m *mockTokenCodec) Verify(tokenString string) (*token.Claims, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(tokenString)
	}
	var subjectID uint
	var n int
	if _, err := fmt.Sscanf(tokenString, "tok-%d-auth-%d", &subjectID, &n); err != nil {
		return nil, token.ErrInvalidToken
	}
	return &token.Claims{SubjectID: subjectID, Scope: entity.ScopeAuth}, nil
}

// mockSessionRepository is an in-memory SessionRepository keyed like the real
// stores: one entry per token.
type mockSessionRepository struct {
	AppendFunc     func(ctx context.Context, session *entity.Session) error
	RemoveFunc     func(ctx context.Context, userID uint, token string) error
	FindActiveFunc func(ctx context.Context, userID uint, token, scope string) (bool, error)

	mu       sync.Mutex
	sessions map[string]*entity.Session
}

func newMockSessionRepository() *mockSessionRepository {
	return &mockSessionRepository{sessions: make(map[string]*entity.Session)}
}

func (m *mockSessionRepository) Append(ctx context.Context, session *entity.Session) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, session)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.Token] = session
	return nil
}

func (m *mockSessionRepository) Remove(ctx context.Context, userID uint, token string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, userID, token)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[token]; ok && s.UserID == userID {
		delete(m.sessions, token)
	}
	return nil
}

func (m *mockSessionRepository) FindActive(ctx context.Context, userID uint, token, scope string) (bool, error) {
	if m.FindActiveFunc != nil {
		return m.FindActiveFunc(ctx, userID, token, scope)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[token]
	return ok && s.UserID == userID && s.Scope == scope, nil
}

func (m *mockSessionRepository) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, s := range m.sessions {
		if s.UserID == userID {
			count++
		}
	}
	return count, nil
}

// mockHasher is a transparent PasswordHasher for tests; real bcrypt behavior
// is covered in platform/hash.
type mockHasher struct {
	HashFunc func(plaintext string) (string, error)
}

func (m *mockHasher) Hash(plaintext string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(plaintext)
	}
	return "hashed:" + plaintext, nil
}

func (m *mockHasher) Verify(plaintext, record string) bool {
	return record == "hashed:"+plaintext
}

var errBoom = errors.New("boom")
