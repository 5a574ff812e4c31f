package repository

import (
	"context"
	"sync"

	"github.com/profiled/accounts/internal/account/domain"
)

// MemoryRepository is an in-memory Repository used in tests and local
// development. Writes replace the whole record under a single lock,
// matching the per-record atomicity of the Postgres implementation.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[domain.ID]domain.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users: make(map[domain.ID]domain.User),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, existing := range r.users {
		if id != user.ID && existing.Email == user.Email {
			return ErrEmailAlreadyExists
		}
	}
	if _, ok := r.users[user.ID]; ok {
		return ErrUserAlreadyExists
	}

	r.users[user.ID] = copyUser(user)
	return nil
}

func (r *MemoryRepository) Save(ctx context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, existing := range r.users {
		if id != user.ID && existing.Email == user.Email {
			return ErrEmailAlreadyExists
		}
	}

	r.users[user.ID] = copyUser(user)
	return nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id domain.ID) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return domain.User{}, ErrUserNotFound
	}
	return copyUser(user), nil
}

func (r *MemoryRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			return copyUser(user), nil
		}
	}
	return domain.User{}, ErrUserNotFound
}

func (r *MemoryRepository) ListWithTokens(ctx context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var users []domain.User
	for _, user := range r.users {
		if len(user.Tokens) > 0 {
			users = append(users, copyUser(user))
		}
	}
	return users, nil
}

func copyUser(user domain.User) domain.User {
	clone := user
	clone.Tokens = append([]string(nil), user.Tokens...)
	return clone
}
