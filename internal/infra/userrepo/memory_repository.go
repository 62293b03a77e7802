package userrepo

import (
	"context"
	"sync"

	"github.com/surgesense/backend/internal/domain/auth"
)

// MemoryRepository provides an in-memory credential store for tests/dev.
type MemoryRepository struct {
	mu    sync.RWMutex
	users []auth.User
}

// NewMemoryRepository constructs a new in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// GetByCredentials returns the user matching both email and password.
func (r *MemoryRepository) GetByCredentials(_ context.Context, email, password string) (auth.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Email == email && user.Password == password {
			return user, true, nil
		}
	}
	return auth.User{}, false, nil
}

// Count reports the number of stored records.
func (r *MemoryRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.users)), nil
}

// CreateAll appends the given records.
func (r *MemoryRepository) CreateAll(_ context.Context, users []auth.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, users...)
	return nil
}

var _ auth.Repository = (*MemoryRepository)(nil)
