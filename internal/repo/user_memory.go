package repo

import (
	"context"
	"sync"
	"time"

	"github.com/lucasvieira94/nola-god-level/internal/models"
)

type InMemoryUserRepository struct {
	mu     sync.Mutex
	users  map[string]models.User
	nextID int
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{users: make(map[string]models.User), nextID: 1}
}

func (r *InMemoryUserRepository) CreateUser(_ context.Context, u models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[u.Username]; exists {
		return models.User{}, ErrDuplicateUsername
	}
	u.ID = r.nextID
	u.CreatedAt = time.Now().UTC()
	r.nextID++
	r.users[u.Username] = u
	return u, nil
}

func (r *InMemoryUserRepository) GetByUsername(_ context.Context, username string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[username]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return u, nil
}
