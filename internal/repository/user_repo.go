package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"nainaland/internal/model"
	"nainaland/internal/store"
	"nainaland/internal/utils"
)

var ErrUsernameTaken = errors.New("username already taken")

// UserRepository defines operations for user data
type UserRepository interface {
	Create(ctx context.Context, req model.CreateUserRequest) (*model.User, error)
	FindByID(ctx context.Context, id int) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

type userRepository struct {
	mu    sync.RWMutex
	table *store.Table[model.User]
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(table *store.Table[model.User]) UserRepository {
	return &userRepository{table: table}
}

// Create hashes the password and stores a new user
func (r *userRepository) Create(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	// Hash outside the lock, bcrypt is slow on purpose.
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findByUsername(req.Username) != nil {
		return nil, ErrUsernameTaken
	}
	user := model.NewUser(r.table.NextID(), req, hashedPassword)
	r.table.Set(user.ID, user)
	return &user, nil
}

// FindByID retrieves a user by ID, nil when absent
func (r *userRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.table.Get(id)
	if !ok {
		return nil, nil // User not found
	}
	return &user, nil
}

// FindByUsername returns the first user whose username matches exactly
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.findByUsername(username), nil
}

func (r *userRepository) findByUsername(username string) *model.User {
	for _, u := range r.table.Values() {
		if u.Username == username {
			return &u
		}
	}
	return nil
}
