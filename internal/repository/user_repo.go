// internal/repository/user_repo.go
package repository

import (
	"context"

	"fitlog-tracker/internal/domain"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// CreateUser adds a new user to the database using the provided DBExecutor.
	CreateUser(ctx context.Context, q DBExecutor, user *domain.User) error
	// GetUserByID retrieves a user by their ID using the provided DBExecutor.
	GetUserByID(ctx context.Context, q DBExecutor, id string) (*domain.User, error)
	// ListUsers retrieves all users in stable creation order.
	ListUsers(ctx context.Context, q DBExecutor) ([]domain.User, error)
}
