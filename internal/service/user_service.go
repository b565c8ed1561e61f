package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/mehmetgencv/expense-tracker/internal/storage"
)

// User is the identity expenses belong to.
type User struct {
	ID       uuid.UUID
	Username string
	Email    string
}

// UserService is the user directory: it resolves opaque API tokens to
// users.
type UserService struct {
	storage *storage.Storage
}

// NewUserService creates a new UserService.
func NewUserService(store *storage.Storage) *UserService {
	return &UserService{storage: store}
}

// Resolve maps a bearer token to the user holding it. Empty or unknown
// tokens fail with ErrUnauthorized; no default identity is substituted.
func (s *UserService) Resolve(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}
	row, err := s.storage.Users.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrUnauthorized
	}
	return &User{ID: row.ID, Username: row.Username, Email: row.Email}, nil
}
