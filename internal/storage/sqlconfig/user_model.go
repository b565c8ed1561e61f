package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// User represents a user record.
type User struct {
	ID        uuid.UUID `db:"id"`
	Username  string    `db:"username"`
	Email     string    `db:"email"`
	APIToken  string    `db:"api_token"`
	CreatedAt time.Time `db:"created_at"`
}

// UserCreate is the input for creating a new user.
type UserCreate struct {
	Username string
	Email    string
	APIToken string
}

// IUserTable defines the interface for user storage operations.
type IUserTable interface {
	FindByToken(ctx context.Context, token string) (*User, error)
	Insert(ctx context.Context, create *UserCreate) (*User, error)
}
