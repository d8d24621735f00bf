package repositories

import (
	"context"

	"github.com/visadesk/visa_desk_app/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a user by ID. Returns apperrors.ErrNotFound if missing.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by username. Returns apperrors.ErrNotFound if missing.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser inserts a new user.
	SaveUser(ctx context.Context, user domain.User) error
}

// UserRepository combines all user persistence operations.
type UserRepository interface {
	UserReader
	UserWriter
}
