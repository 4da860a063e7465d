package interfaces

import (
	"context"

	"github.com/haguru/oak/internal/models"
)

// UserRepository defines the contract for retrieving User data.
// This interface is database-agnostic; concrete adapters bind it to
// PostgreSQL or MongoDB.
type UserRepository interface {
	// FindAll returns every row of the users table in insertion order.
	// No filtering, paging, or sorting parameters are accepted.
	FindAll(ctx context.Context) ([]models.User, error)
	// GetUserByUsername returns the user with the given username, or
	// (nil, nil) when no such user exists.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	// EnsureSchema creates the backing table/collection and its unique
	// username index.
	EnsureSchema(ctx context.Context) error
	// Seed inserts the fixed seed users. Safe to call repeatedly.
	Seed(ctx context.Context) error
	Close(ctx context.Context) error
}
