package constants

import (
	"time"

	"github.com/haguru/oak/internal/models"
)

const (
	// UsersTable is the table/collection holding user rows.
	UsersTable = "users"

	// CreateUsersTableSQL creates the users table. Username uniqueness is
	// enforced here, by the persistence layer.
	CreateUsersTableSQL = `CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	enabled BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
)`
)

// SeedUsers are the fixed rows inserted by the seeding step. Passwords
// are pre-hashed with bcrypt; timestamps are fixed and strictly
// increasing so insertion order is well-defined.
var SeedUsers = []models.User{
	{
		ID:        "6f1f9bfa-2f1b-4f6e-9e1a-0c1d6a54d101",
		Username:  "admin",
		Password:  "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Enabled:   true,
		CreatedAt: time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC),
	},
	{
		ID:        "3f8c2b6e-7d25-49a1-b7ce-58c28a54d102",
		Username:  "kakashi",
		Password:  "$2a$10$EixZaYVK1fsbw1ZfbX3OXePaWxn96p36WQoeG6Lruj3vjPGga31lW",
		Enabled:   true,
		CreatedAt: time.Date(2024, time.March, 1, 9, 1, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, time.March, 1, 9, 1, 0, 0, time.UTC),
	},
	{
		ID:        "a4c0de2b-91f7-4c83-8b0f-f3d2aa54d103",
		Username:  "misty",
		Password:  "$2a$10$CwTycUXWue0Thq9StjUM0uJ8ZJpZyDxjOaWMX1W1v0cYq3tZBVPhe",
		Enabled:   true,
		CreatedAt: time.Date(2024, time.March, 1, 9, 2, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, time.March, 1, 9, 2, 0, 0, time.UTC),
	},
	{
		ID:        "c9b7f0aa-5d14-4b2d-8a07-1be4aa54d104",
		Username:  "brock",
		Password:  "$2a$10$X7n1mP1c5fQ0dG9hQ0sY0eSxWl9a0LBpM3xGzGJvZbE6m2rWnKpXa",
		Enabled:   false,
		CreatedAt: time.Date(2024, time.March, 1, 9, 3, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, time.March, 1, 9, 3, 0, 0, time.UTC),
	},
}
