package models

import "time"

// User represents an internal user model for the application/database.
// Password holds the bcrypt hash, never the plaintext.
type User struct {
	ID        string    `bson:"_id,omitempty" mapstructure:"id" db:"id"`
	Username  string    `bson:"username" mapstructure:"username" db:"username"`
	Password  string    `bson:"password" mapstructure:"password" db:"password"`
	Enabled   bool      `bson:"enabled" mapstructure:"enabled" db:"enabled"`
	CreatedAt time.Time `bson:"created_at" mapstructure:"created_at" db:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" mapstructure:"updated_at" db:"updated_at"`
}

// NewUser creates a new User instance with the given username and hashed password.
// Note: No validation is performed here.
func NewUser(username string, hashedPassword string) *User {
	return &User{
		Username: username,
		Password: hashedPassword,
		Enabled:  true,
	}
}
