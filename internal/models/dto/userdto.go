package dto

import (
	"time"

	"github.com/haguru/oak/internal/models"
)

// UserResponseDTO is the public projection of a user. The password hash
// is deliberately stripped before serialization.
type UserResponseDTO struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromUser maps an internal user onto its response projection.
func FromUser(u models.User) UserResponseDTO {
	return UserResponseDTO{
		ID:        u.ID,
		Username:  u.Username,
		Enabled:   u.Enabled,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
