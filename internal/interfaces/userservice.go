package interfaces

import (
	"context"

	"github.com/haguru/oak/internal/models"
)

type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	AuthenticateUser(ctx context.Context, username, password string) (bool, error)
}
