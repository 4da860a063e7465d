package userservice

import (
	"context"
	"errors"
	"testing"

	"github.com/haguru/oak/internal/interfaces/mocks"
	"github.com/haguru/oak/internal/models"
	"github.com/haguru/oak/internal/userrepo/constants"
	zerologger "github.com/haguru/oak/pkg/zerolog"

	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newService(t *testing.T) (*UserService, *mocks.MockUserRepository) {
	t.Helper()
	repo := mocks.NewMockUserRepository(t)
	return NewUserService(repo, zerologger.NewZerologLogger("userservice-test")), repo
}

func hashedUser(t *testing.T, username, password string, enabled bool) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := models.NewUser(username, string(hash))
	user.Enabled = enabled
	return user
}

func TestUserService_ListUsers(t *testing.T) {
	service, repo := newService(t)

	repo.On("FindAll", mock.Anything).Return(constants.SeedUsers, nil)

	users, err := service.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers() unexpected error: %v", err)
	}
	if len(users) != len(constants.SeedUsers) {
		t.Fatalf("ListUsers() returned %d users, want %d", len(users), len(constants.SeedUsers))
	}
	for i, want := range constants.SeedUsers {
		if users[i].Username != want.Username {
			t.Errorf("ListUsers()[%d].Username = %q, want %q", i, users[i].Username, want.Username)
		}
	}
}

func TestUserService_ListUsers_RepoError(t *testing.T) {
	service, repo := newService(t)

	repo.On("FindAll", mock.Anything).Return(nil, errors.New("connection refused"))

	if _, err := service.ListUsers(context.Background()); err == nil {
		t.Fatal("ListUsers() expected error, got nil")
	}
}

func TestUserService_AuthenticateUser(t *testing.T) {
	tests := []struct {
		name     string
		user     func(t *testing.T) *models.User
		repoErr  error
		password string
		want     bool
		wantErr  bool
	}{
		{
			name:     "valid credentials",
			user:     func(t *testing.T) *models.User { return hashedUser(t, "kakashi", "sharingan1", true) },
			password: "sharingan1",
			want:     true,
		},
		{
			name:     "wrong password",
			user:     func(t *testing.T) *models.User { return hashedUser(t, "kakashi", "sharingan1", true) },
			password: "wrong-password",
			want:     false,
			wantErr:  true,
		},
		{
			name:     "unknown user",
			user:     func(t *testing.T) *models.User { return nil },
			password: "whatever",
			want:     false,
			wantErr:  true,
		},
		{
			name:     "disabled user",
			user:     func(t *testing.T) *models.User { return hashedUser(t, "brock", "onixrock1", false) },
			password: "onixrock1",
			want:     false,
			wantErr:  true,
		},
		{
			name:     "repository error",
			user:     func(t *testing.T) *models.User { return nil },
			repoErr:  errors.New("connection refused"),
			password: "whatever",
			want:     false,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newService(t)

			repo.On("GetUserByUsername", mock.Anything, mock.Anything).
				Return(tt.user(t), tt.repoErr)

			got, err := service.AuthenticateUser(context.Background(), "kakashi", tt.password)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AuthenticateUser() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("AuthenticateUser() = %v, want %v", got, tt.want)
			}
		})
	}
}
