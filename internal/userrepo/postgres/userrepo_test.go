package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/haguru/oak/internal/interfaces"
	"github.com/haguru/oak/internal/interfaces/mocks"
	"github.com/haguru/oak/internal/userrepo/constants"
	zerologger "github.com/haguru/oak/pkg/zerolog"

	"github.com/lib/pq"
	"github.com/stretchr/testify/mock"
)

func newRepo(t *testing.T) (interfaces.UserRepository, *mocks.MockDBClient) {
	t.Helper()
	dbClient := mocks.NewMockDBClient(t)
	repo, err := NewPostgresUserRepository(dbClient, zerologger.NewZerologLogger("userrepo-test"))
	if err != nil {
		t.Fatalf("NewPostgresUserRepository() unexpected error: %v", err)
	}
	return repo, dbClient
}

func seedRowMaps() []interfaces.Document {
	docs := make([]interfaces.Document, 0, len(constants.SeedUsers))
	for _, u := range constants.SeedUsers {
		docs = append(docs, map[string]interface{}{
			"id":         u.ID,
			"username":   u.Username,
			"password":   u.Password,
			"enabled":    u.Enabled,
			"created_at": u.CreatedAt,
			"updated_at": u.UpdatedAt,
		})
	}
	return docs
}

func TestPostgresUserRepository_FindAll(t *testing.T) {
	repo, dbClient := newRepo(t)

	dbClient.On("FindMany", mock.Anything, constants.UsersTable,
		map[string]interface{}{}, map[string]int{"created_at": 1}).
		Return(seedRowMaps(), nil)

	users, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll() unexpected error: %v", err)
	}

	if len(users) != len(constants.SeedUsers) {
		t.Fatalf("FindAll() returned %d users, want %d", len(users), len(constants.SeedUsers))
	}
	for i, want := range constants.SeedUsers {
		if users[i] != want {
			t.Errorf("FindAll()[%d] = %+v, want %+v (insertion order)", i, users[i], want)
		}
	}
}

func TestPostgresUserRepository_FindAll_DBError(t *testing.T) {
	repo, dbClient := newRepo(t)

	dbClient.On("FindMany", mock.Anything, constants.UsersTable,
		map[string]interface{}{}, map[string]int{"created_at": 1}).
		Return(nil, errors.New("connection refused"))

	if _, err := repo.FindAll(context.Background()); err == nil {
		t.Fatal("FindAll() expected error, got nil")
	}
}

func TestPostgresUserRepository_GetUserByUsername(t *testing.T) {
	repo, dbClient := newRepo(t)

	seed := constants.SeedUsers[1]
	dbClient.On("FindOne", mock.Anything, constants.UsersTable,
		map[string]interface{}{"username": seed.Username}, mock.Anything).
		Run(func(args mock.Arguments) {
			result := args.Get(3).(*map[string]interface{})
			*result = map[string]interface{}{
				"id":         seed.ID,
				"username":   seed.Username,
				"password":   seed.Password,
				"enabled":    seed.Enabled,
				"created_at": seed.CreatedAt,
				"updated_at": seed.UpdatedAt,
			}
		}).
		Return(nil)

	user, err := repo.GetUserByUsername(context.Background(), seed.Username)
	if err != nil {
		t.Fatalf("GetUserByUsername() unexpected error: %v", err)
	}
	if user == nil || *user != seed {
		t.Errorf("GetUserByUsername() = %+v, want %+v", user, seed)
	}
}

func TestPostgresUserRepository_GetUserByUsername_NotFound(t *testing.T) {
	repo, dbClient := newRepo(t)

	dbClient.On("FindOne", mock.Anything, constants.UsersTable,
		map[string]interface{}{"username": "nobody"}, mock.Anything).
		Return(nil)

	user, err := repo.GetUserByUsername(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("GetUserByUsername() unexpected error: %v", err)
	}
	if user != nil {
		t.Errorf("GetUserByUsername() = %+v, want nil for missing user", user)
	}
}

func TestPostgresUserRepository_EnsureSchema(t *testing.T) {
	repo, dbClient := newRepo(t)

	dbClient.On("EnsureSchema", mock.Anything, constants.UsersTable,
		constants.CreateUsersTableSQL).Return(nil)

	if err := repo.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("EnsureSchema() unexpected error: %v", err)
	}
}

func TestPostgresUserRepository_Seed(t *testing.T) {
	repo, dbClient := newRepo(t)

	dbClient.On("InsertOne", mock.Anything, constants.UsersTable, mock.Anything).
		Return("inserted", nil).
		Times(len(constants.SeedUsers))

	if err := repo.Seed(context.Background()); err != nil {
		t.Fatalf("Seed() unexpected error: %v", err)
	}
}

func TestPostgresUserRepository_Seed_SkipsExistingRows(t *testing.T) {
	repo, dbClient := newRepo(t)

	dbClient.On("InsertOne", mock.Anything, constants.UsersTable, mock.Anything).
		Return(nil, &pq.Error{Code: pq.ErrorCode(uniqueViolation)}).
		Times(len(constants.SeedUsers))

	if err := repo.Seed(context.Background()); err != nil {
		t.Fatalf("Seed() should skip duplicate rows, got error: %v", err)
	}
}

func TestPostgresUserRepository_Seed_OtherErrorFails(t *testing.T) {
	repo, dbClient := newRepo(t)

	dbClient.On("InsertOne", mock.Anything, constants.UsersTable, mock.Anything).
		Return(nil, errors.New("disk full")).Once()

	if err := repo.Seed(context.Background()); err == nil {
		t.Fatal("Seed() expected error for non-duplicate failure, got nil")
	}
}

func TestNewPostgresUserRepository_NilClient(t *testing.T) {
	if _, err := NewPostgresUserRepository(nil, zerologger.NewZerologLogger("userrepo-test")); err == nil {
		t.Error("NewPostgresUserRepository(nil) expected error, got nil")
	}
}
