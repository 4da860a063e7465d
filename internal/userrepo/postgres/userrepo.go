package postgres

import (
	"context"
	"fmt"

	"github.com/haguru/oak/internal/interfaces"
	"github.com/haguru/oak/internal/models"
	"github.com/haguru/oak/internal/userrepo/constants"

	"github.com/go-viper/mapstructure/v2"
	"github.com/lib/pq"
)

const uniqueViolation = "23505" // PostgreSQL unique_violation error code

// PostgresUserRepository implements UserRepository for PostgreSQL via the
// generic DBClient.
type PostgresUserRepository struct {
	dbClient interfaces.DBClient
	logger   interfaces.Logger
}

// NewPostgresUserRepository creates a new PostgreSQL repository instance.
func NewPostgresUserRepository(dbClient interfaces.DBClient, logger interfaces.Logger) (interfaces.UserRepository, error) {
	if dbClient == nil {
		return nil, fmt.Errorf("dbClient cannot be nil")
	}
	return &PostgresUserRepository{dbClient: dbClient, logger: logger}, nil
}

// FindAll returns every user row, ordered by created_at so that seed
// insertion order is preserved.
func (r *PostgresUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	docs, err := r.dbClient.FindMany(ctx, constants.UsersTable,
		map[string]interface{}{}, map[string]int{"created_at": 1})
	if err != nil {
		return nil, fmt.Errorf("failed to list users from PostgreSQL: %w", err)
	}

	users := make([]models.User, 0, len(docs))
	for _, doc := range docs {
		rowMap, ok := doc.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("unexpected row type %T from PostgreSQL client", doc)
		}
		user, err := decodeUserRow(rowMap)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// GetUserByUsername retrieves a user from PostgreSQL. Returns (nil, nil)
// when the username does not exist.
func (r *PostgresUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	rowMap := map[string]interface{}{}
	filter := map[string]interface{}{"username": username}
	if err := r.dbClient.FindOne(ctx, constants.UsersTable, filter, &rowMap); err != nil {
		return nil, fmt.Errorf("failed to get user by username from PostgreSQL: %w", err)
	}
	if len(rowMap) == 0 {
		return nil, nil
	}
	user, err := decodeUserRow(rowMap)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// EnsureSchema creates the users table and its unique username index.
func (r *PostgresUserRepository) EnsureSchema(ctx context.Context) error {
	return r.dbClient.EnsureSchema(ctx, constants.UsersTable, constants.CreateUsersTableSQL)
}

// Seed inserts the fixed seed users. Rows that already exist are left
// alone, so repeated startups are safe.
func (r *PostgresUserRepository) Seed(ctx context.Context) error {
	for _, user := range constants.SeedUsers {
		doc := map[string]interface{}{
			"id":         user.ID,
			"username":   user.Username,
			"password":   user.Password,
			"enabled":    user.Enabled,
			"created_at": user.CreatedAt,
			"updated_at": user.UpdatedAt,
		}
		_, err := r.dbClient.InsertOne(ctx, constants.UsersTable, doc)
		if err != nil {
			if pgErr, ok := err.(*pq.Error); ok && string(pgErr.Code) == uniqueViolation {
				r.logger.Debug("seed user already present", "username", user.Username)
				continue
			}
			return fmt.Errorf("failed to seed user %q: %w", user.Username, err)
		}
		r.logger.Info("seeded user", "username", user.Username)
	}
	return nil
}

// Close closes the PostgreSQL database connection.
func (r *PostgresUserRepository) Close(ctx context.Context) error {
	return r.dbClient.Disconnect(ctx)
}

// decodeUserRow maps a column map onto a User via its mapstructure tags.
func decodeUserRow(rowMap map[string]interface{}) (models.User, error) {
	var user models.User
	if err := mapstructure.Decode(rowMap, &user); err != nil {
		return models.User{}, fmt.Errorf("failed to decode user row: %w", err)
	}
	return user, nil
}
