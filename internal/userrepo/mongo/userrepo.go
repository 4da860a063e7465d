package mongo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/haguru/oak/internal/interfaces"
	"github.com/haguru/oak/internal/models"
	"github.com/haguru/oak/internal/userrepo/constants"

	"go.mongodb.org/mongo-driver/bson"
	mongosdk "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoUser is the BSON shape of a user document. IDs are the same UUID
// strings the PostgreSQL adapter uses, so either store can back the port.
type mongoUser struct {
	ID        string    `bson:"_id"`
	Username  string    `bson:"username"`
	Password  string    `bson:"password"`
	Enabled   bool      `bson:"enabled"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoUserRepository implements UserRepository for MongoDB via the
// generic DBClient.
type MongoUserRepository struct {
	dbClient interfaces.DBClient
	logger   interfaces.Logger
}

// NewMongoUserRepository creates a new MongoDB repository instance.
func NewMongoUserRepository(dbClient interfaces.DBClient, logger interfaces.Logger) (interfaces.UserRepository, error) {
	if dbClient == nil {
		return nil, fmt.Errorf("dbClient cannot be nil")
	}
	return &MongoUserRepository{dbClient: dbClient, logger: logger}, nil
}

// FindAll returns every user document, ordered by created_at so that
// seed insertion order is preserved.
func (r *MongoUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	docs, err := r.dbClient.FindMany(ctx, constants.UsersTable,
		bson.M{}, bson.D{{Key: "created_at", Value: 1}})
	if err != nil {
		return nil, fmt.Errorf("failed to list users from MongoDB: %w", err)
	}

	users := make([]models.User, 0, len(docs))
	for _, doc := range docs {
		raw, ok := doc.(bson.M)
		if !ok {
			return nil, fmt.Errorf("unexpected document type %T from MongoDB client", doc)
		}
		user, err := decodeUserDoc(raw)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// GetUserByUsername retrieves a user from MongoDB. Returns (nil, nil)
// when the username does not exist.
func (r *MongoUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var doc mongoUser
	filter := bson.M{"username": username}
	if err := r.dbClient.FindOne(ctx, constants.UsersTable, filter, &doc); err != nil {
		return nil, fmt.Errorf("failed to get user by username from MongoDB: %w", err)
	}
	if doc.ID == "" {
		return nil, nil
	}
	user := toModel(doc)
	return &user, nil
}

// EnsureSchema creates the unique username index.
func (r *MongoUserRepository) EnsureSchema(ctx context.Context) error {
	indexModel := mongosdk.IndexModel{
		Keys:    bson.M{"username": 1},
		Options: options.Index().SetUnique(true),
	}
	return r.dbClient.EnsureSchema(ctx, constants.UsersTable, indexModel)
}

// Seed inserts the fixed seed users. Duplicate-key failures mean the row
// is already present and are skipped.
func (r *MongoUserRepository) Seed(ctx context.Context) error {
	for _, user := range constants.SeedUsers {
		doc := mongoUser{
			ID:        user.ID,
			Username:  user.Username,
			Password:  user.Password,
			Enabled:   user.Enabled,
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		}
		_, err := r.dbClient.InsertOne(ctx, constants.UsersTable, doc)
		if err != nil {
			if strings.Contains(err.Error(), "E11000 duplicate key error") {
				r.logger.Debug("seed user already present", "username", user.Username)
				continue
			}
			return fmt.Errorf("failed to seed user %q: %w", user.Username, err)
		}
		r.logger.Info("seeded user", "username", user.Username)
	}
	return nil
}

// Close disconnects the MongoDB client.
func (r *MongoUserRepository) Close(ctx context.Context) error {
	return r.dbClient.Disconnect(ctx)
}

// decodeUserDoc converts a raw bson.M into a User by round-tripping
// through the BSON codec, which handles DateTime conversion.
func decodeUserDoc(raw bson.M) (models.User, error) {
	data, err := bson.Marshal(raw)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to marshal user document: %w", err)
	}
	var doc mongoUser
	if err := bson.Unmarshal(data, &doc); err != nil {
		return models.User{}, fmt.Errorf("failed to decode user document: %w", err)
	}
	return toModel(doc), nil
}

func toModel(doc mongoUser) models.User {
	return models.User{
		ID:        doc.ID,
		Username:  doc.Username,
		Password:  doc.Password,
		Enabled:   doc.Enabled,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}
