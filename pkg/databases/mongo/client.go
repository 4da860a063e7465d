package mongo

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/haguru/oak/internal/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const MaxPoolSize = 20

// MongoDBClient implements the interfaces.DBClient interface for MongoDB.
type MongoDBClient struct {
	client  *mongo.Client
	db      *mongo.Database
	timeout time.Duration
	logger  interfaces.Logger
}

// NewMongoDB returns an unconnected MongoDB client.
func NewMongoDB(timeout time.Duration, logger interfaces.Logger) interfaces.DBClient {
	return &MongoDBClient{
		timeout: timeout,
		logger:  logger,
	}
}

// Connect establishes a connection using the provided DSN, in the form
// "mongodb://<host>:<port>/<database>". The database name is taken from
// the DSN path.
func (m *MongoDBClient) Connect(ctx context.Context, dsn string) error {
	if dsn == "" {
		return fmt.Errorf("mongodb: DSN is empty")
	}
	if !strings.HasPrefix(dsn, "mongodb://") && !strings.HasPrefix(dsn, "mongodb+srv://") {
		return fmt.Errorf("mongodb: invalid DSN format, expected 'mongodb://' or 'mongodb+srv://'")
	}

	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	clientOptions := options.Client().
		ApplyURI(dsn).
		SetMaxPoolSize(MaxPoolSize).
		SetReadPreference(readpref.PrimaryPreferred())

	var err error
	m.client, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("mongodb: connect failed: %w", err)
	}

	if err = m.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongodb: ping failed: %w", err)
	}

	databaseName, err := databaseNameFromDSN(dsn)
	if err != nil {
		return err
	}
	m.db = m.client.Database(databaseName)
	m.logger.Info("connected to MongoDB", "database", databaseName)
	return nil
}

// Disconnect closes the connection to the MongoDB database.
func (m *MongoDBClient) Disconnect(ctx context.Context) error {
	if m.client != nil {
		return m.client.Disconnect(ctx)
	}
	return nil
}

// InsertOne inserts a document and returns its ID.
func (m *MongoDBClient) InsertOne(ctx context.Context, collectionName string, document interfaces.Document) (interface{}, error) {
	if collectionName == "" {
		return nil, fmt.Errorf("mongodb: collection name cannot be empty")
	}

	res, err := m.db.Collection(collectionName).InsertOne(ctx, document)
	if err != nil {
		return nil, fmt.Errorf("mongodb: insert into %s failed: %w", collectionName, err)
	}
	return res.InsertedID, nil
}

// FindOne retrieves a single document matching the filter into result.
// A missing document is not an error; result is left untouched.
func (m *MongoDBClient) FindOne(ctx context.Context, collectionName string, filter interfaces.Document, result interfaces.Document) error {
	if collectionName == "" {
		return fmt.Errorf("mongodb: collection name cannot be empty")
	}

	err := m.db.Collection(collectionName).FindOne(ctx, filter).Decode(result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil
		}
		return fmt.Errorf("mongodb: find one in %s failed: %w", collectionName, err)
	}
	return nil
}

// FindMany retrieves all documents matching the filter, ordered by the
// sort document (bson field -> 1 ascending, -1 descending). Each result
// is a bson.M.
func (m *MongoDBClient) FindMany(ctx context.Context, collectionName string, filter interfaces.Document, sort interfaces.Document) ([]interfaces.Document, error) {
	if collectionName == "" {
		return nil, fmt.Errorf("mongodb: collection name cannot be empty")
	}

	findOptions := options.Find()
	if sort != nil {
		findOptions.SetSort(sort)
	}

	cursor, err := m.db.Collection(collectionName).Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("mongodb: find many in %s failed: %w", collectionName, err)
	}
	defer func() {
		if cerr := cursor.Close(ctx); cerr != nil {
			m.logger.Warn("failed to close cursor", "collection", collectionName, "error", cerr)
		}
	}()

	var results []interfaces.Document
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("mongodb: decode cursor failed: %w", err)
		}
		results = append(results, doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("mongodb: cursor failed: %w", err)
	}
	return results, nil
}

// EnsureSchema creates the required index on the collection using the
// provided mongo.IndexModel. The collection is created automatically if
// it does not exist.
func (m *MongoDBClient) EnsureSchema(ctx context.Context, collectionName string, schema interfaces.Document) error {
	if m.db == nil {
		return fmt.Errorf("mongodb: not connected to a database")
	}
	model, ok := schema.(mongo.IndexModel)
	if !ok {
		return fmt.Errorf("mongodb: EnsureSchema expects a mongo.IndexModel")
	}
	_, err := m.db.Collection(collectionName).Indexes().CreateOne(ctx, model)
	return err
}

// Ping verifies the MongoDB connection health.
func (m *MongoDBClient) Ping(ctx context.Context) error {
	if m.client == nil {
		return fmt.Errorf("mongodb: not connected")
	}
	return m.client.Ping(ctx, nil)
}

// databaseNameFromDSN extracts the database name from a MongoDB DSN path.
func databaseNameFromDSN(dsn string) (string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("mongodb: failed to parse DSN: %w", err)
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mongodb: no database name found in DSN path: %s", dsn)
	}
	if idx := strings.Index(dbName, "/"); idx != -1 {
		dbName = dbName[:idx]
	}
	return dbName, nil
}
