package interfaces

import "context"

// Document is a generic interface to represent data that can be stored
// and retrieved from the database. It could be a struct, a map[string]interface{},
// or any type that can be marshaled/unmarshaled by the specific database driver.
type Document interface{}

// DBClient defines the interface for a generic database client.
// It abstracts the operations this service needs across database types
// (PostgreSQL, MongoDB). Only read paths and the seed-time insert are
// exposed; no API operation mutates or deletes.
type DBClient interface {
	// Connect establishes a connection to the database using the given DSN.
	Connect(ctx context.Context, dsn string) error

	// Disconnect closes the database connection.
	Disconnect(ctx context.Context) error

	// InsertOne inserts a single document into the named collection/table
	// and returns the ID of the inserted document.
	InsertOne(ctx context.Context, collectionName string, document Document) (interface{}, error)

	// FindOne retrieves a single document matching the filter into 'result'.
	// A missing document is not an error; the result is left zeroed.
	FindOne(ctx context.Context, collectionName string, filter Document, result Document) error

	// FindMany retrieves all documents matching the filter, ordered by the
	// given sort document (field name -> 1 ascending, -1 descending).
	FindMany(ctx context.Context, collectionName string, filter Document, sort Document) ([]Document, error)

	// EnsureSchema applies a database-specific schema definition to the
	// named collection/table (CREATE TABLE string for SQL, IndexModel for
	// MongoDB).
	EnsureSchema(ctx context.Context, collectionName string, schema Document) error

	// Ping checks the health of the database connection.
	Ping(ctx context.Context) error
}
