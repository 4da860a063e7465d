package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockClient(t *testing.T) (*PostgresDatabaseClient, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	client := &PostgresDatabaseClient{db: db}
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return client, mock, cleanup
}

func TestPostgresDatabaseClient_FindMany(t *testing.T) {
	client, mock, cleanup := newMockClient(t)
	defer cleanup()

	created1 := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	created2 := time.Date(2024, time.March, 1, 9, 1, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM users ORDER BY created_at ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "created_at"}).
			AddRow("id-1", "admin", created1).
			AddRow("id-2", "kakashi", created2))

	docs, err := client.FindMany(context.Background(), "users",
		map[string]interface{}{}, map[string]int{"created_at": 1})
	if err != nil {
		t.Fatalf("FindMany() unexpected error: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("FindMany() returned %d rows, want 2", len(docs))
	}

	first, ok := docs[0].(map[string]interface{})
	if !ok {
		t.Fatalf("FindMany() row type = %T, want map[string]interface{}", docs[0])
	}
	if first["username"] != "admin" {
		t.Errorf("first row username = %v, want admin (sorted by created_at)", first["username"])
	}
}

func TestPostgresDatabaseClient_FindMany_WithFilter(t *testing.T) {
	client, mock, cleanup := newMockClient(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM users WHERE enabled = $1")).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
			AddRow("id-1", "admin"))

	docs, err := client.FindMany(context.Background(), "users",
		map[string]interface{}{"enabled": true}, nil)
	if err != nil {
		t.Fatalf("FindMany() unexpected error: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("FindMany() returned %d rows, want 1", len(docs))
	}
}

func TestPostgresDatabaseClient_FindMany_QueryError(t *testing.T) {
	client, mock, cleanup := newMockClient(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM users")).
		WillReturnError(errors.New("connection reset"))

	if _, err := client.FindMany(context.Background(), "users",
		map[string]interface{}{}, nil); err == nil {
		t.Fatal("FindMany() expected error, got nil")
	}
}

func TestPostgresDatabaseClient_FindOne(t *testing.T) {
	tests := []struct {
		name      string
		rows      *sqlmock.Rows
		wantFound bool
	}{
		{
			name: "found",
			rows: sqlmock.NewRows([]string{"id", "username"}).
				AddRow("id-2", "kakashi"),
			wantFound: true,
		},
		{
			name:      "not found leaves result empty",
			rows:      sqlmock.NewRows([]string{"id", "username"}),
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, mock, cleanup := newMockClient(t)
			defer cleanup()

			mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM users WHERE username = $1 LIMIT 1")).
				WithArgs("kakashi").
				WillReturnRows(tt.rows)

			result := map[string]interface{}{}
			err := client.FindOne(context.Background(), "users",
				map[string]interface{}{"username": "kakashi"}, &result)
			if err != nil {
				t.Fatalf("FindOne() unexpected error: %v", err)
			}

			if tt.wantFound && result["username"] != "kakashi" {
				t.Errorf("FindOne() result = %v, want username kakashi", result)
			}
			if !tt.wantFound && len(result) != 0 {
				t.Errorf("FindOne() result = %v, want empty map for missing row", result)
			}
		})
	}
}

func TestPostgresDatabaseClient_InsertOne(t *testing.T) {
	client, mock, cleanup := newMockClient(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (id, username) VALUES ($1, $2) RETURNING id")).
		WithArgs("id-9", "brock").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("id-9"))

	insertedID, err := client.InsertOne(context.Background(), "users",
		map[string]interface{}{"id": "id-9", "username": "brock"})
	if err != nil {
		t.Fatalf("InsertOne() unexpected error: %v", err)
	}
	if insertedID != "id-9" {
		t.Errorf("InsertOne() id = %v, want id-9", insertedID)
	}
}

func TestPostgresDatabaseClient_InsertOne_GeneratesID(t *testing.T) {
	client, mock, cleanup := newMockClient(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (id, username) VALUES ($1, $2) RETURNING id")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("generated"))

	doc := map[string]interface{}{"username": "misty"}
	if _, err := client.InsertOne(context.Background(), "users", doc); err != nil {
		t.Fatalf("InsertOne() unexpected error: %v", err)
	}
	if doc["id"] == nil || doc["id"] == "" {
		t.Error("InsertOne() should fill a missing id with a fresh UUID")
	}
}

func TestPostgresDatabaseClient_EnsureSchema(t *testing.T) {
	client, mock, cleanup := newMockClient(t)
	defer cleanup()

	stmt := "CREATE TABLE IF NOT EXISTS users (id UUID PRIMARY KEY)"
	mock.ExpectExec(regexp.QuoteMeta(stmt)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := client.EnsureSchema(context.Background(), "users", stmt); err != nil {
		t.Fatalf("EnsureSchema() unexpected error: %v", err)
	}
}

func TestPostgresDatabaseClient_EnsureSchema_BadSchema(t *testing.T) {
	client, _, cleanup := newMockClient(t)
	defer cleanup()

	if err := client.EnsureSchema(context.Background(), "users", 42); err == nil {
		t.Error("EnsureSchema() expected error for non-string schema, got nil")
	}
}

func TestPostgresDatabaseClient_Ping_NotConnected(t *testing.T) {
	client := &PostgresDatabaseClient{}
	if err := client.Ping(context.Background()); err == nil {
		t.Error("Ping() expected error when not connected, got nil")
	}
}
