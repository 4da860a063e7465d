package mocks

import (
	"context"

	"github.com/haguru/oak/internal/interfaces"
	"github.com/stretchr/testify/mock"
)

// MockDBClient is a testify mock for interfaces.DBClient.
type MockDBClient struct {
	mock.Mock
}

func NewMockDBClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDBClient {
	m := &MockDBClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockDBClient) Connect(ctx context.Context, dsn string) error {
	args := m.Called(ctx, dsn)
	return args.Error(0)
}

func (m *MockDBClient) Disconnect(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBClient) InsertOne(ctx context.Context, collectionName string, document interfaces.Document) (interface{}, error) {
	args := m.Called(ctx, collectionName, document)
	return args.Get(0), args.Error(1)
}

func (m *MockDBClient) FindOne(ctx context.Context, collectionName string, filter interfaces.Document, result interfaces.Document) error {
	args := m.Called(ctx, collectionName, filter, result)
	return args.Error(0)
}

func (m *MockDBClient) FindMany(ctx context.Context, collectionName string, filter interfaces.Document, sort interfaces.Document) ([]interfaces.Document, error) {
	args := m.Called(ctx, collectionName, filter, sort)
	var docs []interfaces.Document
	if args.Get(0) != nil {
		docs = args.Get(0).([]interfaces.Document)
	}
	return docs, args.Error(1)
}

func (m *MockDBClient) EnsureSchema(ctx context.Context, collectionName string, schema interfaces.Document) error {
	args := m.Called(ctx, collectionName, schema)
	return args.Error(0)
}

func (m *MockDBClient) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
