package mocks

import (
	"context"

	"github.com/haguru/oak/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockPokemonGateway is a testify mock for interfaces.PokemonGateway.
type MockPokemonGateway struct {
	mock.Mock
}

func NewMockPokemonGateway(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPokemonGateway {
	m := &MockPokemonGateway{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPokemonGateway) FetchPokemonList(ctx context.Context, limit, offset int) ([]models.Pokemon, error) {
	args := m.Called(ctx, limit, offset)
	var pokemon []models.Pokemon
	if args.Get(0) != nil {
		pokemon = args.Get(0).([]models.Pokemon)
	}
	return pokemon, args.Error(1)
}

func (m *MockPokemonGateway) FetchPokemonByID(ctx context.Context, id int) (*models.Pokemon, error) {
	args := m.Called(ctx, id)
	var pokemon *models.Pokemon
	if args.Get(0) != nil {
		pokemon = args.Get(0).(*models.Pokemon)
	}
	return pokemon, args.Error(1)
}
