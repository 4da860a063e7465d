package pokeapi

import (
	"context"
	"fmt"

	"github.com/haguru/oak/internal/interfaces"
	"github.com/haguru/oak/internal/models"
	"github.com/haguru/oak/pkg/restclient"
)

const (
	// DefaultBaseURL is the public PokeAPI root, overridable via config.
	DefaultBaseURL = "https://pokeapi.co/api/v2"

	listPathFormat = "%s/pokemon?limit=%d&offset=%d"
)

// PokeAPIGateway implements PokemonGateway against the PokeAPI list
// endpoint. It fetches a single page per call; the envelope's
// next/previous cursors are never followed.
type PokeAPIGateway struct {
	client  *restclient.Client
	baseURL string
	logger  interfaces.Logger
}

// NewPokeAPIGateway creates a gateway bound to the given base URL. An
// empty base URL falls back to the public PokeAPI.
func NewPokeAPIGateway(client *restclient.Client, baseURL string, logger interfaces.Logger) (interfaces.PokemonGateway, error) {
	if client == nil {
		return nil, fmt.Errorf("rest client cannot be nil")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &PokeAPIGateway{
		client:  client,
		baseURL: baseURL,
		logger:  logger,
	}, nil
}

// FetchPokemonList fetches one page of Pokémon. Limit and offset are
// substituted into the query string verbatim; the upstream defines the
// behavior for zero or negative values. A failed or undecodable call
// returns the client's categorized error and no partial page.
func (g *PokeAPIGateway) FetchPokemonList(ctx context.Context, limit, offset int) ([]models.Pokemon, error) {
	url := fmt.Sprintf(listPathFormat, g.baseURL, limit, offset)

	var page restclient.Page[map[string]interface{}]
	if err := g.client.GetJSON(ctx, url, &page); err != nil {
		return nil, fmt.Errorf("failed to fetch pokemon list: %w", err)
	}

	g.logger.Debug("fetched pokemon page",
		"count", page.Count, "results", len(page.Results), "limit", limit, "offset", offset)

	pokemon := make([]models.Pokemon, 0, len(page.Results))
	for _, item := range page.Results {
		if item == nil {
			// A null entry in the upstream results is dropped entirely.
			g.logger.Warn("skipping absent pokemon entry", "limit", limit, "offset", offset)
			continue
		}
		pokemon = append(pokemon, mapPokemon(item))
	}
	return pokemon, nil
}

// FetchPokemonByID is declared on the port but has no upstream binding
// here; it fails loudly instead of silently returning nothing.
func (g *PokeAPIGateway) FetchPokemonByID(ctx context.Context, id int) (*models.Pokemon, error) {
	return nil, fmt.Errorf("fetch pokemon by id %d: %w", id, interfaces.ErrNotSupported)
}

// mapPokemon extracts name and url defensively: a missing or
// wrong-typed key becomes an empty string, never an error.
func mapPokemon(item map[string]interface{}) models.Pokemon {
	name, _ := item["name"].(string)
	url, _ := item["url"].(string)
	return models.Pokemon{
		Name: name,
		URL:  url,
	}
}
