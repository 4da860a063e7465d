package interfaces

import (
	"context"
	"errors"

	"github.com/haguru/oak/internal/models"
)

// ErrNotSupported is returned by gateway operations that are declared on
// the port but not backed by an upstream call. Callers must receive this
// loudly rather than a silent nil.
var ErrNotSupported = errors.New("operation not supported")

// PokemonGateway defines the capability the domain needs from the
// upstream Pokémon API.
type PokemonGateway interface {
	// FetchPokemonList fetches a single page of Pokémon. Limit and offset
	// are forwarded to the upstream verbatim, without validation. The
	// returned slice never exceeds the requested limit and preserves
	// upstream ordering. A failed upstream call surfaces as a categorized
	// error, never as a partial page.
	FetchPokemonList(ctx context.Context, limit, offset int) ([]models.Pokemon, error)
	// FetchPokemonByID fails with ErrNotSupported.
	FetchPokemonByID(ctx context.Context, id int) (*models.Pokemon, error)
}
