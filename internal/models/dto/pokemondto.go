package dto

import "github.com/haguru/oak/internal/models"

// PokemonDTO is the wire shape of a pokemon list entry.
type PokemonDTO struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// FromPokemon maps an upstream entry onto its response shape.
func FromPokemon(p models.Pokemon) PokemonDTO {
	return PokemonDTO{
		Name: p.Name,
		URL:  p.URL,
	}
}
