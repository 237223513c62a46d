package pokeapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// PokemonScope provides read operations on /pokemon.
type PokemonScope struct {
	client *Client
}

// Get returns a pokemon by name or numeric id.
func (p *PokemonScope) Get(ctx context.Context, nameOrID string) (*Pokemon, error) {
	u := fmt.Sprintf("%s/pokemon/%s", p.client.baseURL, pathKey(nameOrID))

	var mon Pokemon
	if err := p.client.doJSON(ctx, u, "get pokemon", &mon); err != nil {
		return nil, err
	}
	return &mon, nil
}

// List returns the first limit pokemon names in national dex order.
func (p *PokemonScope) List(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("list pokemon: limit must be positive, got %d", limit)
	}
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	u := fmt.Sprintf("%s/pokemon?%s", p.client.baseURL, params.Encode())

	var page NamedResourceList
	if err := p.client.doJSON(ctx, u, "list pokemon", &page); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(page.Results))
	for _, r := range page.Results {
		names = append(names, r.Name)
	}
	return names, nil
}

// Encounters returns the wild encounter locations of a pokemon.
func (p *PokemonScope) Encounters(ctx context.Context, nameOrID string) ([]Encounter, error) {
	u := fmt.Sprintf("%s/pokemon/%s/encounters", p.client.baseURL, pathKey(nameOrID))

	var encounters []Encounter
	if err := p.client.doJSON(ctx, u, "list encounters", &encounters); err != nil {
		return nil, err
	}
	return encounters, nil
}
