package pokeapi

import (
	"context"
	"fmt"
)

// EvolutionChainScope provides read operations on /evolution-chain.
type EvolutionChainScope struct {
	client *Client
}

// Get returns an evolution chain by its numeric id.
func (e *EvolutionChainScope) Get(ctx context.Context, id int) (*EvolutionChain, error) {
	return e.GetByURL(ctx, fmt.Sprintf("%s/evolution-chain/%d", e.client.baseURL, id))
}

// GetByURL returns the evolution chain behind a resource URL as reported in
// Species.EvolutionChain. Relative paths are resolved against the base URL.
func (e *EvolutionChainScope) GetByURL(ctx context.Context, ref string) (*EvolutionChain, error) {
	if ref == "" {
		return nil, fmt.Errorf("get evolution chain: empty url")
	}

	var chain EvolutionChain
	if err := e.client.doJSON(ctx, e.client.resolve(ref), "get evolution chain", &chain); err != nil {
		return nil, err
	}
	return &chain, nil
}
