package pokeapi

import (
	"context"
	"fmt"
)

// GenerationScope provides read operations on /generation.
type GenerationScope struct {
	client *Client
}

// Get returns a generation and the species it introduced.
func (g *GenerationScope) Get(ctx context.Context, n int) (*Generation, error) {
	if n < 1 {
		return nil, fmt.Errorf("get generation: invalid generation %d", n)
	}
	u := fmt.Sprintf("%s/generation/%d", g.client.baseURL, n)

	var gen Generation
	if err := g.client.doJSON(ctx, u, "get generation", &gen); err != nil {
		return nil, err
	}
	return &gen, nil
}
