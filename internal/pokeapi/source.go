package pokeapi

import (
	"context"

	"poketrainers/internal/evolution"
)

// Source reads evolution data through a Client. It implements
// evolution.Source: every failure is logged and reported as not found.
type Source struct {
	client *Client
}

var _ evolution.Source = (*Source)(nil)

// NewSource returns a Source backed by c.
func NewSource(c *Client) *Source {
	return &Source{client: c}
}

// SpeciesEvolutionRef returns the evolution chain URL of a species.
func (s *Source) SpeciesEvolutionRef(ctx context.Context, name string) (string, bool) {
	sp, err := s.client.Species().Get(ctx, name)
	if err != nil {
		s.client.logger.DebugContext(ctx, "species lookup failed", "species", name, "error", err)
		return "", false
	}
	if sp.EvolutionChain.URL == "" {
		return "", false
	}
	return sp.EvolutionChain.URL, true
}

// EvolutionChain fetches the chain at ref and converts it to a tree.
func (s *Source) EvolutionChain(ctx context.Context, ref string) (*evolution.Node, bool) {
	chain, err := s.client.EvolutionChains().GetByURL(ctx, ref)
	if err != nil {
		s.client.logger.DebugContext(ctx, "evolution chain lookup failed", "ref", ref, "error", err)
		return nil, false
	}
	if chain.Chain.Species.Name == "" {
		return nil, false
	}
	return toNode(chain.Chain), true
}

func toNode(link ChainLink) *evolution.Node {
	n := &evolution.Node{Name: link.Species.Name}
	for _, next := range link.EvolvesTo {
		n.Children = append(n.Children, toNode(next))
	}
	return n
}
