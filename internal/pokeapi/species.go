package pokeapi

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// SpeciesScope provides read operations on /pokemon-species.
type SpeciesScope struct {
	client *Client
}

// Get returns a species by name or numeric id.
func (s *SpeciesScope) Get(ctx context.Context, nameOrID string) (*Species, error) {
	u := fmt.Sprintf("%s/pokemon-species/%s", s.client.baseURL, pathKey(nameOrID))

	var sp Species
	if err := s.client.doJSON(ctx, u, "get species", &sp); err != nil {
		return nil, err
	}
	return &sp, nil
}

// pathKey lowercases and escapes a name or id for use as a path segment.
func pathKey(nameOrID string) string {
	return url.PathEscape(strings.ToLower(strings.TrimSpace(nameOrID)))
}
