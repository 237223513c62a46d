package pokeapi

import (
	"context"
	"fmt"
)

// TypeScope provides read operations on /type.
type TypeScope struct {
	client *Client
}

// Get returns a type and its damage relations.
func (t *TypeScope) Get(ctx context.Context, name string) (*Type, error) {
	u := fmt.Sprintf("%s/type/%s", t.client.baseURL, pathKey(name))

	var typ Type
	if err := t.client.doJSON(ctx, u, "get type", &typ); err != nil {
		return nil, err
	}
	return &typ, nil
}
