package pokeapi

import (
	"context"
	"fmt"
)

// MoveScope provides read operations on /move.
type MoveScope struct {
	client *Client
}

// Get returns a move by slug or id.
func (m *MoveScope) Get(ctx context.Context, nameOrID string) (*Move, error) {
	u := fmt.Sprintf("%s/move/%s", m.client.baseURL, pathKey(nameOrID))

	var mv Move
	if err := m.client.doJSON(ctx, u, "get move", &mv); err != nil {
		return nil, err
	}
	return &mv, nil
}

// ItemScope provides read operations on /item.
type ItemScope struct {
	client *Client
}

// Get returns an item by slug or id.
func (i *ItemScope) Get(ctx context.Context, nameOrID string) (*Item, error) {
	u := fmt.Sprintf("%s/item/%s", i.client.baseURL, pathKey(nameOrID))

	var it Item
	if err := i.client.doJSON(ctx, u, "get item", &it); err != nil {
		return nil, err
	}
	return &it, nil
}

// AbilityScope provides read operations on /ability.
type AbilityScope struct {
	client *Client
}

// Get returns an ability by slug or id.
func (a *AbilityScope) Get(ctx context.Context, nameOrID string) (*Ability, error) {
	u := fmt.Sprintf("%s/ability/%s", a.client.baseURL, pathKey(nameOrID))

	var ab Ability
	if err := a.client.doJSON(ctx, u, "get ability", &ab); err != nil {
		return nil, err
	}
	return &ab, nil
}
