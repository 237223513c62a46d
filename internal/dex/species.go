package dex

import (
	"context"
	"fmt"

	"poketrainers/internal/display"
)

// Summary is the card shown for one pokemon.
type Summary struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	DisplayName string     `json:"display_name"`
	Types       []string   `json:"types"`
	Abilities   []string   `json:"abilities"`
	Artwork     string     `json:"artwork"`
	Weaknesses  []Weakness `json:"weaknesses"`
}

// Summary fetches a pokemon and its weaknesses.
func (d *Dex) Summary(ctx context.Context, nameOrID string) (*Summary, error) {
	mon, err := d.api.Pokemon().Get(ctx, nameOrID)
	if err != nil {
		return nil, fmt.Errorf("summary %s: %w", nameOrID, err)
	}
	types := mon.TypeNames()
	return &Summary{
		ID:          mon.ID,
		Name:        mon.Name,
		DisplayName: display.Name(mon.Name),
		Types:       types,
		Abilities:   mon.AbilityNames(),
		Artwork:     mon.ArtworkURL(),
		Weaknesses:  d.Weaknesses(ctx, types),
	}, nil
}

// Encounters returns the humanized wild locations of a pokemon in API order.
func (d *Dex) Encounters(ctx context.Context, nameOrID string) ([]string, error) {
	encounters, err := d.api.Pokemon().Encounters(ctx, nameOrID)
	if err != nil {
		return nil, fmt.Errorf("encounters %s: %w", nameOrID, err)
	}
	out := make([]string, 0, len(encounters))
	for _, e := range encounters {
		out = append(out, display.Location(e.LocationArea.Name))
	}
	return out, nil
}
