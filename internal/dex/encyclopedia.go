package dex

import (
	"context"
	"fmt"
	"strings"

	"poketrainers/internal/display"
	"poketrainers/internal/pokeapi"
)

// NoDescription stands in for a missing English entry.
const NoDescription = "No description available."

// abilityPokemonShown caps the pokemon listed per ability.
const abilityPokemonShown = 10

// MoveInfo describes a move.
type MoveInfo struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Category string `json:"category"` // physical, special or status
	Power    *int   `json:"power"`
	Accuracy *int   `json:"accuracy"`
	PP       *int   `json:"pp"`
	Effect   string `json:"effect"`
}

// ItemInfo describes an item.
type ItemInfo struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Cost     int    `json:"cost"`
	Sprite   string `json:"sprite"`
	Effect   string `json:"effect"`
}

// AbilityInfo describes an ability and who can have it.
type AbilityInfo struct {
	Name    string   `json:"name"`
	Effect  string   `json:"effect"`
	Pokemon []string `json:"pokemon"`
	More    int      `json:"more"` // holders beyond those listed
}

// Move looks up a move by name; spaces are accepted in place of hyphens.
func (d *Dex) Move(ctx context.Context, query string) (*MoveInfo, error) {
	mv, err := d.api.Moves().Get(ctx, slug(query))
	if err != nil {
		return nil, fmt.Errorf("move %q: %w", query, err)
	}
	return &MoveInfo{
		Name:     display.Name(mv.Name),
		Type:     display.Name(mv.Type.Name),
		Category: mv.DamageClass.Name,
		Power:    mv.Power,
		Accuracy: mv.Accuracy,
		PP:       mv.PP,
		Effect:   englishEffect(mv.EffectEntries),
	}, nil
}

// Item looks up an item by name.
func (d *Dex) Item(ctx context.Context, query string) (*ItemInfo, error) {
	it, err := d.api.Items().Get(ctx, slug(query))
	if err != nil {
		return nil, fmt.Errorf("item %q: %w", query, err)
	}
	effect := NoDescription
	for _, e := range it.EffectEntries {
		if e.Language.Name == "en" && e.Text != "" {
			effect = flatten(e.Text)
			break
		}
	}
	return &ItemInfo{
		Name:     display.Name(it.Name),
		Category: display.Name(it.Category.Name),
		Cost:     it.Cost,
		Sprite:   it.Sprites.Default,
		Effect:   effect,
	}, nil
}

// Ability looks up an ability by name.
func (d *Dex) Ability(ctx context.Context, query string) (*AbilityInfo, error) {
	ab, err := d.api.Abilities().Get(ctx, slug(query))
	if err != nil {
		return nil, fmt.Errorf("ability %q: %w", query, err)
	}
	info := &AbilityInfo{
		Name:    display.Name(ab.Name),
		Effect:  englishEffect(ab.EffectEntries),
		Pokemon: []string{},
	}
	for i, p := range ab.Pokemon {
		if i == abilityPokemonShown {
			info.More = len(ab.Pokemon) - abilityPokemonShown
			break
		}
		info.Pokemon = append(info.Pokemon, display.Name(p.Pokemon.Name))
	}
	return info, nil
}

func englishEffect(entries []pokeapi.EffectEntry) string {
	for _, e := range entries {
		if e.Language.Name == "en" && e.Effect != "" {
			return flatten(e.Effect)
		}
	}
	return NoDescription
}

func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
