package dex

import (
	"context"
	"sort"

	"poketrainers/internal/pokeapi"
)

// Weakness is an attacking type that deals more than neutral damage.
type Weakness struct {
	Type       string  `json:"type"`
	Multiplier float64 `json:"multiplier"`
}

// Weaknesses returns the attacking types that hit a pokemon of the given
// types for more than neutral damage, sorted by type name. Types whose
// relations cannot be fetched are skipped.
func (d *Dex) Weaknesses(ctx context.Context, types []string) []Weakness {
	relations := make([]pokeapi.DamageRelations, 0, len(types))
	for _, t := range types {
		rel, ok := d.damageRelations(ctx, t)
		if !ok {
			continue
		}
		relations = append(relations, rel)
	}
	return ComputeWeaknesses(relations)
}

// ComputeWeaknesses folds defending damage relations into attacking type
// multipliers: x2 for double damage, x0.5 for half and 0 for immunity. An
// immunity on any defending type zeroes the attacker.
func ComputeWeaknesses(relations []pokeapi.DamageRelations) []Weakness {
	mult := make(map[string]float64)
	get := func(name string) float64 {
		if m, ok := mult[name]; ok {
			return m
		}
		return 1
	}
	for _, rel := range relations {
		for _, a := range rel.DoubleDamageFrom {
			mult[a.Name] = get(a.Name) * 2
		}
		for _, a := range rel.HalfDamageFrom {
			mult[a.Name] = get(a.Name) * 0.5
		}
		for _, a := range rel.NoDamageFrom {
			mult[a.Name] = 0
		}
	}

	var out []Weakness
	for name, m := range mult {
		if m > 1 {
			out = append(out, Weakness{Type: name, Multiplier: m})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}

func (d *Dex) damageRelations(ctx context.Context, typeName string) (pokeapi.DamageRelations, bool) {
	key := slug(typeName)
	d.mu.RLock()
	rel, ok := d.types[key]
	d.mu.RUnlock()
	if ok {
		return rel, true
	}

	typ, err := d.api.Types().Get(ctx, key)
	if err != nil {
		d.logger.DebugContext(ctx, "type lookup failed", "type", key, "error", err)
		return pokeapi.DamageRelations{}, false
	}
	d.mu.Lock()
	d.types[key] = typ.DamageRelations
	d.mu.Unlock()
	return typ.DamageRelations, true
}
