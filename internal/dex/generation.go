package dex

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"poketrainers/internal/pokeapi"
)

// ErrNoSpecies is returned when a generation lists no parseable species.
var ErrNoSpecies = errors.New("generation lists no species")

var speciesIDPattern = regexp.MustCompile(`/pokemon-species/(\d+)/?$`)

// Range is the national dex id span of one generation.
type Range struct {
	Generation int `json:"generation"`
	First      int `json:"first"`
	Last       int `json:"last"`
	Count      int `json:"count"`
}

// GenerationRange returns the lowest id, highest id and species count of
// generation n.
func (d *Dex) GenerationRange(ctx context.Context, n int) (Range, error) {
	gen, err := d.api.Generations().Get(ctx, n)
	if err != nil {
		return Range{}, fmt.Errorf("generation range: %w", err)
	}
	r, ok := SpeciesRange(gen.PokemonSpecies)
	if !ok {
		return Range{}, fmt.Errorf("generation %d: %w", n, ErrNoSpecies)
	}
	r.Generation = n
	return r, nil
}

// SpeciesRange computes the id span of species links. Links whose URL does
// not end in /pokemon-species/{id} are ignored.
func SpeciesRange(species []pokeapi.NamedResource) (Range, bool) {
	var r Range
	for _, s := range species {
		m := speciesIDPattern.FindStringSubmatch(s.URL)
		if m == nil {
			continue
		}
		id, err := strconv.Atoi(m[1])
		if err != nil || id <= 0 {
			continue
		}
		if r.Count == 0 || id < r.First {
			r.First = id
		}
		if id > r.Last {
			r.Last = id
		}
		r.Count++
	}
	return r, r.Count > 0
}
