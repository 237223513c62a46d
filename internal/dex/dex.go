// Package dex answers encyclopedia questions on top of the PokeAPI client:
// type weaknesses, generation ranges, catch odds, encounter locations,
// species cards and move/item/ability lookups.
package dex

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	"poketrainers/internal/pokeapi"
)

// Dex is safe for concurrent use. Type damage relations are memoized for
// the life of the Dex.
type Dex struct {
	api    *pokeapi.Client
	logger *slog.Logger

	mu    sync.RWMutex
	types map[string]pokeapi.DamageRelations
}

// Option configures a Dex.
type Option func(*Dex)

// WithLogger configures structured logging.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dex) { d.logger = l }
}

// New returns a Dex reading from api.
func New(api *pokeapi.Client, opts ...Option) *Dex {
	d := &Dex{api: api, types: make(map[string]pokeapi.DamageRelations)}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return d
}

// slug turns free text into an API slug: "Solar Power" -> "solar-power".
func slug(q string) string {
	return strings.Join(strings.Fields(strings.ToLower(q)), "-")
}
