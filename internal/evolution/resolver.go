package evolution

import (
	"context"
	"io"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Source is the external species data the resolver reads from.
// Both methods report ok=false for unknown species, missing chains and
// transport failures alike; the resolver does not distinguish them.
type Source interface {
	// SpeciesEvolutionRef returns an opaque locator for the species' chain.
	SpeciesEvolutionRef(ctx context.Context, name string) (ref string, ok bool)
	// EvolutionChain returns the root of the chain behind ref.
	EvolutionChain(ctx context.Context, ref string) (root *Node, ok bool)
}

// LineResolver maps a species name to its ordered evolutionary line.
type LineResolver interface {
	Resolve(ctx context.Context, name string) []string
}

// Resolver implements LineResolver over a Source with memoization.
type Resolver struct {
	source Source
	lines  LineCache // normalized name -> line
	chains LineCache // chain ref -> line
	logger *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithCache replaces the per-name line cache.
func WithCache(c LineCache) Option {
	return func(r *Resolver) { r.lines = c }
}

// WithLogger configures structured logging.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) { r.logger = l }
}

// NewResolver returns a Resolver reading from src. A nil src resolves every
// name to itself.
func NewResolver(src Source, opts ...Option) *Resolver {
	r := &Resolver{source: src}
	for _, opt := range opts {
		opt(r)
	}
	if r.lines == nil {
		r.lines = NewMemCache()
	}
	if r.chains == nil {
		r.chains = NewMemCache()
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Resolve returns the line containing name, base form first. The result is
// a fresh slice the caller may modify.
//
// A line computed after ctx is done is returned but not cached: a lookup cut
// short by the caller says nothing about the species.
func (r *Resolver) Resolve(ctx context.Context, name string) []string {
	key := Normalize(name)
	if line, ok := r.lines.Get(key); ok {
		return slices.Clone(line)
	}
	line := r.lookup(ctx, key)
	if ctx.Err() != nil {
		r.logger.DebugContext(ctx, "context done, line not cached", "species", key)
		return slices.Clone(line)
	}
	r.lines.Put(key, line)
	return slices.Clone(line)
}

func (r *Resolver) lookup(ctx context.Context, key string) []string {
	self := []string{key}
	if key == "" || r.source == nil {
		return self
	}

	ref, ok := r.source.SpeciesEvolutionRef(ctx, key)
	if !ok || ref == "" {
		r.logger.DebugContext(ctx, "no evolution chain, using singleton line", "species", key)
		return self
	}
	if line, ok := r.chains.Get(ref); ok {
		return line
	}

	root, ok := r.source.EvolutionChain(ctx, ref)
	if !ok || root == nil {
		r.logger.DebugContext(ctx, "evolution chain lookup failed, using singleton line", "species", key, "ref", ref)
		return self
	}
	line := root.Walk()
	if len(line) == 0 {
		return self
	}
	r.chains.Put(ref, line)
	r.logger.DebugContext(ctx, "resolved evolution line", "species", key, "stages", len(line))
	return line
}

// Prefetch resolves names with at most workers concurrent lookups so later
// Resolve calls are served from the cache. It returns once every name is
// resolved or ctx is done.
func (r *Resolver) Prefetch(ctx context.Context, names []string, workers int) {
	if workers < 1 {
		workers = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, name := range names {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			r.Resolve(gctx, name)
			return nil
		})
	}
	_ = g.Wait()
}
