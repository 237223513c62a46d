package advisor

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"

	"poketrainers/internal/display"
	"poketrainers/internal/evolution"
)

// TeamSize is the number of members in a full team.
const TeamSize = 6

// MaxOwned caps how many owned pokemon a suggestion builds around.
const MaxOwned = TeamSize - 1

// DefaultPool is the candidate list suggestions draw from.
var DefaultPool = []string{
	"Charmander", "Charmeleon", "Charizard", "Bulbasaur", "Ivysaur", "Venusaur",
	"Squirtle", "Wartortle", "Blastoise", "Snorlax", "Dragonite", "Alakazam",
	"Tyranitar", "Salamence", "Metagross", "Garchomp", "Lucario", "Cinderace",
	"Dragapult", "Flutter Mane", "Iron Hands", "Ogerpon", "Chien-Pao", "Pikachu",
	"Meowscarada", "Skeledirge", "Quaquaval", "Pichu", "Raichu",
}

// FallbackTeam is returned when a suggestion cannot be built.
var FallbackTeam = []string{"Pikachu", "Snorlax", "Dragonite", "Venusaur", "Blastoise", "Charizard"}

// Suggestion is a proposed team.
type Suggestion struct {
	Team     []string `json:"team"`
	Removed  []string `json:"removed"`  // dropped to keep one member per evolution line
	Reason   string   `json:"reason"`
	Fallback bool     `json:"fallback"` // true when FallbackTeam was returned
}

// Advisor suggests teams. It is safe for concurrent use.
type Advisor struct {
	resolver evolution.LineResolver
	dedup    *evolution.Deduplicator
	pool     []string
	logger   *slog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures an Advisor.
type Option func(*Advisor)

// WithRand fixes the random source used to sample the pool.
func WithRand(src rand.Source) Option {
	return func(a *Advisor) { a.rng = rand.New(src) }
}

// WithPool replaces DefaultPool.
func WithPool(pool []string) Option {
	return func(a *Advisor) { a.pool = slices.Clone(pool) }
}

// WithLogger configures structured logging.
func WithLogger(l *slog.Logger) Option {
	return func(a *Advisor) { a.logger = l }
}

// New returns an Advisor resolving evolution lines through r.
func New(r evolution.LineResolver, opts ...Option) *Advisor {
	a := &Advisor{resolver: r, pool: DefaultPool}
	for _, opt := range opts {
		opt(a)
	}
	a.dedup = evolution.NewDeduplicator(r)
	if a.rng == nil {
		a.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if a.logger == nil {
		a.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return a
}

// SuggestTeam completes owned to a team of TeamSize. Pool entries sharing
// an evolution line with an owned pokemon are never picked. The result is
// deduplicated by evolution line, so it may hold fewer than TeamSize names;
// the dropped names are reported in Removed.
func (a *Advisor) SuggestTeam(ctx context.Context, theme string, owned []string) Suggestion {
	theme = strings.TrimSpace(theme)
	owned = ownedNames(owned)

	if ctx.Err() != nil {
		return a.fallback(ctx, ctx.Err())
	}

	banned := make(map[string]bool)
	for _, name := range owned {
		for _, stage := range a.resolver.Resolve(ctx, name) {
			banned[poolKey(stage)] = true
		}
	}
	for _, name := range owned {
		banned[poolKey(name)] = true
	}

	var available []string
	for _, p := range a.pool {
		if !banned[poolKey(p)] {
			available = append(available, display.Name(p))
		}
	}

	team := slices.Clone(owned)
	need := min(TeamSize-len(owned), len(available))
	team = append(team, a.sample(available, need)...)

	if ctx.Err() != nil {
		return a.fallback(ctx, ctx.Err())
	}
	res := a.dedup.Report(ctx, team)
	removed := res.Removed
	if removed == nil {
		removed = []string{}
	}
	return Suggestion{
		Team:    res.Team,
		Removed: removed,
		Reason:  reason(theme, owned),
	}
}

func (a *Advisor) sample(from []string, k int) []string {
	if k <= 0 {
		return nil
	}
	a.mu.Lock()
	perm := a.rng.Perm(len(from))
	a.mu.Unlock()
	out := make([]string, k)
	for i := range out {
		out[i] = from[perm[i]]
	}
	return out
}

func (a *Advisor) fallback(ctx context.Context, err error) Suggestion {
	a.logger.WarnContext(ctx, "team suggestion failed, using fallback team", "error", err)
	return Suggestion{
		Team:     slices.Clone(FallbackTeam),
		Removed:  []string{},
		Reason:   "Could not build a team. Showing a fallback team instead.",
		Fallback: true,
	}
}

// ownedNames title-cases owned pokemon, drops blanks and duplicates and keeps
// at most MaxOwned.
func ownedNames(owned []string) []string {
	out := []string{}
	for _, o := range owned {
		name := display.Name(o)
		if name == "" || slices.Contains(out, name) {
			continue
		}
		out = append(out, name)
		if len(out) == MaxOwned {
			break
		}
	}
	return out
}

// poolKey compares pool entries with API slugs: "Flutter Mane" and
// "flutter-mane" match.
func poolKey(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

func reason(theme string, owned []string) string {
	if len(owned) > 0 {
		goal := theme
		if goal == "" {
			goal = "balance"
		}
		return fmt.Sprintf("This team is built around %s to achieve %s. "+
			"The added pokemon cover type weaknesses and raise the team's offensive potential.",
			strings.Join(owned, ", "), goal)
	}
	goal := theme
	if goal == "" {
		goal = "general balance"
	}
	return fmt.Sprintf("This team is designed for %s with good type synergy and wide attack coverage.", goal)
}
