// Package web serves the trainer companion over a JSON HTTP API.
//
// Routes are registered on a net/http ServeMux using method patterns. Every
// route is instrumented with Prometheus counters exposed at /metrics.
// Authenticated routes expect "Authorization: Bearer <token>" with a token
// from POST /api/login.
package web

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"poketrainers/internal/account"
	"poketrainers/internal/advisor"
	"poketrainers/internal/dex"
	"poketrainers/internal/evolution"
)

// Dex is the species data the API serves.
type Dex interface {
	Summary(ctx context.Context, nameOrID string) (*dex.Summary, error)
	Encounters(ctx context.Context, nameOrID string) ([]string, error)
	Catch(ctx context.Context, nameOrID string, in dex.CatchInput) (*dex.CatchReport, error)
	GenerationRange(ctx context.Context, n int) (dex.Range, error)
	Move(ctx context.Context, query string) (*dex.MoveInfo, error)
	Item(ctx context.Context, query string) (*dex.ItemInfo, error)
	Ability(ctx context.Context, query string) (*dex.AbilityInfo, error)
}

// Deps are the services behind the API.
type Deps struct {
	Accounts *account.Service
	Dex      Dex
	Lines    evolution.LineResolver
	Advisor  *advisor.Advisor
}

// Server is the HTTP API. Create with New; serve Handler().
type Server struct {
	accounts *account.Service
	dex      Dex
	lines    evolution.LineResolver
	dedup    *evolution.Deduplicator
	advisor  *advisor.Advisor
	sessions *sessions
	metrics  *metrics
	logger   *slog.Logger
	mux      *http.ServeMux
}

// Option configures a Server.
type Option func(*Server)

// WithLogger configures structured logging.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithSessionTTL sets how long an unused login token stays valid.
// Non-positive values keep DefaultSessionTTL.
func WithSessionTTL(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.sessions.ttl = d
		}
	}
}

// New builds the server and registers its routes. A nil Advisor is created
// from Lines.
func New(d Deps, opts ...Option) *Server {
	s := &Server{
		accounts: d.Accounts,
		dex:      d.Dex,
		lines:    d.Lines,
		dedup:    evolution.NewDeduplicator(d.Lines),
		advisor:  d.Advisor,
		sessions: newSessions(),
		metrics:  newMetrics(),
		mux:      http.NewServeMux(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.advisor == nil {
		s.advisor = advisor.New(d.Lines, advisor.WithLogger(s.logger))
	}
	s.routes()
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.mux }

func (s *Server) routes() {
	s.handle("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	s.mux.Handle("GET /metrics", s.metrics.handler())

	// Accounts
	s.handle("POST /api/register", s.handleRegister)
	s.handle("POST /api/login", s.handleLogin)
	s.handle("POST /api/logout", s.authed(s.handleLogout))

	// Dex
	s.handle("GET /api/pokemon/{name}", s.handlePokemon)
	s.handle("GET /api/evolution/{name}", s.handleEvolution)
	s.handle("GET /api/encounters/{name}", s.handleEncounters)
	s.handle("GET /api/generation/{n}", s.handleGeneration)
	s.handle("GET /api/catch", s.handleCatch)
	s.handle("GET /api/move/{name}", s.handleMove)
	s.handle("GET /api/item/{name}", s.handleItem)
	s.handle("GET /api/ability/{name}", s.handleAbility)

	// Teams
	s.handle("POST /api/team/dedup", s.handleDedup)
	s.handle("POST /api/team/suggest", s.handleSuggest)
	s.handle("GET /api/guide", s.handleGuide)
	s.handle("POST /api/synergy", s.handleSynergy)
	s.handle("GET /api/build/{name}", s.handleBuild)

	// Signed-in trainer
	s.handle("GET /api/me", s.authed(s.handleMe))
	s.handle("PUT /api/me", s.authed(s.handleUpdateProfile))
	s.handle("POST /api/me/deck/undo", s.authed(s.handleUndo))
	s.handle("POST /api/me/deck/{name}", s.authed(s.handleAddToDeck))
	s.handle("DELETE /api/me/deck/{name}", s.authed(s.handleRemoveFromDeck))
	s.handle("PUT /api/me/teams/{team}", s.authed(s.handleSaveTeam))
	s.handle("DELETE /api/me/teams/{team}", s.authed(s.handleDeleteTeam))
	s.handle("DELETE /api/me/history", s.authed(s.handleClearHistory))
}

// handle registers h under pattern with request metrics labelled by pattern.
func (s *Server) handle(pattern string, h http.HandlerFunc) {
	s.mux.Handle(pattern, s.metrics.instrument(pattern, h))
}
