// Package mcp exposes the team tools over the Model Context Protocol.
package mcp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"poketrainers/internal/advisor"
	"poketrainers/internal/display"
	"poketrainers/internal/evolution"
)

// Version is reported to MCP clients.
var Version = "dev"

// Server wraps the MCP SDK server.
type Server struct {
	MCPServer *sdkmcp.Server

	lines   evolution.LineResolver
	dedup   *evolution.Deduplicator
	advisor *advisor.Advisor
	logger  *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithAdvisor replaces the default team advisor.
func WithAdvisor(a *advisor.Advisor) Option {
	return func(s *Server) { s.advisor = a }
}

// WithLogger configures structured logging.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// NewServer creates an MCP server whose tools resolve lines through lines.
func NewServer(lines evolution.LineResolver, opts ...Option) *Server {
	s := &Server{lines: lines, dedup: evolution.NewDeduplicator(lines)}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.advisor == nil {
		s.advisor = advisor.New(lines, advisor.WithLogger(s.logger))
	}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "poketrainers", Version: Version},
		nil,
	)
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "resolve_evolution_line",
		Description: "Return the evolution line of a pokemon species, base form first. Unknown species resolve to themselves.",
	}, s.handleResolveLine)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "deduplicate_team",
		Description: "Keep at most one pokemon per evolution line, preferring the most evolved member. Reports the dropped names.",
	}, s.handleDeduplicate)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "suggest_team",
		Description: "Suggest a team of up to six around the pokemon the trainer owns, never repeating an evolution line.",
	}, s.handleSuggest)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "strategy_guide",
		Description: "Return a Markdown strategy guide for a topic at beginner or advanced level.",
	}, s.handleGuide)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "synergy_report",
		Description: "Return a Markdown analysis of known combos within a team.",
	}, s.handleSynergy)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "build_template",
		Description: "Return a competitive build (role, item, ability, moves, EVs, nature) for a pokemon.",
	}, s.handleBuild)
}

// --- Tool input/output types ---

type resolveLineInput struct {
	Name string `json:"name" jsonschema:"species name, e.g. pikachu"`
}

type resolveLineOutput struct {
	Line    []string `json:"line"`
	Display string   `json:"display"`
}

type teamInput struct {
	Team []string `json:"team" jsonschema:"pokemon names in team order"`
}

type deduplicateOutput struct {
	Team    []string `json:"team"`
	Removed []string `json:"removed"`
}

type suggestInput struct {
	Theme string   `json:"theme,omitempty" jsonschema:"free-form goal, e.g. rain or hyper offense"`
	Owned []string `json:"owned,omitempty" jsonschema:"pokemon the trainer already has (at most five are used)"`
}

type guideInput struct {
	Topic string `json:"topic" jsonschema:"guide topic, e.g. Tier List or Breeding"`
	Level string `json:"level,omitempty" jsonschema:"beginner (default) or advanced"`
}

type markdownOutput struct {
	Markdown string `json:"markdown"`
}

type buildInput struct {
	Name string `json:"name" jsonschema:"pokemon name"`
}

// --- Tool handlers ---

func (s *Server) handleResolveLine(ctx context.Context, _ *sdkmcp.CallToolRequest, input resolveLineInput) (*sdkmcp.CallToolResult, resolveLineOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, resolveLineOutput{}, fmt.Errorf("name is required")
	}
	line := s.lines.Resolve(ctx, input.Name)
	s.logger.DebugContext(ctx, "resolve_evolution_line", "name", input.Name, "stages", len(line))
	return nil, resolveLineOutput{Line: line, Display: display.Line(line)}, nil
}

func (s *Server) handleDeduplicate(ctx context.Context, _ *sdkmcp.CallToolRequest, input teamInput) (*sdkmcp.CallToolResult, deduplicateOutput, error) {
	res := s.dedup.Report(ctx, input.Team)
	removed := res.Removed
	if removed == nil {
		removed = []string{}
	}
	s.logger.DebugContext(ctx, "deduplicate_team", "in", len(input.Team), "kept", len(res.Team))
	return nil, deduplicateOutput{Team: res.Team, Removed: removed}, nil
}

func (s *Server) handleSuggest(ctx context.Context, _ *sdkmcp.CallToolRequest, input suggestInput) (*sdkmcp.CallToolResult, advisor.Suggestion, error) {
	return nil, s.advisor.SuggestTeam(ctx, input.Theme, input.Owned), nil
}

func (s *Server) handleGuide(_ context.Context, _ *sdkmcp.CallToolRequest, input guideInput) (*sdkmcp.CallToolResult, markdownOutput, error) {
	if strings.TrimSpace(input.Topic) == "" {
		return nil, markdownOutput{}, fmt.Errorf("topic is required")
	}
	return nil, markdownOutput{Markdown: advisor.StrategyGuide(input.Topic, input.Level)}, nil
}

func (s *Server) handleSynergy(_ context.Context, _ *sdkmcp.CallToolRequest, input teamInput) (*sdkmcp.CallToolResult, markdownOutput, error) {
	return nil, markdownOutput{Markdown: advisor.Synergy(input.Team)}, nil
}

func (s *Server) handleBuild(_ context.Context, _ *sdkmcp.CallToolRequest, input buildInput) (*sdkmcp.CallToolResult, advisor.BuildTemplate, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, advisor.BuildTemplate{}, fmt.Errorf("name is required")
	}
	return nil, advisor.Build(input.Name), nil
}

// Run serves over stdio until ctx is done or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	s.logger.InfoContext(ctx, "mcp server starting", "transport", "stdio", "version", Version)
	return s.MCPServer.Run(ctx, &sdkmcp.StdioTransport{})
}
