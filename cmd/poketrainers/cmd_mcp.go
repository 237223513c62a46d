package main

import (
	"context"

	"github.com/spf13/cobra"

	"poketrainers/internal/logging"
	mcpserver "poketrainers/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server over stdio",
	Long: `Starts an MCP server over stdin/stdout exposing the evolution line, team
deduplication, suggestion, guide, synergy and build tools.

The server watches its parent process and exits when the client goes away.`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func runMCP(cmd *cobra.Command, _ []string) error {
	api, err := newAPI()
	if err != nil {
		return err
	}
	logger := logging.New("mcp")
	mcpserver.Version = version
	srv := mcpserver.NewServer(newResolver(api), mcpserver.WithLogger(logger))

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	mcpserver.WatchParent(ctx, cancel, logger)

	return srv.Run(ctx)
}
