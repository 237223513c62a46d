// poketrainers is the trainer companion CLI: evolution lines, team
// deduplication and suggestions, dex lookups, accounts, the web API and an
// MCP server.
//
// Usage:
//
//	poketrainers line <name>
//	poketrainers dedup <name>... [--markdown]
//	poketrainers suggest [--theme T] [owned...]
//	poketrainers serve [--addr :8080]
//	poketrainers mcp
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"poketrainers/internal/config"
	"poketrainers/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
	apiBase    string
}

// cfg is loaded before every command runs.
var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:   "poketrainers",
	Short: "Pokemon trainer companion",
	Long: "poketrainers resolves evolution lines, keeps teams to one member per line,\n" +
		"suggests and analyses teams, and serves the same over HTTP and MCP.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.configPath, "config", "", "Config file (YAML or JSON); defaults to $"+config.EnvFile)
	pf.StringVar(&rootFlags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&rootFlags.logFormat, "log-format", "", "Log format: text or json")
	pf.StringVar(&rootFlags.apiBase, "api-base", "", "PokeAPI base URL")

	rootCmd.AddCommand(lineCmd, dedupCmd, suggestCmd)
	rootCmd.AddCommand(guideCmd, synergyCmd, buildCmd)
	rootCmd.AddCommand(weaknessCmd, catchCmd, lookupCmd)
	rootCmd.AddCommand(userCmd, serveCmd, mcpCmd)
	rootCmd.Version = version
}

// loadConfig resolves the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command, _ []string) error {
	c, err := config.Resolve(rootFlags.configPath)
	if err != nil {
		return err
	}
	if rootFlags.logLevel != "" {
		c.LogLevel = rootFlags.logLevel
	}
	if rootFlags.logFormat != "" {
		c.LogFormat = rootFlags.logFormat
	}
	if rootFlags.apiBase != "" {
		c.APIBase = rootFlags.apiBase
	}
	if err := c.Validate(); err != nil {
		return err
	}
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	logging.Init(level, c.LogFormat, cmd.ErrOrStderr())
	cfg = c
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
