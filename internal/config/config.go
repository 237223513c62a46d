// Package config holds the runtime settings shared by the CLI, the web API
// and the MCP server.
package config

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"poketrainers/internal/pokeapi"
	"poketrainers/internal/store"
)

// EnvFile names the config file used when no --config flag is given.
const EnvFile = "POKETRAINERS_CONFIG"

// Config is the runtime configuration.
type Config struct {
	APIBase         string   `json:"api_base" yaml:"api_base"`
	Timeout         Duration `json:"timeout" yaml:"timeout"` // per PokeAPI request
	DBPath          string   `json:"db_path" yaml:"db_path"`
	Addr            string   `json:"addr" yaml:"addr"`
	LogLevel        string   `json:"log_level" yaml:"log_level"`
	LogFormat       string   `json:"log_format" yaml:"log_format"` // "text" or "json"
	PrefetchWorkers int      `json:"prefetch_workers" yaml:"prefetch_workers"`
	BcryptCost      int      `json:"bcrypt_cost" yaml:"bcrypt_cost"`
	SessionTTL      Duration `json:"session_ttl" yaml:"session_ttl"` // idle web session lifetime
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		APIBase:         pokeapi.DefaultBaseURL,
		Timeout:         Duration(pokeapi.DefaultTimeout),
		DBPath:          store.DefaultDBPath,
		Addr:            ":8080",
		LogLevel:        "info",
		LogFormat:       "text",
		PrefetchWorkers: 4,
		BcryptCost:      12,
		SessionTTL:      Duration(24 * time.Hour),
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIBase) == "" {
		return fmt.Errorf("api_base is required")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("log_format must be text or json, got %q", c.LogFormat)
	}
	if c.PrefetchWorkers < 1 {
		return fmt.Errorf("prefetch_workers must be at least 1, got %d", c.PrefetchWorkers)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt_cost must be in [%d, %d], got %d", bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be positive, got %s", c.SessionTTL)
	}
	return nil
}

// Duration is a time.Duration written as "8s" or "1m30s" in config files.
type Duration time.Duration

func (d Duration) String() string { return time.Duration(d).String() }

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) MarshalJSON() ([]byte, error) { return json.Marshal(d.String()) }

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a string like \"8s\": %w", err)
	}
	return d.parse(s)
}

func (d Duration) MarshalYAML() (any, error) { return d.String(), nil }

func (d *Duration) UnmarshalYAML(n *yaml.Node) error {
	return d.parse(n.Value)
}

func (d *Duration) parse(s string) error {
	v, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("parse duration: %w", err)
	}
	*d = Duration(v)
	return nil
}
