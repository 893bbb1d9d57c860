package service

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds pokedex-mcp command configuration.
type Config struct {
	Transport string `env:"POKEDEX_MCP_TRANSPORT" envDefault:"stdio"`
	HTTPAddr  string `env:"POKEDEX_MCP_HTTP_ADDR" envDefault:"localhost:8080"`
	Token     string `env:"POKEDEX_MCP_TOKEN"`
	TLSCert   string `env:"POKEDEX_MCP_TLS_CERT"`
	TLSKey    string `env:"POKEDEX_MCP_TLS_KEY"`
}

// ParseConfig parses environment variables and flags into a Config. Flags
// override the environment.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "transport type: stdio or http")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address (for http transport)")
	fs.StringVar(&cfg.Token, "token", cfg.Token, "bearer token securing the HTTP surface")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
