// Package sqlfront wires together ambient plumbing around the parser
// package: configuration loading and the public ParserConfig shape
// consumed by cmd/sqlfrontctl.
package sqlfront

import (
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"

	"github.com/kynessa/sqlfront/parser"
)

// ParserConfig is the YAML/env-friendly mirror of parser.Config. Field
// names match the environment variable suffixes (SQLFRONT_MAX_DEPTH,
// SQLFRONT_STRICT_ANSI, SQLFRONT_ALLOW_EXTENSIONS, SQLFRONT_MODE).
type ParserConfig struct {
	Mode            string `yaml:"mode"`
	MaxDepth        int    `yaml:"max_depth"`
	StrictANSI      bool   `yaml:"strict_ansi"`
	AllowExtensions bool   `yaml:"allow_extensions"`
}

// ToParserConfig converts the loaded configuration into the parser
// package's runtime Config.
func (c ParserConfig) ToParserConfig() parser.Config {
	mode := parser.ModeProduction
	if c.Mode == "debug" {
		mode = parser.ModeDebug
	}
	return parser.Config{
		Mode:            mode,
		MaxDepth:        c.MaxDepth,
		StrictANSI:      c.StrictANSI,
		AllowExtensions: c.AllowExtensions,
	}
}

// DefaultConfig returns the baseline configuration LoadConfig starts
// from before merging a file or environment overrides.
func DefaultConfig() ParserConfig {
	d := parser.DefaultConfig()
	return ParserConfig{
		Mode:            d.Mode.String(),
		MaxDepth:        d.MaxDepth,
		StrictANSI:      d.StrictANSI,
		AllowExtensions: d.AllowExtensions,
	}
}

// LoadConfig builds a ParserConfig starting from DefaultConfig, merging
// a YAML file at path (if non-empty and present), then merging
// SQLFRONT_* environment variables, which take precedence over both.
func LoadConfig(path string) (ParserConfig, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			data, err := os.ReadFile(path)
			if err != nil {
				return ParserConfig{}, fmt.Errorf("read config file: %w", err)
			}
			if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
				return ParserConfig{}, fmt.Errorf("parse config file: %w", err)
			}
		} else if !os.IsNotExist(err) {
			return ParserConfig{}, fmt.Errorf("stat config file: %w", err)
		}
	}

	if err := loadDotEnv(); err != nil {
		return ParserConfig{}, err
	}
	applyEnvOverrides(&cfg)

	return cfg, nil
}

func loadDotEnv() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}
	if err := godotenv.Load(".env"); err != nil {
		return fmt.Errorf("load .env file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *ParserConfig) {
	if v := os.Getenv("SQLFRONT_MAX_DEPTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxDepth = n
		}
	}
	if v := os.Getenv("SQLFRONT_STRICT_ANSI"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.StrictANSI = b
		}
	}
	if v := os.Getenv("SQLFRONT_ALLOW_EXTENSIONS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.AllowExtensions = b
		}
	}
	if v := os.Getenv("SQLFRONT_MODE"); v != "" {
		cfg.Mode = v
	}
}
