// Package config loads the gridpath YAML configuration shared by the CLI
// and the HTTP service.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/astar"
)

// ErrInvalidConfig is returned by Validate, wrapped with the offending field.
var ErrInvalidConfig = errors.New("config: invalid")

// Config is the root of the YAML document.
type Config struct {
	Search struct {
		Heuristic  string `yaml:"heuristic"`
		SkipClosed bool   `yaml:"skip_closed"`
	} `yaml:"search"`

	Server struct {
		Addr         string        `yaml:"addr"`
		MaxCells     int           `yaml:"max_cells"`
		ReadTimeout  time.Duration `yaml:"read_timeout"`
		WriteTimeout time.Duration `yaml:"write_timeout"`
	} `yaml:"server"`

	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`

	Trace struct {
		Enabled  bool   `yaml:"enabled"`
		Exporter string `yaml:"exporter"` // stdout
	} `yaml:"trace"`

	Log struct {
		Level  string `yaml:"level"`  // debug, info, warn, error
		Format string `yaml:"format"` // text or json
	} `yaml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.Search.Heuristic = astar.HeuristicEuclidean
	cfg.Server.Addr = ":8080"
	cfg.Server.MaxCells = 1_000_000
	cfg.Server.ReadTimeout = 5 * time.Second
	cfg.Server.WriteTimeout = 10 * time.Second
	cfg.Metrics.Enabled = true
	cfg.Metrics.Path = "/metrics"
	cfg.Trace.Exporter = "stdout"
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"

	return cfg
}

// Load reads path over the defaults and validates the result.
// An empty path returns Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field that has a closed set of values.
func (c *Config) Validate() error {
	if _, err := astar.HeuristicByName(c.Search.Heuristic); err != nil {
		return fmt.Errorf("%w: search.heuristic: %v", ErrInvalidConfig, err)
	}
	if c.Server.MaxCells <= 0 {
		return fmt.Errorf("%w: server.max_cells must be positive, got %d", ErrInvalidConfig, c.Server.MaxCells)
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 {
		return fmt.Errorf("%w: server timeouts must not be negative", ErrInvalidConfig)
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics.path %q must start with /", ErrInvalidConfig, c.Metrics.Path)
	}
	if c.Trace.Enabled && c.Trace.Exporter != "stdout" {
		return fmt.Errorf("%w: trace.exporter %q", ErrInvalidConfig, c.Trace.Exporter)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalidConfig, c.Log.Format)
	}

	return nil
}

// SearchOptions converts the search section into astar options.
func (c *Config) SearchOptions() ([]astar.Option, error) {
	h, err := astar.HeuristicByName(c.Search.Heuristic)
	if err != nil {
		return nil, fmt.Errorf("%w: search.heuristic: %v", ErrInvalidConfig, err)
	}
	opts := []astar.Option{astar.WithHeuristic(h)}
	if c.Search.SkipClosed {
		opts = append(opts, astar.WithSkipClosed())
	}

	return opts, nil
}

// Logger builds a slog.Logger writing to w in the configured format and level.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level, err := ParseLevel(c.Log.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	hopts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, hopts))
	}

	return slog.New(slog.NewTextHandler(w, hopts))
}

// ParseLevel maps debug, info, warn and error (any case) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: log.level %q", ErrInvalidConfig, s)
	}

	return level, nil
}
