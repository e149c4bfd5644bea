// Package config loads piecebuf configuration from a TOML file with
// environment variable overrides.
//
// Precedence, lowest to highest: built-in defaults, the TOML file, then
// PIECEBUF_* environment variables. A missing config file is not an error.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "PIECEBUF_"

// DefaultHistoryLimit is the undo stack capacity when none is configured.
const DefaultHistoryLimit = 100

// Config is the root configuration.
type Config struct {
	Editor EditorConfig `toml:"editor"`
	REPL   REPLConfig   `toml:"repl"`
}

// EditorConfig configures the buffer engine.
type EditorConfig struct {
	// HistoryLimit is the checkpoint stack capacity.
	HistoryLimit int `toml:"history_limit"`
}

// REPLConfig configures the interactive driver.
type REPLConfig struct {
	// Prompt is printed before each command read.
	Prompt string `toml:"prompt"`

	// WatchConfig reloads the config file on change.
	WatchConfig bool `toml:"watch_config"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Editor: EditorConfig{HistoryLimit: DefaultHistoryLimit},
		REPL:   REPLConfig{Prompt: "> "},
	}
}

// Load reads configuration from path, layering it over defaults and applying
// environment overrides. An empty path or absent file yields defaults plus
// environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// Absent file is fine; defaults apply.
		default:
			return cfg, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	cfg.normalize()
	return cfg, nil
}

// applyEnv overlays PIECEBUF_* environment variables. Unparseable values are
// ignored rather than fatal; the file/default value stands.
func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvPrefix + "HISTORY_LIMIT"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Editor.HistoryLimit = n
		}
	}
	if v, ok := os.LookupEnv(EnvPrefix + "PROMPT"); ok {
		cfg.REPL.Prompt = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "WATCH_CONFIG"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.REPL.WatchConfig = b
		}
	}
}

// normalize clamps values into their valid ranges.
func (c *Config) normalize() {
	if c.Editor.HistoryLimit <= 0 {
		c.Editor.HistoryLimit = DefaultHistoryLimit
	}
	if c.REPL.Prompt == "" {
		c.REPL.Prompt = "> "
	}
}
