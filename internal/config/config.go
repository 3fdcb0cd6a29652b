package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	defaultSaveDebounceMs = 500
	maxSaveDebounceMs     = 10000
)

type Config struct {
	StateFile string `koanf:"state_file"` // SQLite path; empty means XDG data dir
	Persist   *bool  `koanf:"persist"`    // save and restore the playlist (default: true)

	LogFile  string `koanf:"log_file"`  // empty means XDG state dir
	LogLevel string `koanf:"log_level"` // "debug", "info", "warn", "error"

	SaveDebounceMs *int `koanf:"save_debounce_ms"` // delay before writing a snapshot (default: 500)
}

func Load() (*Config, error) {
	return loadFrom(getConfigPaths())
}

func loadFrom(configPaths []string) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.StateFile = expandPath(cfg.StateFile)
	cfg.LogFile = expandPath(cfg.LogFile)

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/setlist/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "setlist", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// PersistEnabled reports whether the playlist is saved between sessions.
func (c *Config) PersistEnabled() bool {
	return c.Persist == nil || *c.Persist
}

// SaveDebounce returns the snapshot save delay with defaults applied.
func (c *Config) SaveDebounce() time.Duration {
	ms := defaultSaveDebounceMs
	if c.SaveDebounceMs != nil {
		ms = min(max(*c.SaveDebounceMs, 0), maxSaveDebounceMs)
	}
	return time.Duration(ms) * time.Millisecond
}
