package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// StalePolicy selects how out-of-order suggestion responses are reconciled.
type StalePolicy string

const (
	// StaleLatestWins drops responses older than the newest applied request.
	StaleLatestWins StalePolicy = "latest"
	// StaleLastArrivalWins applies whichever response resolves last.
	StaleLastArrivalWins StalePolicy = "last-arrival"
)

// Config captures the settings pantry reads from config.toml.
type Config struct {
	APIBind  string
	LogFile  string
	LogLevel string
	PageSize int
	Search   SearchConfig
}

// SearchConfig tunes the incremental search bar.
type SearchConfig struct {
	URLDebounce  time.Duration
	FetchTimeout time.Duration
	StalePolicy  StalePolicy
}

const (
	defaultConfigPath   = "~/.config/pantry/config.toml"
	defaultLogFile      = "~/.local/state/pantry/pantry.log"
	defaultAPIBind      = "127.0.0.1:8080"
	defaultLogLevel     = "info"
	defaultPageSize     = 12
	defaultURLDebounce  = 500 * time.Millisecond
	defaultFetchTimeout = 5 * time.Second
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIBind:  defaultAPIBind,
		LogFile:  mustExpand(defaultLogFile),
		LogLevel: defaultLogLevel,
		PageSize: defaultPageSize,
		Search: SearchConfig{
			URLDebounce:  defaultURLDebounce,
			FetchTimeout: defaultFetchTimeout,
			StalePolicy:  StaleLatestWins,
		},
	}
}

// Load locates and parses the pantry config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBind  string `toml:"api_bind"`
		LogFile  string `toml:"log_file"`
		LogLevel string `toml:"log_level"`
		PageSize int    `toml:"page_size"`
		Search   struct {
			URLDebounce  string `toml:"url_debounce"`
			FetchTimeout string `toml:"fetch_timeout"`
			StalePolicy  string `toml:"stale_policy"`
		} `toml:"search"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIBind); v != "" {
		cfg.APIBind = v
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if raw.PageSize > 0 {
		cfg.PageSize = raw.PageSize
	}

	if cfg.Search.URLDebounce, err = parseDuration(raw.Search.URLDebounce, defaultURLDebounce); err != nil {
		return Config{}, fmt.Errorf("parse search.url_debounce: %w", err)
	}
	if cfg.Search.FetchTimeout, err = parseDuration(raw.Search.FetchTimeout, defaultFetchTimeout); err != nil {
		return Config{}, fmt.Errorf("parse search.fetch_timeout: %w", err)
	}
	switch policy := StalePolicy(strings.ToLower(strings.TrimSpace(raw.Search.StalePolicy))); policy {
	case "":
	case StaleLatestWins, StaleLastArrivalWins:
		cfg.Search.StalePolicy = policy
	default:
		return Config{}, fmt.Errorf("parse search.stale_policy: unknown policy %q", raw.Search.StalePolicy)
	}

	return cfg, nil
}

func parseDuration(value string, fallback time.Duration) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return fallback, nil
	}
	return d, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
