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

// Config captures where strata finds its data and how often it refreshes.
type Config struct {
	APIBind      string
	Workarea     string
	Well         string
	LayoutPath   string
	LogPath      string
	PollInterval time.Duration
	FontPath     string  // label font; empty searches the installed CJK fonts
	FontSize     float64 // label size in pixels; zero uses the renderer default
}

const (
	defaultConfigPath  = "~/.config/strata/config.toml"
	defaultLogPath     = "~/.local/state/strata/strata.log"
	defaultAPIBind     = "127.0.0.1:20022"
	defaultPollSeconds = 10
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Load locates and parses the strata config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

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
		APIBind     string  `toml:"api_bind"`
		Workarea    string  `toml:"workarea"`
		Well        string  `toml:"well"`
		Layout      string  `toml:"layout"`
		LogFile     string  `toml:"log_file"`
		PollSeconds int     `toml:"poll_seconds"`
		Font        string  `toml:"font"`
		FontSize    float64 `toml:"font_size"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIBind); v != "" {
		cfg.APIBind = v
	}
	if v := strings.TrimSpace(raw.Workarea); v != "" {
		cfg.Workarea = mustExpand(v)
	}
	cfg.Well = strings.TrimSpace(raw.Well)
	if v := strings.TrimSpace(raw.Layout); v != "" {
		cfg.LayoutPath = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogPath = mustExpand(v)
	}
	if raw.PollSeconds > 0 {
		cfg.PollInterval = time.Duration(raw.PollSeconds) * time.Second
	}
	if v := strings.TrimSpace(raw.Font); v != "" {
		cfg.FontPath = mustExpand(v)
	}
	if raw.FontSize > 0 {
		cfg.FontSize = raw.FontSize
	}

	return cfg, nil
}

func defaults() Config {
	return Config{
		APIBind:      defaultAPIBind,
		LogPath:      mustExpand(defaultLogPath),
		PollInterval: defaultPollSeconds * time.Second,
	}
}

// Validate reports the first field that prevents a chart from loading.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Workarea) == "" {
		return fmt.Errorf("workarea is not set")
	}
	if strings.TrimSpace(c.Well) == "" {
		return fmt.Errorf("well is not set")
	}
	return nil
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
