package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/iv/internal/media"
)

const (
	appName = "iv"

	defaultPollInterval = time.Second
	minPollInterval     = 100 * time.Millisecond
	maxPollInterval     = 5 * time.Second
)

type Config struct {
	IndexPath      string   `koanf:"index_path"`       // catalog database; empty means xdg data dir
	LibraryRoots   []string `koanf:"library_roots"`    // directories scanned by ivscan
	DefaultFilter  string   `koanf:"default_filter"`   // "all", "image" or "video"
	PollIntervalMs int      `koanf:"poll_interval_ms"` // viewer position poll cadence
	LogLevel       string   `koanf:"log_level"`        // "debug", "info", "warn" or "error"
	DeleteFiles    *bool    `koanf:"delete_files"`     // remove files when a deletion is committed (default: true)
	AutoPlay       *bool    `koanf:"auto_play"`        // videos start playing when shown (default: true)
}

func Load() (*Config, error) {
	return load(getConfigPaths())
}

func load(paths []string) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range paths {
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

	if cfg.IndexPath != "" {
		cfg.IndexPath = expandPath(cfg.IndexPath)
	}
	for i, root := range cfg.LibraryRoots {
		cfg.LibraryRoots[i] = expandPath(root)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/iv/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
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

// IndexFile returns the catalog database path, defaulting to the xdg data dir.
func (c *Config) IndexFile() (string, error) {
	if c.IndexPath != "" {
		return c.IndexPath, nil
	}
	return xdg.DataFile(filepath.Join(appName, "index.db"))
}

// StateFile returns the preference database path.
func (c *Config) StateFile() (string, error) {
	return xdg.DataFile(filepath.Join(appName, "state.db"))
}

// LogFile returns the log file path in the xdg state dir.
func (c *Config) LogFile() (string, error) {
	return xdg.StateFile(filepath.Join(appName, "iv.log"))
}

// Filter returns the configured default filter, falling back to all media.
func (c *Config) Filter() media.TypeFilter {
	f, err := media.ParseTypeFilter(c.DefaultFilter)
	if err != nil {
		return media.FilterAll
	}
	return f
}

// PollInterval returns the viewer poll cadence with bounds applied.
func (c *Config) PollInterval() time.Duration {
	if c.PollIntervalMs <= 0 {
		return defaultPollInterval
	}
	d := time.Duration(c.PollIntervalMs) * time.Millisecond
	return min(max(d, minPollInterval), maxPollInterval)
}

// Level returns the slog level for log_level.
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ShouldDeleteFiles reports whether committing a deletion removes files.
func (c *Config) ShouldDeleteFiles() bool {
	if c.DeleteFiles == nil {
		return true
	}
	return *c.DeleteFiles
}

// ShouldAutoPlay reports whether videos start playing when their page is shown.
func (c *Config) ShouldAutoPlay() bool {
	if c.AutoPlay == nil {
		return true
	}
	return *c.AutoPlay
}
