//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/iv/internal/media"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/Pictures",
			expected: filepath.Join(home, "Pictures"),
		},
		{
			name:     "tilde with nested path",
			input:    "~/Pictures/Camera/2024",
			expected: filepath.Join(home, "Pictures", "Camera", "2024"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/srv/media",
			expected: "/srv/media",
		},
		{
			name:     "relative path unchanged",
			input:    "media/photos",
			expected: "media/photos",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) == 0 {
		t.Fatal("getConfigPaths() returned empty slice")
	}

	// Last path should be local config.toml
	if last := paths[len(paths)-1]; last != "config.toml" {
		t.Errorf("last config path = %q, want %q", last, "config.toml")
	}

	if home, err := os.UserHomeDir(); err == nil {
		expectedFirst := filepath.Join(home, ".config", "iv", "config.toml")
		if paths[0] != expectedFirst {
			t.Errorf("first config path = %q, want %q", paths[0], expectedFirst)
		}
	}
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_LastFileWins(t *testing.T) {
	dir := t.TempDir()
	first := writeConfig(t, dir, "first.toml", `
default_filter = "image"
poll_interval_ms = 500
library_roots = ["/a", "/b"]
`)
	second := writeConfig(t, dir, "second.toml", `
default_filter = "video"
`)

	cfg, err := load([]string{first, second, filepath.Join(dir, "missing.toml")})
	require.NoError(t, err)

	assert.Equal(t, media.FilterVideo, cfg.Filter())
	assert.Equal(t, 500*time.Millisecond, cfg.PollInterval())
	assert.Equal(t, []string{"/a", "/b"}, cfg.LibraryRoots)
}

func TestLoad_InvalidToml(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "bad.toml", "default_filter = [")

	_, err := load([]string{path})
	assert.Error(t, err)
}

func TestLoad_NoFiles(t *testing.T) {
	cfg, err := load(nil)
	require.NoError(t, err)

	assert.Equal(t, media.FilterAll, cfg.Filter())
	assert.Equal(t, time.Second, cfg.PollInterval())
	assert.True(t, cfg.ShouldDeleteFiles())
	assert.True(t, cfg.ShouldAutoPlay())
	assert.Equal(t, slog.LevelInfo, cfg.Level())
}

func TestLoad_DeleteFilesDisabled(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "c.toml", "delete_files = false\n")

	cfg, err := load([]string{path})
	require.NoError(t, err)

	assert.False(t, cfg.ShouldDeleteFiles())
}

func TestLoad_AutoPlayDisabled(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "c.toml", "auto_play = false\n")

	cfg, err := load([]string{path})
	require.NoError(t, err)

	assert.False(t, cfg.ShouldAutoPlay())
}

func TestPollInterval_Bounds(t *testing.T) {
	tests := []struct {
		ms   int
		want time.Duration
	}{
		{0, time.Second},
		{-3, time.Second},
		{10, 100 * time.Millisecond},
		{250, 250 * time.Millisecond},
		{60000, 5 * time.Second},
	}
	for _, tt := range tests {
		cfg := Config{PollIntervalMs: tt.ms}
		if got := cfg.PollInterval(); got != tt.want {
			t.Errorf("PollInterval(%d) = %v, want %v", tt.ms, got, tt.want)
		}
	}
}

func TestFilter_InvalidFallsBackToAll(t *testing.T) {
	cfg := Config{DefaultFilter: "audio"}
	if got := cfg.Filter(); got != media.FilterAll {
		t.Errorf("Filter() = %v, want all", got)
	}
}

func TestLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		cfg := Config{LogLevel: in}
		if got := cfg.Level(); got != want {
			t.Errorf("Level(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestIndexFile_Configured(t *testing.T) {
	cfg := Config{IndexPath: "/tmp/custom.db"}
	path, err := cfg.IndexFile()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.db", path)
}
