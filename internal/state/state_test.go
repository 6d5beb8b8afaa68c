package state

import (
	"path/filepath"
	"testing"

	"github.com/llehouerou/iv/internal/media"
)

func openTestManager(t *testing.T, path string, def media.TypeFilter) *Manager {
	t.Helper()

	m, err := Open(path, def)
	if err != nil {
		t.Fatalf("failed to open state: %v", err)
	}
	return m
}

// TestLoadTypeFilter_Default tests the fallback when nothing was saved.
func TestLoadTypeFilter_Default(t *testing.T) {
	m := openTestManager(t, filepath.Join(t.TempDir(), "state.db"), media.FilterVideo)
	defer m.Close()

	f, err := m.LoadTypeFilter()
	if err != nil {
		t.Fatalf("LoadTypeFilter failed: %v", err)
	}
	if f != media.FilterVideo {
		t.Errorf("expected default video filter, got %s", f)
	}
}

// TestSaveTypeFilter_SurvivesReopen tests that a saved filter is persisted.
func TestSaveTypeFilter_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	m := openTestManager(t, path, media.FilterAll)
	if err := m.SaveTypeFilter(media.FilterImage); err != nil {
		t.Fatalf("SaveTypeFilter failed: %v", err)
	}
	if err := m.SaveTypeFilter(media.FilterVideo); err != nil {
		t.Fatalf("SaveTypeFilter failed: %v", err)
	}
	m.Close()

	m = openTestManager(t, path, media.FilterAll)
	defer m.Close()
	f, err := m.LoadTypeFilter()
	if err != nil {
		t.Fatalf("LoadTypeFilter failed: %v", err)
	}
	if f != media.FilterVideo {
		t.Errorf("expected video filter after reopen, got %s", f)
	}
}

// TestLoadTypeFilter_Corrupt tests that an unreadable value falls back to the default.
func TestLoadTypeFilter_Corrupt(t *testing.T) {
	m := openTestManager(t, filepath.Join(t.TempDir(), "state.db"), media.FilterImage)
	defer m.Close()

	if err := setPreference(m.db, keyTypeFilter, "audio"); err != nil {
		t.Fatalf("setPreference failed: %v", err)
	}

	f, err := m.LoadTypeFilter()
	if err == nil {
		t.Error("expected error for corrupt value")
	}
	if f != media.FilterImage {
		t.Errorf("expected default filter, got %s", f)
	}
}
