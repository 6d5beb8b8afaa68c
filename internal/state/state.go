// Package state persists user preferences across runs.
package state

import (
	"database/sql"
	"errors"

	dbutil "github.com/llehouerou/iv/internal/db"
	"github.com/llehouerou/iv/internal/media"
)

const keyTypeFilter = "type_filter"

// Manager stores preferences in a small sqlite database.
type Manager struct {
	db            *sql.DB
	defaultFilter media.TypeFilter
}

// Open opens the preference database at path. defaultFilter is returned by
// LoadTypeFilter until a filter has been saved.
func Open(path string, defaultFilter media.TypeFilter) (*Manager, error) {
	db, err := dbutil.Open(path)
	if err != nil {
		return nil, err
	}
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Manager{db: db, defaultFilter: defaultFilter}, nil
}

func (m *Manager) Close() error {
	return m.db.Close()
}

// LoadTypeFilter returns the saved filter, falling back to the default when
// nothing was saved or the stored value is unreadable.
func (m *Manager) LoadTypeFilter() (media.TypeFilter, error) {
	value, err := getPreference(m.db, keyTypeFilter)
	if errors.Is(err, sql.ErrNoRows) {
		return m.defaultFilter, nil
	}
	if err != nil {
		return m.defaultFilter, err
	}
	f, err := media.ParseTypeFilter(value)
	if err != nil {
		return m.defaultFilter, err
	}
	return f, nil
}

// SaveTypeFilter persists f.
func (m *Manager) SaveTypeFilter(f media.TypeFilter) error {
	return setPreference(m.db, keyTypeFilter, f.String())
}

func getPreference(db *sql.DB, key string) (string, error) {
	var value string
	err := db.QueryRow(`SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	return value, err
}

func setPreference(db *sql.DB, key, value string) error {
	_, err := db.Exec(`
		INSERT INTO preferences (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}
