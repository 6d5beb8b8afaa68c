package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"

	dbutil "github.com/llehouerou/iv/internal/db"
	"github.com/llehouerou/iv/internal/media"
)

// Entry is a probed file ready to be catalogued.
type Entry struct {
	Path       string
	Kind       media.Kind
	MimeType   string
	Size       int64
	DateAdded  int64
	DurationMs int64
	Width      int
	Height     int
}

// Executor is the subset of *sql.DB and *sql.Tx used by the write helpers.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Existing returns path -> date_added for every record under root.
func (s *Store) Existing(ctx context.Context, root string) (map[string]int64, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT path, date_added FROM media`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int64)
	for rows.Next() {
		var path string
		var added int64
		if err := rows.Scan(&path, &added); err != nil {
			return nil, err
		}
		if underRoot(root, path) {
			out[path] = added
		}
	}
	return out, rows.Err()
}

// Replace writes entries and removes the rows of vanished paths in a single
// transaction.
func (s *Store) Replace(ctx context.Context, entries []Entry, vanished []string) error {
	return dbutil.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		for _, e := range entries {
			if err := Upsert(ctx, tx, e); err != nil {
				return err
			}
		}
		for _, p := range vanished {
			if _, err := tx.ExecContext(ctx, `DELETE FROM media WHERE path = ?`, p); err != nil {
				return err
			}
		}
		return pruneEmptyFolders(ctx, tx)
	})
}

// Upsert inserts or updates the row for e.Path, creating its folder when
// needed.
func Upsert(ctx context.Context, ex Executor, e Entry) error {
	folderID, err := upsertFolder(ctx, ex, filepath.Dir(e.Path))
	if err != nil {
		return err
	}
	_, err = ex.ExecContext(ctx, `
		INSERT INTO media (folder_id, path, kind, name, mime_type, size, date_added, duration_ms, width, height)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			folder_id = excluded.folder_id,
			kind = excluded.kind,
			name = excluded.name,
			mime_type = excluded.mime_type,
			size = excluded.size,
			date_added = excluded.date_added,
			duration_ms = excluded.duration_ms,
			width = excluded.width,
			height = excluded.height
	`, folderID, e.Path, int(e.Kind), filepath.Base(e.Path), e.MimeType, e.Size, e.DateAdded,
		nullIfZero(e.DurationMs), nullIfZero(int64(e.Width)), nullIfZero(int64(e.Height)))
	return err
}

func upsertFolder(ctx context.Context, ex Executor, dir string) (int64, error) {
	_, err := ex.ExecContext(ctx,
		`INSERT INTO folders (path, name) VALUES (?, ?) ON CONFLICT(path) DO NOTHING`,
		dir, filepath.Base(dir))
	if err != nil {
		return 0, err
	}
	var id int64
	err = ex.QueryRowContext(ctx, `SELECT id FROM folders WHERE path = ?`, dir).Scan(&id)
	return id, err
}

func pruneEmptyFolders(ctx context.Context, ex Executor) error {
	_, err := ex.ExecContext(ctx,
		`DELETE FROM folders WHERE id NOT IN (SELECT DISTINCT folder_id FROM media)`)
	return err
}

func nullIfZero(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: v != 0}
}

func underRoot(root, path string) bool {
	root = filepath.Clean(root)
	return path == root || strings.HasPrefix(path, root+string(filepath.Separator))
}
