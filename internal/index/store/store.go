// Package store is the sqlite catalog behind the media index.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	dbutil "github.com/llehouerou/iv/internal/db"
	"github.com/llehouerou/iv/internal/index"
	"github.com/llehouerou/iv/internal/logging"
	"github.com/llehouerou/iv/internal/media"
)

// Store answers index queries from the catalog database.
type Store struct {
	db          *sql.DB
	deleteFiles bool
	logger      logging.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithFileRemoval makes committed deletions remove the files from disk too.
func WithFileRemoval(enabled bool) Option {
	return func(s *Store) { s.deleteFiles = enabled }
}

// WithLogger sets the logger used for non-fatal failures.
func WithLogger(l logging.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// Open opens the catalog at path, creating the schema when needed.
func Open(path string, opts ...Option) (*Store, error) {
	db, err := dbutil.Open(path)
	if err != nil {
		return nil, err
	}
	s, err := New(db, opts...)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an open database.
func New(db *sql.DB, opts ...Option) (*Store, error) {
	if err := initSchema(db); err != nil {
		return nil, fmt.Errorf("init catalog schema: %w", err)
	}
	s := &Store{db: db, logger: logging.Nop{}}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) DB() *sql.DB {
	return s.db
}

// QueryFolders returns one row per record admitted by filter, newest first.
func (s *Store) QueryFolders(ctx context.Context, filter media.TypeFilter) ([]index.FolderRow, error) {
	where, args := kindClause(filter)
	rows, err := s.db.QueryContext(ctx, `
		SELECT m.folder_id, f.name, m.id, m.kind
		FROM media m
		JOIN folders f ON f.id = m.folder_id
		WHERE `+where+`
		ORDER BY m.date_added DESC, m.id DESC
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []index.FolderRow
	for rows.Next() {
		var r index.FolderRow
		if err := rows.Scan(&r.FolderID, &r.FolderName, &r.ItemID, &r.Kind); err != nil {
			return nil, err
		}
		r.URI = URI(r.Kind, r.ItemID)
		out = append(out, r)
	}
	return out, rows.Err()
}

// QueryItems returns the records of folderID (all folders when nil) admitted
// by filter, newest first.
func (s *Store) QueryItems(ctx context.Context, folderID *int64, filter media.TypeFilter) ([]index.ItemRow, error) {
	where, args := kindClause(filter)
	if folderID != nil {
		where += " AND m.folder_id = ?"
		args = append(args, *folderID)
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT m.id, m.size, m.date_added, m.duration_ms, m.name, m.mime_type,
		       m.width, m.height, m.folder_id, f.name, m.kind
		FROM media m
		JOIN folders f ON f.id = m.folder_id
		WHERE `+where+`
		ORDER BY m.date_added DESC, m.id DESC
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []index.ItemRow
	for rows.Next() {
		var r index.ItemRow
		var duration, width, height sql.NullInt64
		err := rows.Scan(&r.ID, &r.Size, &r.DateAdded, &duration, &r.Name, &r.MimeType,
			&width, &height, &r.FolderID, &r.FolderName, &r.Kind)
		if err != nil {
			return nil, err
		}
		r.DurationMs = dbutil.NullInt64Value(duration)
		r.Width = int(dbutil.NullInt64Value(width))
		r.Height = int(dbutil.NullInt64Value(height))
		r.URI = URI(r.Kind, r.ID)
		out = append(out, r)
	}
	return out, rows.Err()
}

// CreateDeletionRequest validates uris and returns an uncommitted request.
func (s *Store) CreateDeletionRequest(ctx context.Context, uris []string) (index.DeletionRequest, error) {
	ids := make([]int64, 0, len(uris))
	for _, uri := range uris {
		kind, id, err := ParseURI(uri)
		if err != nil {
			return nil, err
		}
		var stored media.Kind
		err = s.db.QueryRowContext(ctx, `SELECT kind FROM media WHERE id = ?`, id).Scan(&stored)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", index.ErrUnknownURI, uri)
		}
		if err != nil {
			return nil, fmt.Errorf("looking up %s: %w", uri, err)
		}
		if stored != kind {
			return nil, fmt.Errorf("%w: %s", index.ErrUnknownURI, uri)
		}
		ids = append(ids, id)
	}
	return &deletionRequest{store: s, uris: append([]string(nil), uris...), ids: ids}, nil
}

// Duration returns the recorded length of the video behind uri.
func (s *Store) Duration(ctx context.Context, uri string) (time.Duration, error) {
	kind, id, err := ParseURI(uri)
	if err != nil {
		return 0, err
	}
	if kind != media.KindVideo {
		return 0, fmt.Errorf("%s is not a video", uri)
	}
	var ms sql.NullInt64
	err = s.db.QueryRowContext(ctx, `SELECT duration_ms FROM media WHERE id = ? AND kind = ?`, id, int(kind)).Scan(&ms)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: %s", index.ErrUnknownURI, uri)
	}
	if err != nil {
		return 0, err
	}
	return time.Duration(dbutil.NullInt64Value(ms)) * time.Millisecond, nil
}

// Count returns the number of catalogued records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM media`).Scan(&n)
	return n, err
}

func kindClause(filter media.TypeFilter) (string, []any) {
	kinds := filter.Kinds()
	args := make([]any, len(kinds))
	for i, k := range kinds {
		args[i] = int(k)
	}
	return "m.kind IN (" + dbutil.Placeholders(len(kinds)) + ")", args
}

// Verify Store implements index.Index at compile time.
var _ index.Index = (*Store)(nil)
