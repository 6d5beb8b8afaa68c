package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"slices"

	dbutil "github.com/llehouerou/iv/internal/db"
)

type deletionRequest struct {
	store *Store
	uris  []string
	ids   []int64
}

func (r *deletionRequest) URIs() []string { return slices.Clone(r.uris) }

// Commit removes every row in one transaction. Files are removed afterwards
// when the store was opened with file removal; failures there are logged.
func (r *deletionRequest) Commit(ctx context.Context) error {
	s := r.store
	if len(r.ids) == 0 {
		return nil
	}
	var paths []string

	err := dbutil.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		in, args := idArgs(r.ids)
		rows, err := tx.QueryContext(ctx, `SELECT path FROM media WHERE id IN (`+in+`)`, args...)
		if err != nil {
			return err
		}
		for rows.Next() {
			var p string
			if err := rows.Scan(&p); err != nil {
				rows.Close()
				return err
			}
			paths = append(paths, p)
		}
		if err := rows.Close(); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM media WHERE id IN (`+in+`)`, args...); err != nil {
			return err
		}
		return pruneEmptyFolders(ctx, tx)
	})
	if err != nil {
		return err
	}

	if !s.deleteFiles {
		return nil
	}
	for _, p := range paths {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("remove media file", "path", p, "err", err)
		}
	}
	return nil
}

func idArgs(ids []int64) (string, []any) {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return dbutil.Placeholders(len(ids)), args
}
