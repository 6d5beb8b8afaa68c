package index

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/llehouerou/iv/internal/logging"
	"github.com/llehouerou/iv/internal/media"
)

var errNoURIs = errors.New("no uris to delete")

// Client is the MediaIndexClient: it queries the index and shapes the results.
type Client struct {
	index  Index
	logger logging.Logger
}

// NewClient wraps an index.
func NewClient(idx Index, logger logging.Logger) *Client {
	if logger == nil {
		logger = logging.Nop{}
	}
	return &Client{index: idx, logger: logger}
}

// ListFolders returns the folders holding media under filter, most recently
// updated first. A failed or empty query yields an empty list.
func (c *Client) ListFolders(ctx context.Context, filter media.TypeFilter) []media.Folder {
	rows, err := c.index.QueryFolders(ctx, filter)
	if err != nil {
		c.queryFailed("folders", filter.String(), err)
		return nil
	}

	records := make([]media.Record, 0, len(rows))
	for _, row := range rows {
		if err := checkRow(row.URI, row.Kind, filter); err != nil {
			c.queryFailed("folders", filter.String(), fmt.Errorf("item %d: %w", row.ItemID, err))
			return nil
		}
		records = append(records, media.Record{
			ID:         row.ItemID,
			URI:        row.URI,
			Kind:       row.Kind,
			FolderID:   row.FolderID,
			FolderName: row.FolderName,
		})
	}
	return media.Aggregate(records)
}

// ListItems returns the records of scope, newest first. A failed query
// yields an empty list.
func (c *Client) ListItems(ctx context.Context, scope Scope) []media.Record {
	rows, err := c.index.QueryItems(ctx, scope.Folder, scope.Filter)
	if err != nil {
		c.queryFailed("items", scope.String(), err)
		return nil
	}

	records := make([]media.Record, 0, len(rows))
	for _, row := range rows {
		if err := checkRow(row.URI, row.Kind, scope.Filter); err != nil {
			c.queryFailed("items", scope.String(), fmt.Errorf("item %d: %w", row.ID, err))
			return nil
		}
		if scope.Folder != nil && row.FolderID != *scope.Folder {
			c.queryFailed("items", scope.String(), fmt.Errorf("item %d belongs to folder %d", row.ID, row.FolderID))
			return nil
		}
		var duration time.Duration
		if row.Kind == media.KindVideo {
			duration = time.Duration(row.DurationMs) * time.Millisecond
		}
		records = append(records, media.Record{
			ID:         row.ID,
			Size:       row.Size,
			DateAdded:  row.DateAdded,
			Duration:   duration,
			Name:       row.Name,
			MimeType:   row.MimeType,
			URI:        row.URI,
			Width:      row.Width,
			Height:     row.Height,
			FolderID:   row.FolderID,
			FolderName: row.FolderName,
			Kind:       row.Kind,
		})
	}
	return records
}

// RequestDeletion builds one capability covering every uri, so the host asks
// for a single confirmation.
func (c *Client) RequestDeletion(ctx context.Context, uris []string) (DeletionRequest, error) {
	if len(uris) == 0 {
		return nil, errNoURIs
	}
	req, err := c.index.CreateDeletionRequest(ctx, uris)
	if err != nil {
		c.logger.Warn("deletion request refused", "count", len(uris), "err", err)
		return nil, err
	}
	return req, nil
}

func (c *Client) queryFailed(what, scope string, err error) {
	if errors.Is(err, context.Canceled) {
		c.logger.Debug("query canceled", "query", what, "scope", scope)
		return
	}
	c.logger.Warn("query failed", "query", what, "scope", scope, "err", err)
}

func checkRow(uri string, kind media.Kind, filter media.TypeFilter) error {
	if uri == "" {
		return errors.New("missing uri")
	}
	if kind != media.KindImage && kind != media.KindVideo {
		return fmt.Errorf("unexpected media kind %d", kind)
	}
	if !filter.Matches(kind) {
		return fmt.Errorf("%s row outside %s filter", kind, filter)
	}
	return nil
}
