// Package scan walks library roots and catalogues their images and videos.
package scan

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/llehouerou/iv/internal/index/store"
	"github.com/llehouerou/iv/internal/logging"
	"github.com/llehouerou/iv/internal/media"
)

const numWorkers = 8

// Phase names reported in Progress.
const (
	PhaseDiscovering = "discovering"
	PhaseProbing     = "probing"
	PhaseWriting     = "writing"
	PhaseDone        = "done"
)

// Progress reports the progress of a scan.
type Progress struct {
	Phase       string
	Root        string
	Current     int
	Total       int
	CurrentFile string
	Stats       *Stats // only populated when Phase == PhaseDone
}

// Stats holds counters for a completed scan.
type Stats struct {
	Added   int
	Updated int
	Removed int
	Failed  int
}

// candidate is a discovered media file.
type candidate struct {
	path  string
	kind  media.Kind
	mime  string
	size  int64
	mtime int64
	isNew bool
}

// Scanner catalogues media files into a store.
type Scanner struct {
	store  *store.Store
	logger logging.Logger
}

// New creates a scanner writing to s.
func New(s *store.Store, logger logging.Logger) *Scanner {
	if logger == nil {
		logger = logging.Nop{}
	}
	return &Scanner{store: s, logger: logger}
}

// Run scans every root in turn. Unchanged files (same mtime) are skipped and
// rows of files no longer on disk are removed. progress is closed on return.
func (s *Scanner) Run(ctx context.Context, roots []string, progress chan<- Progress) (*Stats, error) {
	defer close(progress)

	stats := &Stats{}
	for _, root := range roots {
		if err := s.scanRoot(ctx, root, stats, progress); err != nil {
			return stats, err
		}
	}
	progress <- Progress{Phase: PhaseDone, Stats: stats}
	return stats, nil
}

func (s *Scanner) scanRoot(ctx context.Context, root string, stats *Stats, progress chan<- Progress) error {
	root = filepath.Clean(root)
	progress <- Progress{Phase: PhaseDiscovering, Root: root}
	found := discover(ctx, root, progress)
	if err := ctx.Err(); err != nil {
		return err
	}

	existing, err := s.store.Existing(ctx, root)
	if err != nil {
		return err
	}

	var todo []candidate
	for _, c := range found {
		added, ok := existing[c.path]
		if ok && added == c.mtime {
			continue
		}
		c.isNew = !ok
		todo = append(todo, c)
	}

	var vanished []string
	seen := make(map[string]bool, len(found))
	for _, c := range found {
		seen[c.path] = true
	}
	for path := range existing {
		if !seen[path] {
			vanished = append(vanished, path)
		}
	}

	entries := s.probeAll(ctx, root, todo, stats, progress)
	if err := ctx.Err(); err != nil {
		return err
	}

	progress <- Progress{Phase: PhaseWriting, Root: root, Total: len(entries) + len(vanished)}
	if err := s.store.Replace(ctx, entries, vanished); err != nil {
		return err
	}
	stats.Removed += len(vanished)
	s.logger.Info("scanned library root", "root", root, "files", len(found),
		"written", len(entries), "removed", len(vanished))
	return nil
}

// probeAll probes candidates in parallel.
func (s *Scanner) probeAll(
	ctx context.Context,
	root string,
	todo []candidate,
	stats *Stats,
	progress chan<- Progress,
) []store.Entry {
	total := len(todo)
	if total == 0 {
		return nil
	}
	var processed atomic.Int64

	workCh := make(chan candidate, total)
	type result struct {
		entry store.Entry
		isNew bool
		err   error
	}
	resultCh := make(chan result, total)

	var wg sync.WaitGroup
	for range numWorkers {
		wg.Go(func() {
			for c := range workCh {
				if ctx.Err() != nil {
					processed.Add(1)
					continue
				}
				p, err := probe(c.path, c.kind)
				resultCh <- result{
					entry: store.Entry{
						Path:       c.path,
						Kind:       c.kind,
						MimeType:   c.mime,
						Size:       c.size,
						DateAdded:  c.mtime,
						DurationMs: p.durationMs,
						Width:      p.width,
						Height:     p.height,
					},
					isNew: c.isNew,
					err:   err,
				}
				processed.Add(1)
			}
		})
	}

	for _, c := range todo {
		workCh <- c
	}
	close(workCh)

	done := make(chan struct{})
	var reporter sync.WaitGroup
	reporter.Go(func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				progress <- Progress{
					Phase:   PhaseProbing,
					Root:    root,
					Current: int(processed.Load()),
					Total:   total,
				}
			case <-done:
				return
			}
		}
	})

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	entries := make([]store.Entry, 0, total)
	for r := range resultCh {
		if r.err != nil {
			// Still catalogued, without dimensions.
			s.logger.Debug("probe failed", "path", r.entry.Path, "err", r.err)
			stats.Failed++
		}
		if r.isNew {
			stats.Added++
		} else {
			stats.Updated++
		}
		entries = append(entries, r.entry)
	}

	close(done)
	reporter.Wait()
	progress <- Progress{Phase: PhaseProbing, Root: root, Current: total, Total: total}
	return entries
}

// discover walks root and returns the supported media files found.
func discover(ctx context.Context, root string, progress chan<- Progress) []candidate {
	var found []candidate
	_ = filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		// Skip unreadable entries and keep walking.
		if walkErr != nil {
			return nil //nolint:nilerr // intentionally skipping errors
		}
		if d.IsDir() {
			if path != root && len(d.Name()) > 1 && d.Name()[0] == '.' {
				return filepath.SkipDir
			}
			return nil
		}
		kind, mime, ok := Classify(path)
		if !ok {
			return nil
		}
		info, infoErr := d.Info()
		if infoErr != nil {
			return nil //nolint:nilerr // intentionally skipping errors
		}

		found = append(found, candidate{
			path:  path,
			kind:  kind,
			mime:  mime,
			size:  info.Size(),
			mtime: info.ModTime().Unix(),
		})
		if len(found)%100 == 0 {
			progress <- Progress{Phase: PhaseDiscovering, Root: root, Current: len(found), CurrentFile: path}
		}
		return nil
	})
	return found
}
