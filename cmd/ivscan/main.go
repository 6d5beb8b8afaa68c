// ivscan catalogues the configured library roots into the media index.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/iv/internal/config"
	"github.com/llehouerou/iv/internal/errmsg"
	"github.com/llehouerou/iv/internal/index/scan"
	"github.com/llehouerou/iv/internal/index/store"
	"github.com/llehouerou/iv/internal/logging"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: ivscan [root ...]\n\n")
		fmt.Fprintf(os.Stderr, "Scans the given roots, or library_roots from the config file.\n")
	}
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = run(ctx, cfg, flag.Args(), os.Stderr)
	stop()
	if err != nil {
		log.Fatal(err)
	}
}

// run scans roots, or the configured library roots when none are given.
// Progress and the final summary are written to out. The index is closed
// before run returns.
func run(ctx context.Context, cfg *config.Config, roots []string, out io.Writer) error {
	if len(roots) == 0 {
		roots = cfg.LibraryRoots
	}
	if len(roots) == 0 {
		return errors.New("no library roots configured")
	}
	logger := log.New(out, "", log.LstdFlags)

	indexPath, err := cfg.IndexFile()
	if err != nil {
		return fmt.Errorf("resolving index path: %w", err)
	}
	s, err := store.Open(indexPath)
	if err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpIndexOpen, indexPath, err))
	}
	defer s.Close()

	progress := make(chan scan.Progress)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for p := range progress {
			switch p.Phase {
			case scan.PhaseDiscovering:
				if p.Current > 0 {
					logger.Printf("%s: %s files found", p.Root, humanize.Comma(int64(p.Current)))
				}
			case scan.PhaseProbing:
				logger.Printf("%s: probed %d/%d", p.Root, p.Current, p.Total)
			case scan.PhaseWriting:
				logger.Printf("%s: writing %d changes", p.Root, p.Total)
			}
		}
	}()

	scanner := scan.New(s, logging.New(out, cfg.Level()))
	stats, err := scanner.Run(ctx, roots, progress)
	<-done
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpIndexScan, err))
	}

	n, err := s.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting records: %w", err)
	}
	logger.Printf("Scan complete: %d added, %d updated, %d removed, %d unreadable; %s records in %s",
		stats.Added, stats.Updated, stats.Removed, stats.Failed, humanize.Comma(int64(n)), indexPath)
	return nil
}
