package scan

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	// Image format decoders
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/abema/go-mp4"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/llehouerou/iv/internal/media"
)

type probeResult struct {
	width      int
	height     int
	durationMs int64
}

// probe reads the dimensions (and duration for videos) of path.
// Formats without a decoder report zero values without error.
func probe(path string, kind media.Kind) (probeResult, error) {
	if kind == media.KindVideo {
		if !isobmff[strings.ToLower(filepath.Ext(path))] {
			return probeResult{}, nil
		}
		return probeVideo(path)
	}
	return probeImage(path)
}

func probeImage(path string) (probeResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return probeResult{}, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return probeResult{}, nil
		}
		return probeResult{}, fmt.Errorf("decode image header: %w", err)
	}
	return probeResult{width: cfg.Width, height: cfg.Height}, nil
}

func probeVideo(path string) (probeResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return probeResult{}, err
	}
	defer f.Close()

	info, err := mp4.Probe(f)
	if err != nil {
		return probeResult{}, fmt.Errorf("probe mp4: %w", err)
	}

	var res probeResult
	if info.Timescale > 0 {
		res.durationMs = int64(info.Duration * 1000 / uint64(info.Timescale))
	}
	for _, track := range info.Tracks {
		if track.AVC != nil {
			res.width = int(track.AVC.Width)
			res.height = int(track.AVC.Height)
			break
		}
	}
	return res, nil
}
