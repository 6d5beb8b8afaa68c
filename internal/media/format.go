package media

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// midpointFrame is the sampling hint handed to the thumbnail pipeline for
// videos.
const midpointFrame = 0.5

// millisThreshold separates second and millisecond timestamps.
const millisThreshold = 1_000_000_000_000

// FormatSize renders a byte count for the info panel.
func FormatSize(size int64) string {
	if size <= 0 {
		return "0 B"
	}
	return humanize.IBytes(uint64(size)) //nolint:gosec // size is positive above
}

// FormatDate renders a date-added value. Both second and millisecond
// timestamps are accepted.
func FormatDate(dateAdded int64) string {
	var t time.Time
	if dateAdded < millisThreshold {
		t = time.Unix(dateAdded, 0)
	} else {
		t = time.UnixMilli(dateAdded)
	}
	return t.Format("Jan 2, 2006")
}

// FormatDuration renders mm:ss, or h:mm:ss for an hour and above.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	h := total / 3600
	m := (total / 60) % 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// Thumbnail is a request for the external thumbnail pipeline.
type Thumbnail struct {
	URI string
	// FrameFraction is where to sample a video frame, 0 for still images.
	FrameFraction float64
}

// ThumbnailHint returns the thumbnail request for a record.
func ThumbnailHint(r Record) Thumbnail {
	t := Thumbnail{URI: r.URI}
	if r.IsVideo() {
		t.FrameFraction = midpointFrame
	}
	return t
}

// Detail is one labelled line of the info panel.
type Detail struct {
	Label string
	Value string
}

// Details returns the info panel lines for a record.
func Details(r Record) []Detail {
	details := []Detail{
		{Label: "Filename/type", Value: r.Name},
		{Label: "Resolution", Value: fmt.Sprintf("%dx%d", r.Width, r.Height)},
		{Label: "File size", Value: FormatSize(r.Size)},
		{Label: "Date added", Value: FormatDate(r.DateAdded)},
	}
	if r.IsVideo() {
		details = append(details, Detail{Label: "Length", Value: FormatDuration(r.Duration)})
	}
	return details
}
