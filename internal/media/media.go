// Package media defines the records, folders and type filters shared by the
// gallery screens.
package media

import (
	"fmt"
	"strings"
	"time"
)

// Kind is the media type of a record as reported by the index.
type Kind int

const (
	KindImage Kind = iota + 1
	KindVideo
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindVideo:
		return "video"
	default:
		return "unknown"
	}
}

// Record is one image or video entry. Records are immutable: a change in the
// index is observed by querying again, never by editing a record in place.
type Record struct {
	ID         int64
	Size       int64
	DateAdded  int64         // unix seconds
	Duration   time.Duration // zero for images
	Name       string
	MimeType   string
	URI        string
	Width      int
	Height     int
	FolderID   int64
	FolderName string
	Kind       Kind
}

// IsVideo reports whether the record should be played rather than displayed.
func (r Record) IsVideo() bool {
	return r.Kind == KindVideo || strings.HasPrefix(r.MimeType, "video/")
}

// Folder is an aggregate over the records sharing a folder id.
type Folder struct {
	ID           int64
	Name         string
	ThumbnailURI string
	Count        int
}

// TypeFilter restricts queries to images, videos or both.
type TypeFilter int

const (
	FilterAll TypeFilter = iota
	FilterImage
	FilterVideo
)

func (f TypeFilter) String() string {
	switch f {
	case FilterImage:
		return "image"
	case FilterVideo:
		return "video"
	default:
		return "all"
	}
}

// Label returns the filter name for display.
func (f TypeFilter) Label() string {
	switch f {
	case FilterImage:
		return "Images"
	case FilterVideo:
		return "Videos"
	default:
		return "All"
	}
}

// ParseTypeFilter parses the persisted form of a filter.
func ParseTypeFilter(s string) (TypeFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return FilterAll, nil
	case "image", "images":
		return FilterImage, nil
	case "video", "videos":
		return FilterVideo, nil
	}
	return FilterAll, fmt.Errorf("unknown type filter %q", s)
}

// Next cycles ALL -> IMAGE -> VIDEO -> ALL.
func (f TypeFilter) Next() TypeFilter {
	switch f {
	case FilterAll:
		return FilterImage
	case FilterImage:
		return FilterVideo
	default:
		return FilterAll
	}
}

// Kinds returns the media kinds admitted by the filter.
func (f TypeFilter) Kinds() []Kind {
	switch f {
	case FilterImage:
		return []Kind{KindImage}
	case FilterVideo:
		return []Kind{KindVideo}
	default:
		return []Kind{KindImage, KindVideo}
	}
}

// Matches reports whether a record of kind k passes the filter.
func (f TypeFilter) Matches(k Kind) bool {
	for _, kind := range f.Kinds() {
		if kind == k {
			return true
		}
	}
	return false
}
