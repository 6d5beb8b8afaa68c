package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/llehouerou/iv/internal/index"
	"github.com/llehouerou/iv/internal/media"
)

const uriScheme = "media://"

// URI returns the content uri of a catalog row.
func URI(kind media.Kind, id int64) string {
	return fmt.Sprintf("%s%s/%d", uriScheme, kind, id)
}

// ParseURI splits a content uri into its kind and row id.
func ParseURI(uri string) (media.Kind, int64, error) {
	rest, ok := strings.CutPrefix(uri, uriScheme)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", index.ErrUnknownURI, uri)
	}
	kindPart, idPart, ok := strings.Cut(rest, "/")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", index.ErrUnknownURI, uri)
	}

	var kind media.Kind
	switch kindPart {
	case media.KindImage.String():
		kind = media.KindImage
	case media.KindVideo.String():
		kind = media.KindVideo
	default:
		return 0, 0, fmt.Errorf("%w: %q", index.ErrUnknownURI, uri)
	}

	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || id <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", index.ErrUnknownURI, uri)
	}
	return kind, id, nil
}
