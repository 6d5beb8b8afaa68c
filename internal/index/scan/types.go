package scan

import (
	"path/filepath"
	"strings"

	"github.com/llehouerou/iv/internal/media"
)

var mimeTypes = map[string]string{
	// Images
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
	".webp": "image/webp",
	".tiff": "image/tiff",
	".tif":  "image/tiff",
	".heic": "image/heic",
	".heif": "image/heif",

	// Videos
	".mp4":  "video/mp4",
	".m4v":  "video/x-m4v",
	".mov":  "video/quicktime",
	".3gp":  "video/3gpp",
	".mkv":  "video/x-matroska",
	".webm": "video/webm",
	".avi":  "video/x-msvideo",
	".mpeg": "video/mpeg",
	".mpg":  "video/mpeg",
	".ts":   "video/mp2t",
}

// isobmff containers carry a movie header go-mp4 can probe.
var isobmff = map[string]bool{
	".mp4": true,
	".m4v": true,
	".mov": true,
	".3gp": true,
}

// Classify returns the media kind and mime type for path, or ok=false when
// the extension is not a supported image or video format.
func Classify(path string) (kind media.Kind, mimeType string, ok bool) {
	ext := strings.ToLower(filepath.Ext(path))
	mimeType, ok = mimeTypes[ext]
	if !ok {
		return 0, "", false
	}
	if strings.HasPrefix(mimeType, "video/") {
		return media.KindVideo, mimeType, true
	}
	return media.KindImage, mimeType, true
}
