package store

import (
	"strings"

	"github.com/ytget/image-viewer/internal/model"
)

// ParseLine decodes a single record line. The first whitespace-separated token
// is the URL, the remaining tokens joined with single spaces form the title.
// ok is false for blank lines.
func ParseLine(line string) (image model.Image, ok bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return model.Image{}, false
	}
	return model.NewImage(fields[0], strings.Join(fields[1:], " ")), true
}

// FormatLine encodes a record as "<url> <title>" without the trailing newline
func FormatLine(image model.Image) string {
	return image.URL + " " + image.Title
}
