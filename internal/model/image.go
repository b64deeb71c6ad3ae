package model

import (
	"strings"
)

// Placeholder values shown when there are no images to display
const (
	PlaceholderURL   = "http://www.xn--flawiler-fachgeschfte-n2b.ch/wp-content/uploads/2016/09/sample-image.jpg"
	PlaceholderTitle = "No Image"
)

// Image represents a single viewable image
type Image struct {
	URL   string
	Title string
}

// NewImage creates a new image record
func NewImage(url, title string) Image {
	return Image{URL: url, Title: title}
}

// Placeholder returns the sentinel record rendered when no images exist
func Placeholder() Image {
	return Image{URL: PlaceholderURL, Title: PlaceholderTitle}
}

// IsPlaceholder reports whether the image is the empty-list sentinel
func (i Image) IsPlaceholder() bool {
	return i == Placeholder()
}

// GetDisplayTitle returns title, or URL if the title is blank
func (i Image) GetDisplayTitle() string {
	if title := strings.TrimSpace(i.Title); title != "" {
		return title
	}
	return i.URL
}

// NormalizeTitle collapses runs of whitespace into single spaces and trims the ends.
// Titles in this form survive a save/load cycle unchanged.
func NormalizeTitle(title string) string {
	return strings.Join(strings.Fields(title), " ")
}
