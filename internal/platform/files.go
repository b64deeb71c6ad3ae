package platform

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// Default data file location, relative to the working directory
const (
	DataDirName  = "data"
	DataFileName = "images.data"
)

// URL schemes accepted for image records
var (
	SupportedSchemes = []string{"http", "https", "file"}
)

// DefaultDataFile returns the default image list path
func DefaultDataFile() string {
	return filepath.Join(DataDirName, DataFileName)
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// CreateFileIfNotExists creates an empty file, including parent directories.
// It reports whether a new file was created.
func CreateFileIfNotExists(filePath string) (bool, error) {
	if _, err := os.Stat(filePath); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to stat %s: %w", filePath, err)
	}

	if err := CreateDirectoryIfNotExists(filepath.Dir(filePath)); err != nil {
		return false, fmt.Errorf("failed to create directory for %s: %w", filePath, err)
	}

	f, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, DefaultFilePermissions)
	if err != nil {
		return false, fmt.Errorf("failed to create %s: %w", filePath, err)
	}
	return true, f.Close()
}

// ValidateImageURL checks that a record URL can be stored and displayed.
// The file format separates fields by whitespace, so URLs must not contain any.
func ValidateImageURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("URL is empty")
	}

	if strings.IndexFunc(input, isSpace) >= 0 {
		return fmt.Errorf("URL must not contain whitespace")
	}

	parsedURL, err := url.Parse(input)
	if err != nil {
		return err
	}

	for _, scheme := range SupportedSchemes {
		if parsedURL.Scheme == scheme {
			return nil
		}
	}

	return fmt.Errorf("URL must start with http://, https:// or file://")
}

// ParseImageURI converts a record URL into a Fyne URI for canvas images
func ParseImageURI(rawURL string) (fyne.URI, error) {
	uri, err := storage.ParseURI(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse image URI %q: %w", rawURL, err)
	}
	return uri, nil
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f'
}
