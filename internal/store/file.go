package store

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/ytget/image-viewer/internal/model"
)

// File permissions
const (
	DefaultFilePermissions fs.FileMode = 0644
)

// Temporary file naming used while saving
const (
	TempFilePrefix = "."
	TempFileSuffix = ".tmp"
)

// Load reads all records from the file at path
func Load(path string) ([]model.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Op: "load", Path: path, Err: err}
	}
	defer f.Close()

	// Lines are read whole; Save places no cap on their length
	images := make([]model.Image, 0)
	reader := bufio.NewReader(f)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, &FileAccessError{Op: "load", Path: path, Err: err}
		}
		if image, ok := ParseLine(line); ok {
			images = append(images, image)
		}
		if err != nil {
			break
		}
	}

	return images, nil
}

// Save overwrites the file at path with one line per record.
// Data is written to a temporary sibling first and renamed into place,
// so the previous contents survive a failed write.
func Save(path string, images []model.Image) error {
	if err := writeAtomic(path, images); err != nil {
		return &FileAccessError{Op: "save", Path: path, Err: err}
	}
	return nil
}

func writeAtomic(path string, images []model.Image) error {
	perm := DefaultFilePermissions
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	tmpPath, err := tempPath(path)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}

	if err := writeLines(f, images); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

func writeLines(f *os.File, images []model.Image) error {
	w := bufio.NewWriter(f)
	for _, image := range images {
		if _, err := w.WriteString(FormatLine(image) + "\n"); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Sync()
}

// tempPath returns a unique hidden sibling of path
func tempPath(path string) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate temp file name: %w", err)
	}
	dir, base := filepath.Split(path)
	return filepath.Join(dir, TempFilePrefix+base+"."+id.String()+TempFileSuffix), nil
}

// InsertAt inserts image at index; index equal to the length appends
func InsertAt(images []model.Image, image model.Image, index int) ([]model.Image, error) {
	if index < 0 || index > len(images) {
		return images, fmt.Errorf("insert at %d of %d: %w", index, len(images), ErrIndexOutOfRange)
	}
	if index == len(images) {
		return append(images, image), nil
	}

	images = append(images, model.Image{})
	copy(images[index+1:], images[index:])
	images[index] = image
	return images, nil
}

// RemoveAt removes the record at index
func RemoveAt(images []model.Image, index int) ([]model.Image, error) {
	if index < 0 || index >= len(images) {
		return images, fmt.Errorf("remove at %d of %d: %w", index, len(images), ErrIndexOutOfRange)
	}
	return append(images[:index], images[index+1:]...), nil
}
