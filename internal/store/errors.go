package store

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when a positional operation falls outside the list
var ErrIndexOutOfRange = errors.New("index out of range")

// FileAccessError reports that the backing file could not be read or written
type FileAccessError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// IsFileAccess reports whether err is a FileAccessError
func IsFileAccess(err error) bool {
	var target *FileAccessError
	return errors.As(err, &target)
}
