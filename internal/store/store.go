package store

import (
	"github.com/rs/zerolog"

	"github.com/ytget/image-viewer/internal/logger"
	"github.com/ytget/image-viewer/internal/model"
)

// Store owns the ordered image list and the file that backs it
type Store struct {
	path   string
	images []model.Image
	log    zerolog.Logger
}

// New creates a store for path holding images. The file is not touched.
func New(path string, images []model.Image, log zerolog.Logger) *Store {
	if images == nil {
		images = make([]model.Image, 0)
	}
	return &Store{
		path:   path,
		images: images,
		log:    logger.Component(log, "store"),
	}
}

// Open loads the list from path
func Open(path string, log zerolog.Logger) (*Store, error) {
	images, err := Load(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to load image list")
		return nil, err
	}

	s := New(path, images, log)
	s.log.Info().Str("path", path).Int("count", len(images)).Msg("image list loaded")
	return s, nil
}

// Path returns the backing file path
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of records
func (s *Store) Len() int {
	return len(s.images)
}

// At returns the record at index
func (s *Store) At(index int) (model.Image, error) {
	if index < 0 || index >= len(s.images) {
		return model.Image{}, ErrIndexOutOfRange
	}
	return s.images[index], nil
}

// Images returns a copy of all records in order
func (s *Store) Images() []model.Image {
	out := make([]model.Image, len(s.images))
	copy(out, s.images)
	return out
}

// Insert places image at index
func (s *Store) Insert(image model.Image, index int) error {
	images, err := InsertAt(s.images, image, index)
	if err != nil {
		return err
	}
	s.images = images
	s.log.Debug().Str("url", image.URL).Int("index", index).Msg("image inserted")
	return nil
}

// Remove deletes the record at index
func (s *Store) Remove(index int) error {
	images, err := RemoveAt(s.images, index)
	if err != nil {
		return err
	}
	s.images = images
	s.log.Debug().Int("index", index).Int("count", len(images)).Msg("image removed")
	return nil
}

// Save writes the list back to the backing file
func (s *Store) Save() error {
	if err := Save(s.path, s.images); err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("failed to save image list")
		return err
	}
	s.log.Info().Str("path", s.path).Int("count", len(s.images)).Msg("image list saved")
	return nil
}
