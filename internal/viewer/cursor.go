package viewer

import (
	"fmt"

	"github.com/ytget/image-viewer/internal/model"
	"github.com/ytget/image-viewer/internal/store"
)

// Cursor tracks the displayed position within a store.
// When empty is true, position is 0 and the store holds no images.
type Cursor struct {
	store    *store.Store
	position int
	empty    bool
}

// NewCursor creates a cursor positioned at the first image
func NewCursor(s *store.Store) *Cursor {
	return &Cursor{
		store: s,
		empty: s.Len() == 0,
	}
}

// Position returns the current index
func (c *Cursor) Position() int {
	return c.position
}

// IsEmpty reports whether there are no images to show
func (c *Cursor) IsEmpty() bool {
	return c.empty
}

// Len returns the number of images
func (c *Cursor) Len() int {
	return c.store.Len()
}

// Current returns the image at the cursor, or the placeholder when empty
func (c *Cursor) Current() model.Image {
	if c.empty {
		return model.Placeholder()
	}
	return c.at(c.position)
}

// Next advances to the following image, wrapping from the last to the first
func (c *Cursor) Next() model.Image {
	if c.empty {
		return model.Placeholder()
	}

	if c.position == c.store.Len()-1 {
		c.position = 0
	} else {
		c.position++
	}
	return c.at(c.position)
}

// Previous moves to the preceding image, wrapping from the first to the last
func (c *Cursor) Previous() model.Image {
	if c.empty {
		return model.Placeholder()
	}

	if c.position == 0 {
		c.position = c.store.Len() - 1
	} else {
		c.position--
	}
	return c.at(c.position)
}

// Add inserts a new image right after the current one and moves onto it.
// Into an empty list the image is placed at position 0. Whitespace in the
// title is collapsed so the record reloads unchanged.
func (c *Cursor) Add(url, title string) model.Image {
	image := model.NewImage(url, model.NormalizeTitle(title))
	if !c.empty {
		c.position++
	}
	c.must(c.store.Insert(image, c.position))
	c.empty = false
	return c.at(c.position)
}

// Delete removes the current image. The cursor stays on the same index, which
// now holds the following image, or wraps to 0 if the last image was removed.
// Deleting the only image leaves the cursor empty and returns the placeholder.
func (c *Cursor) Delete() model.Image {
	if c.empty {
		return model.Placeholder()
	}

	c.must(c.store.Remove(c.position))
	if c.store.Len() == 0 {
		c.position = 0
		c.empty = true
		return model.Placeholder()
	}

	if c.position == c.store.Len() {
		c.position = 0
	}
	return c.at(c.position)
}

// Save persists the list through the underlying store
func (c *Cursor) Save() error {
	return c.store.Save()
}

func (c *Cursor) at(index int) model.Image {
	image, err := c.store.At(index)
	c.must(err)
	return image
}

// must panics on store errors; they can only come from a broken cursor invariant
func (c *Cursor) must(err error) {
	if err != nil {
		panic(fmt.Sprintf("viewer: cursor at %d of %d: %v", c.position, c.store.Len(), err))
	}
}
