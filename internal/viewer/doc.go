package viewer

// Package viewer implements the navigation cursor over the image store:
// wraparound next/previous, insert-after-current add, delete with wrap to the
// first image, and the "No Image" placeholder for an empty list.
