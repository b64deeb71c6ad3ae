package store

// Package store persists the ordered image list in a flat text file, one
// "<url> <title>" record per line, and provides the positional insert and
// remove operations the viewer cursor relies on.
