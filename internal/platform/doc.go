package platform

// Package platform contains OS and filesystem glue: where the image list lives
// by default, directory and file creation, and turning record URLs into
// Fyne URIs for display.
