package model

// Package model defines the domain values shared across the app: the image
// record shown in the viewer and the placeholder displayed when the list is
// empty. Records are plain values with no identity beyond list position.
