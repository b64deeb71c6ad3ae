package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	AppIcon = "image-viewer.png"
)

// LoadAppIcon loads the window icon from file path, falling back to the theme's media photo icon
func LoadAppIcon() fyne.Resource {
	icon, err := fyne.LoadResourceFromPath(AppIcon)
	if err != nil {
		return theme.MediaPhotoIcon()
	}
	return icon
}
