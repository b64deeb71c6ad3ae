package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ColorNameBackdrop is the colour painted behind the displayed image
const ColorNameBackdrop fyne.ThemeColorName = "viewerBackdrop"

var (
	// Backdrops are neutral greys in both variants
	backdropDark  = color.NRGBA{R: 18, G: 18, B: 18, A: 255}
	backdropLight = color.NRGBA{R: 56, G: 56, B: 56, A: 255}

	accent = color.NRGBA{R: 0, G: 137, B: 123, A: 255}
)

// ViewerTheme wraps the default theme with a neutral frame around the image
type ViewerTheme struct {
	fyne.Theme
}

// NewViewerTheme creates the viewer theme on top of the Fyne default
func NewViewerTheme() fyne.Theme {
	return &ViewerTheme{Theme: theme.DefaultTheme()}
}

// Color adds the backdrop colour and swaps the accent; other names fall through
func (t *ViewerTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case ColorNameBackdrop:
		if variant == theme.VariantLight {
			return backdropLight
		}
		return backdropDark
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return accent
	case theme.ColorNameSelection:
		return color.NRGBA{R: accent.R, G: accent.G, B: accent.B, A: 64}
	}

	return t.Theme.Color(name, variant)
}

// Size enlarges the heading used for image titles and thins the separators
func (t *ViewerTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameHeadingText:
		return TitleTextSize
	case theme.SizeNameSeparatorThickness:
		return 0.5
	}

	return t.Theme.Size(name)
}
