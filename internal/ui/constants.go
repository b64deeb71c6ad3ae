package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (symbols)
const (
	IconSettings = "⚙"
	IconPrevious = "◀"
	IconNext     = "▶"
)

// Layout sizing
const (
	ImageAreaWidth  float32 = 500
	ImageAreaHeight float32 = 500

	TitleTextSize float32 = 28

	NavButtonMinWidth float32 = 100

	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 360
	EntryDialogWidth     float32 = 600
	EntryDialogHeight    float32 = 180
)
