package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/image-viewer/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	dataFileEntry  *widget.Entry
	logLevelSelect *widget.Select
	languageSelect *widget.Select
	confirmCheck   *widget.Check
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	sd.dataFileEntry = widget.NewEntry()
	browseBtn := widget.NewButton(t(KeyBrowse), sd.onBrowseFile)
	dataFileRow := container.NewBorder(nil, nil, nil, browseBtn, sd.dataFileEntry)

	sd.logLevelSelect = widget.NewSelect(sd.settings.GetLogLevelOptions(), nil)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.confirmCheck = widget.NewCheck(t(KeyConfirmDelete), nil)

	form := container.NewVBox(
		widget.NewLabel(t(KeyDataFile)+":"),
		dataFileRow,

		widget.NewLabel(t(KeyLogLevel)+":"),
		sd.logLevelSelect,

		widget.NewLabel(t(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewSeparator(),
		sd.confirmCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.dataFileEntry.SetText(sd.settings.GetDataFile())
	sd.logLevelSelect.SetSelected(sd.settings.GetLogLevel())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.confirmCheck.SetChecked(sd.settings.GetConfirmDelete())
}

// onBrowseFile handles picking the image list file
func (sd *SettingsDialog) onBrowseFile() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		sd.dataFileEntry.SetText(reader.URI().Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	message := sd.localization.GetText(KeySettingsSaved)

	dataFile := sd.dataFileEntry.Text
	if dataFile != "" && dataFile != sd.settings.GetDataFile() {
		sd.settings.SetDataFile(dataFile)
		message += "\n" + sd.localization.GetText(KeyRestartRequired)
	}

	if sd.logLevelSelect.Selected != "" {
		sd.settings.SetLogLevel(sd.logLevelSelect.Selected)
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	sd.settings.SetConfirmDelete(sd.confirmCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), message, sd.window)
}
