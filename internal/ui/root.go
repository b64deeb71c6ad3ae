package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ytget/image-viewer/internal/config"
	"github.com/ytget/image-viewer/internal/logger"
	"github.com/ytget/image-viewer/internal/model"
	"github.com/ytget/image-viewer/internal/platform"
	"github.com/ytget/image-viewer/internal/viewer"
)

// RootUI represents the main window: title, image and the navigation buttons
type RootUI struct {
	window       fyne.Window
	cursor       *viewer.Cursor
	settings     *config.Settings
	localization *Localization
	log          zerolog.Logger

	// loadImage turns a record into a canvas image
	loadImage func(model.Image) *canvas.Image

	current     model.Image
	titleText   *canvas.Text
	statusLabel *widget.Label
	imageHolder *fyne.Container

	previousBtn *widget.Button
	addBtn      *widget.Button
	deleteBtn   *widget.Button
	nextBtn     *widget.Button
}

// NewRootUI creates and initializes the main UI and renders the current image
func NewRootUI(window fyne.Window, cursor *viewer.Cursor, settings *config.Settings, log zerolog.Logger) *RootUI {
	ui := newRootUI(window, cursor, settings, log)
	ui.setupUI()
	return ui
}

func newRootUI(window fyne.Window, cursor *viewer.Cursor, settings *config.Settings, log zerolog.Logger) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	return &RootUI{
		window:       window,
		cursor:       cursor,
		settings:     settings,
		localization: localization,
		log:          logger.Component(log, "ui"),
		loadImage:    newCanvasImage,
	}
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.titleText = canvas.NewText("", theme.Color(theme.ColorNameForeground))
	ui.titleText.TextSize = TitleTextSize
	ui.titleText.TextStyle = fyne.TextStyle{Bold: true}
	ui.titleText.Alignment = fyne.TextAlignCenter

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Alignment = fyne.TextAlignCenter

	ui.imageHolder = container.NewStack()
	backdrop := canvas.NewRectangle(theme.Color(ColorNameBackdrop))
	imageArea := NewSwipeArea(container.NewStack(backdrop, ui.imageHolder), ui.onGesture)

	ui.previousBtn = widget.NewButton(IconPrevious+" "+ui.localization.GetText(KeyPrevious), ui.onPrevious)
	ui.addBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeyAdd), theme.ContentAddIcon(), ui.onAdd)
	ui.deleteBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeyDelete), theme.DeleteIcon(), ui.onDelete)
	ui.deleteBtn.Importance = widget.DangerImportance
	ui.nextBtn = widget.NewButton(ui.localization.GetText(KeyNext)+" "+IconNext, ui.onNext)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	top := container.NewVBox(
		container.NewBorder(nil, nil, nil, settingsBtn, ui.titleText),
		ui.statusLabel,
	)
	bottom := container.NewGridWithColumns(4, ui.previousBtn, ui.addBtn, ui.deleteBtn, ui.nextBtn)

	content := container.NewBorder(
		top,       // top
		bottom,    // bottom
		nil,       // left
		nil,       // right
		imageArea, // center
	)

	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.window.SetIcon(LoadAppIcon())
	ui.window.SetContent(content)
	ui.window.Canvas().SetOnTypedKey(ui.onTypedKey)
	ui.window.SetCloseIntercept(ui.onCloseRequested)

	ui.show(ui.cursor.Current())

	ui.log.Debug().Int("count", ui.cursor.Len()).Msg("UI setup completed")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Route menu quit through the same save path as the window close button
	quitItem := fyne.NewMenuItem(ui.localization.GetText(KeyQuit), ui.onCloseRequested)
	quitItem.IsQuit = true

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem, fyne.NewMenuItemSeparator(), quitItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// show renders image and refreshes the controls around it
func (ui *RootUI) show(image model.Image) {
	ui.current = image
	if image.IsPlaceholder() {
		ui.log.Info().Msg("image list is empty, showing placeholder")
	}

	ui.titleText.Text = image.GetDisplayTitle()
	ui.titleText.Refresh()

	ui.imageHolder.Objects = []fyne.CanvasObject{ui.loadImage(image)}
	ui.imageHolder.Refresh()

	ui.statusLabel.SetText(ui.statusText())
	ui.updateButtons()
}

// statusText returns "<position> / <count>" or the empty-list hint
func (ui *RootUI) statusText() string {
	if ui.cursor.IsEmpty() {
		return ui.localization.GetText(KeyNoImages)
	}
	return fmt.Sprintf(ui.localization.GetText(KeyPositionFormat), ui.cursor.Position()+1, ui.cursor.Len())
}

// updateButtons disables navigation and delete while there is nothing to show
func (ui *RootUI) updateButtons() {
	for _, btn := range []*widget.Button{ui.previousBtn, ui.deleteBtn, ui.nextBtn} {
		if ui.cursor.IsEmpty() {
			btn.Disable()
		} else {
			btn.Enable()
		}
	}
}

// onNext handles the Next button
func (ui *RootUI) onNext() {
	if ui.cursor.IsEmpty() {
		return
	}
	ui.show(ui.cursor.Next())
	ui.log.Debug().Int("position", ui.cursor.Position()).Msg("next image")
}

// onPrevious handles the Previous button
func (ui *RootUI) onPrevious() {
	if ui.cursor.IsEmpty() {
		return
	}
	ui.show(ui.cursor.Previous())
	ui.log.Debug().Int("position", ui.cursor.Position()).Msg("previous image")
}

// onAdd asks for the URL first; cancelling that prompt aborts without asking for the title
func (ui *RootUI) onAdd() {
	t := ui.localization.GetText

	urlEntry := widget.NewEntry()
	urlEntry.SetPlaceHolder("https://")
	urlEntry.Validator = platform.ValidateImageURL
	urlItem := widget.NewFormItem("URL", urlEntry)
	urlItem.HintText = t(KeyEnterURL)

	form := dialog.NewForm(t(KeyAddImage), t(KeyContinue), t(KeyCancel),
		[]*widget.FormItem{urlItem},
		func(confirmed bool) {
			if !confirmed {
				return
			}
			ui.promptTitle(strings.TrimSpace(urlEntry.Text))
		}, ui.window)
	form.Resize(fyne.NewSize(EntryDialogWidth, EntryDialogHeight))
	form.Show()
	ui.window.Canvas().Focus(urlEntry)
}

// promptTitle asks for the title of the image at url and adds it
func (ui *RootUI) promptTitle(url string) {
	t := ui.localization.GetText

	titleEntry := widget.NewEntry()
	titleItem := widget.NewFormItem(t(KeyTitleField), titleEntry)
	titleItem.HintText = t(KeyEnterTitle)

	form := dialog.NewForm(t(KeyAddImage), t(KeyAdd), t(KeyCancel),
		[]*widget.FormItem{titleItem},
		func(confirmed bool) {
			if !confirmed {
				return
			}
			if err := ui.addImage(url, titleEntry.Text); err != nil {
				dialog.ShowError(err, ui.window)
			}
		}, ui.window)
	form.Resize(fyne.NewSize(EntryDialogWidth, EntryDialogHeight))
	form.Show()
	ui.window.Canvas().Focus(titleEntry)
}

// addImage validates the input, inserts it after the current image and shows it
func (ui *RootUI) addImage(url, title string) error {
	if err := platform.ValidateImageURL(url); err != nil {
		return fmt.Errorf("%s: %w", ui.localization.GetText(KeyInvalidURL), err)
	}

	image := ui.cursor.Add(url, title)
	ui.log.Info().Str("url", image.URL).Int("position", ui.cursor.Position()).Msg("image added")
	ui.show(image)
	return nil
}

// onDelete handles the Delete button, asking first when configured to
func (ui *RootUI) onDelete() {
	if ui.cursor.IsEmpty() {
		return
	}

	if !ui.settings.GetConfirmDelete() {
		ui.deleteCurrent()
		return
	}

	message := fmt.Sprintf(ui.localization.GetText(KeyDeleteConfirm), ui.current.GetDisplayTitle())
	dialog.ShowConfirm(ui.localization.GetText(KeyDeleteImage), message, func(confirmed bool) {
		if confirmed {
			ui.deleteCurrent()
		}
	}, ui.window)
}

func (ui *RootUI) deleteCurrent() {
	removed := ui.current
	next := ui.cursor.Delete()
	ui.log.Info().Str("url", removed.URL).Int("count", ui.cursor.Len()).Msg("image deleted")
	ui.show(next)
}

// onTypedKey maps arrow keys and Delete to the navigation actions
func (ui *RootUI) onTypedKey(event *fyne.KeyEvent) {
	switch event.Name {
	case fyne.KeyLeft:
		ui.onPrevious()
	case fyne.KeyRight:
		ui.onNext()
	case fyne.KeyDelete:
		ui.onDelete()
	}
}

// onGesture maps swipes on the image to navigation
func (ui *RootUI) onGesture(gesture GestureType) {
	switch gesture {
	case GestureSwipeLeft:
		ui.onNext()
	case GestureSwipeRight:
		ui.onPrevious()
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		ui.onLanguageChange(ui.settings.GetLanguage())
	}).Show()
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.previousBtn.SetText(IconPrevious + " " + ui.localization.GetText(KeyPrevious))
	ui.addBtn.SetText(ui.localization.GetText(KeyAdd))
	ui.deleteBtn.SetText(ui.localization.GetText(KeyDelete))
	ui.nextBtn.SetText(ui.localization.GetText(KeyNext) + " " + IconNext)

	ui.statusLabel.SetText(ui.statusText())
}

// onCloseRequested saves the list and closes the window.
// If saving fails the user may stay with the unsaved list or quit anyway.
func (ui *RootUI) onCloseRequested() {
	if err := ui.cursor.Save(); err != nil {
		ui.log.Error().Err(err).Msg("failed to save image list on exit")

		t := ui.localization.GetText
		message := fmt.Sprintf("%s:\n%v\n\n%s", t(KeySaveFailed), err, t(KeyQuitWithoutSaving))
		dialog.ShowConfirm(t(KeySaveFailed), message, func(quit bool) {
			if quit {
				ui.log.Warn().Msg("quitting without saving")
				ui.window.Close()
			}
		}, ui.window)
		return
	}

	ui.window.Close()
}

// Shutdown saves the list and closes the window without asking.
// It is used when the process is asked to stop from outside the UI, so a
// failed save is only logged and the unsaved changes are lost.
func (ui *RootUI) Shutdown() {
	if err := ui.cursor.Save(); err != nil {
		ui.log.Error().Err(err).Int("unsaved", ui.cursor.Len()).
			Msg("failed to save image list on shutdown, changes are lost")
	}
	ui.window.Close()
}

// newCanvasImage loads the record's image, showing a broken-image icon for unparsable URLs
func newCanvasImage(image model.Image) *canvas.Image {
	var img *canvas.Image

	uri, err := platform.ParseImageURI(image.URL)
	if err != nil {
		fyne.LogError("Could not parse image URL", err)
		img = canvas.NewImageFromResource(theme.BrokenImageIcon())
	} else {
		img = canvas.NewImageFromURI(uri)
	}

	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScaleSmooth
	img.SetMinSize(fyne.NewSize(ImageAreaWidth, ImageAreaHeight))
	return img
}
