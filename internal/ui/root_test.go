package ui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/rs/zerolog"

	"github.com/ytget/image-viewer/internal/config"
	"github.com/ytget/image-viewer/internal/model"
	"github.com/ytget/image-viewer/internal/store"
	"github.com/ytget/image-viewer/internal/viewer"
)

var (
	testCat = model.NewImage("file:///tmp/cat.png", "Cat")
	testDog = model.NewImage("file:///tmp/dog.png", "Dog")
)

func newTestUI(t *testing.T, path string, images ...model.Image) (*RootUI, *store.Store) {
	t.Helper()

	app := test.NewApp()
	window := test.NewWindow(nil)

	s := store.New(path, append([]model.Image(nil), images...), zerolog.Nop())
	ui := newRootUI(window, viewer.NewCursor(s), config.NewSettings(app), zerolog.Nop())
	ui.loadImage = func(model.Image) *canvas.Image {
		return canvas.NewImageFromResource(theme.MediaPhotoIcon())
	}
	ui.setupUI()
	return ui, s
}

func TestRootUI_InitialRender(t *testing.T) {
	ui, _ := newTestUI(t, filepath.Join(t.TempDir(), "images.data"), testCat, testDog)

	if ui.titleText.Text != "Cat" {
		t.Errorf("Expected title 'Cat', got '%s'", ui.titleText.Text)
	}
	if ui.statusLabel.Text != "1 / 2" {
		t.Errorf("Expected status '1 / 2', got '%s'", ui.statusLabel.Text)
	}
	if ui.nextBtn.Disabled() || ui.previousBtn.Disabled() || ui.deleteBtn.Disabled() {
		t.Error("Navigation buttons should be enabled for a non-empty list")
	}
	if len(ui.imageHolder.Objects) != 1 {
		t.Errorf("Expected one image object, got %d", len(ui.imageHolder.Objects))
	}
}

func TestRootUI_EmptyList(t *testing.T) {
	ui, _ := newTestUI(t, filepath.Join(t.TempDir(), "images.data"))

	if ui.titleText.Text != model.PlaceholderTitle {
		t.Errorf("Expected placeholder title, got '%s'", ui.titleText.Text)
	}
	if !ui.current.IsPlaceholder() {
		t.Error("Expected the placeholder record to be shown")
	}
	if !ui.nextBtn.Disabled() || !ui.previousBtn.Disabled() || !ui.deleteBtn.Disabled() {
		t.Error("Navigation buttons should be disabled for an empty list")
	}
	if ui.addBtn.Disabled() {
		t.Error("Add button should stay enabled")
	}
	if ui.statusLabel.Text != ui.localization.GetText(KeyNoImages) {
		t.Errorf("Expected empty status text, got '%s'", ui.statusLabel.Text)
	}
}

func TestRootUI_Navigation(t *testing.T) {
	ui, _ := newTestUI(t, filepath.Join(t.TempDir(), "images.data"), testCat, testDog)

	ui.onNext()
	if ui.current != testDog {
		t.Errorf("Expected Dog after next, got %v", ui.current)
	}

	ui.onTypedKey(&fyne.KeyEvent{Name: fyne.KeyRight})
	if ui.current != testCat {
		t.Errorf("Expected wrap to Cat, got %v", ui.current)
	}

	ui.onTypedKey(&fyne.KeyEvent{Name: fyne.KeyLeft})
	if ui.current != testDog {
		t.Errorf("Expected wrap back to Dog, got %v", ui.current)
	}

	ui.onGesture(GestureSwipeLeft)
	if ui.current != testCat {
		t.Errorf("Expected swipe left to show Cat, got %v", ui.current)
	}

	ui.onGesture(GestureSwipeRight)
	if ui.current != testDog {
		t.Errorf("Expected swipe right to show Dog, got %v", ui.current)
	}
	if ui.statusLabel.Text != "2 / 2" {
		t.Errorf("Expected status '2 / 2', got '%s'", ui.statusLabel.Text)
	}
}

func TestRootUI_AddAndDelete(t *testing.T) {
	ui, s := newTestUI(t, filepath.Join(t.TempDir(), "images.data"), testCat)

	if err := ui.addImage("not a url", "Broken"); err == nil {
		t.Error("Expected error for invalid URL")
	}
	if s.Len() != 1 {
		t.Fatalf("Invalid add must not change the list, got %d images", s.Len())
	}

	if err := ui.addImage("file:///tmp/dog.png", "  Dog  "); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if ui.current != testDog {
		t.Errorf("Expected Dog to be shown after add, got %v", ui.current)
	}
	if ui.statusLabel.Text != "2 / 2" {
		t.Errorf("Expected status '2 / 2', got '%s'", ui.statusLabel.Text)
	}

	ui.onDelete()
	if ui.current != testCat {
		t.Errorf("Expected wrap to Cat after deleting the last image, got %v", ui.current)
	}

	ui.onTypedKey(&fyne.KeyEvent{Name: fyne.KeyDelete})
	if !ui.current.IsPlaceholder() {
		t.Errorf("Expected placeholder after deleting everything, got %v", ui.current)
	}
	if !ui.deleteBtn.Disabled() {
		t.Error("Delete button should be disabled once the list is empty")
	}
}

func TestRootUI_DeleteWithConfirmationWaits(t *testing.T) {
	ui, s := newTestUI(t, filepath.Join(t.TempDir(), "images.data"), testCat)
	ui.settings.SetConfirmDelete(true)

	ui.onDelete()

	if s.Len() != 1 {
		t.Error("Delete must wait for confirmation when enabled")
	}
}

func TestRootUI_CloseSavesList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "images.data")
	ui, _ := newTestUI(t, path, testCat)

	if err := ui.addImage("file:///tmp/dog.png", "Dog"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	ui.onCloseRequested()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected list to be saved: %v", err)
	}
	expected := "file:///tmp/cat.png Cat\nfile:///tmp/dog.png Dog\n"
	if string(content) != expected {
		t.Errorf("Expected saved content %q, got %q", expected, string(content))
	}
}

func TestRootUI_CloseSaveFailureKeepsState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "images.data")
	ui, s := newTestUI(t, path, testCat, testDog)

	ui.onCloseRequested()

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Expected no file to be written, stat returned %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("In-memory list must be kept after a failed save, got %d images", s.Len())
	}
}

func TestRootUI_ShutdownSaveFailureIsLogged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "images.data")
	ui, _ := newTestUI(t, path, testCat, testDog)

	var logs bytes.Buffer
	ui.log = zerolog.New(&logs)
	ui.Shutdown()

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Expected no file to be written, stat returned %v", err)
	}
	if !strings.Contains(logs.String(), "failed to save image list on shutdown") {
		t.Errorf("Expected save failure to be logged, got %q", logs.String())
	}
	if !strings.Contains(logs.String(), `"unsaved":2`) {
		t.Errorf("Expected unsaved count in log, got %q", logs.String())
	}
}

func TestRootUI_DeletingLastImageShowsPlaceholder(t *testing.T) {
	ui, _ := newTestUI(t, filepath.Join(t.TempDir(), "images.data"), testCat)

	var logs bytes.Buffer
	ui.log = zerolog.New(&logs)
	ui.deleteCurrent()

	if !ui.current.IsPlaceholder() {
		t.Errorf("Expected placeholder after deleting the only image, got %+v", ui.current)
	}
	if !strings.Contains(logs.String(), "showing placeholder") {
		t.Errorf("Expected placeholder to be logged, got %q", logs.String())
	}
}

func TestRootUI_LanguageChange(t *testing.T) {
	ui, _ := newTestUI(t, filepath.Join(t.TempDir(), "images.data"), testCat)

	ui.onLanguageChange("pt")

	if ui.addBtn.Text != "Adicionar" {
		t.Errorf("Expected Portuguese add button, got '%s'", ui.addBtn.Text)
	}
	if ui.settings.GetLanguage() != "pt" {
		t.Errorf("Expected language to be persisted, got '%s'", ui.settings.GetLanguage())
	}
}
