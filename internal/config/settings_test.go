package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/image-viewer/internal/platform"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestDataFile(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	path := settings.GetDataFile()
	if path != platform.DefaultDataFile() {
		t.Errorf("Expected default data file %s, got %s", platform.DefaultDataFile(), path)
	}

	// Test setting custom value
	customPath := "/custom/images.data"
	settings.SetDataFile(customPath)

	if got := settings.GetDataFile(); got != customPath {
		t.Errorf("Expected data file %s, got %s", customPath, got)
	}

	// Test empty path defaults back
	settings.SetDataFile("")
	if got := settings.GetDataFile(); got != platform.DefaultDataFile() {
		t.Errorf("Empty data file should default to %s, got %s", platform.DefaultDataFile(), got)
	}
}

func TestLogLevel(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if level := settings.GetLogLevel(); level != DefaultLogLevel {
		t.Errorf("Expected default log level %s, got %s", DefaultLogLevel, level)
	}

	settings.SetLogLevel(LogLevelDebug)
	if level := settings.GetLogLevel(); level != LogLevelDebug {
		t.Errorf("Expected log level %s, got %s", LogLevelDebug, level)
	}

	// Unknown level resets to default
	settings.SetLogLevel("chatty")
	if level := settings.GetLogLevel(); level != DefaultLogLevel {
		t.Errorf("Unknown log level should reset to %s, got %s", DefaultLogLevel, level)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestConfirmDelete(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetConfirmDelete() != DefaultConfirmDelete {
		t.Errorf("Expected default confirm delete %v", DefaultConfirmDelete)
	}

	settings.SetConfirmDelete(true)
	if !settings.GetConfirmDelete() {
		t.Error("Confirm delete should be enabled after SetConfirmDelete(true)")
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}

func TestGetLogLevelOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLogLevelOptions()
	expected := []string{LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError}

	if len(options) != len(expected) {
		t.Fatalf("Expected %d log level options, got %d", len(expected), len(options))
	}

	for i, level := range expected {
		if options[i] != level {
			t.Errorf("Log level option %d: expected %s, got %s", i, level, options[i])
		}
	}
}
