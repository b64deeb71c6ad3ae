package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/image-viewer/internal/platform"
)

// Log levels offered in settings
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Settings keys for Fyne preferences
const (
	KeyDataFile      = "data_file"
	KeyLogLevel      = "log_level"
	KeyLanguage      = "app_language"
	KeyConfirmDelete = "confirm_delete"
)

// Default values
const (
	DefaultLogLevel      = LogLevelInfo
	DefaultLanguage      = "system"
	DefaultConfirmDelete = false
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDataFile returns the path of the image list file
func (s *Settings) GetDataFile() string {
	path := s.app.Preferences().String(KeyDataFile)
	if path == "" {
		path = platform.DefaultDataFile()
		s.SetDataFile(path)
	}
	return path
}

// SetDataFile sets the path of the image list file
func (s *Settings) SetDataFile(path string) {
	if path == "" {
		path = platform.DefaultDataFile()
	}
	s.app.Preferences().SetString(KeyDataFile, path)
}

// GetLogLevel returns the configured log level
func (s *Settings) GetLogLevel() string {
	level := s.app.Preferences().String(KeyLogLevel)
	if level == "" {
		s.SetLogLevel(DefaultLogLevel)
		return DefaultLogLevel
	}
	return level
}

// SetLogLevel sets the log level; unknown values reset to the default
func (s *Settings) SetLogLevel(level string) {
	valid := false
	for _, option := range s.GetLogLevelOptions() {
		if option == level {
			valid = true
			break
		}
	}
	if !valid {
		level = DefaultLogLevel
	}
	s.app.Preferences().SetString(KeyLogLevel, level)
}

// GetLogLevelOptions returns available log levels
func (s *Settings) GetLogLevelOptions() []string {
	return []string{LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetConfirmDelete returns whether deleting an image asks for confirmation
func (s *Settings) GetConfirmDelete() bool {
	return s.app.Preferences().BoolWithFallback(KeyConfirmDelete, DefaultConfirmDelete)
}

// SetConfirmDelete sets whether deleting an image asks for confirmation
func (s *Settings) SetConfirmDelete(confirm bool) {
	s.app.Preferences().SetBool(KeyConfirmDelete, confirm)
}
