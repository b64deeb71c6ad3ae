package main

import (
	"os"
	"os/signal"
	"syscall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"

	"github.com/ytget/image-viewer/internal/config"
	"github.com/ytget/image-viewer/internal/logger"
	"github.com/ytget/image-viewer/internal/store"
	"github.com/ytget/image-viewer/internal/ui"
	"github.com/ytget/image-viewer/internal/viewer"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.image-viewer"
	AppName = "Image Viewer"

	WindowWidth  = 750
	WindowHeight = 750

	// EnvLogLevel overrides the log level stored in preferences
	EnvLogLevel = "IMAGEVIEWER_LOG_LEVEL"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewViewerTheme())

	settings := config.NewSettings(myApp)

	levelName := settings.GetLogLevel()
	if env := os.Getenv(EnvLogLevel); env != "" {
		levelName = env
	}
	log := logger.NewConsole(logger.ParseLevel(levelName))
	log.Info().Str("version", version).Msg("Image Viewer starting")

	// The list is required; a missing or unreadable file stops startup here
	dataFile := settings.GetDataFile()
	imageStore, err := store.Open(dataFile, log)
	if err != nil {
		log.Fatal().Err(err).Str("path", dataFile).
			Msg("cannot open image list (create an empty one with: imagelist -init -data <path>)")
	}

	cursor := viewer.NewCursor(imageStore)

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	myWindow.SetFixedSize(true)

	root := ui.NewRootUI(myWindow, cursor, settings, log)
	handleSignals(root, log)

	// Show and run
	myWindow.ShowAndRun()

	log.Info().Msg("Image Viewer stopped")
}

// handleSignals saves the list and closes the window on SIGINT/SIGTERM
func handleSignals(root *ui.RootUI, log zerolog.Logger) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-signals
		log.Info().Str("signal", sig.String()).Msg("signal received, saving before exit")
		fyne.Do(root.Shutdown)
	}()
}
