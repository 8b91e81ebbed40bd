package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/media-scribe/internal/batch"
	"github.com/ytget/media-scribe/internal/config"
	"github.com/ytget/media-scribe/internal/download"
	"github.com/ytget/media-scribe/internal/platform"
	"github.com/ytget/media-scribe/internal/transcribe"
	"github.com/ytget/media-scribe/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.media-scribe"
	AppName = "Media Scribe"

	WindowWidth  = 900
	WindowHeight = 620
)

func main() {
	fmt.Printf("Media Scribe v%s starting...\n", version)

	myApp := app.NewWithID(AppID)

	// Apply dark compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		fmt.Printf("failed to ensure downloads dir: %v\n", err)
	}

	downloadSvc := download.NewService(downloadsDir)
	transcribeSvc := transcribe.NewService(settings.GetModelsDirectory())
	processor := batch.NewProcessor(downloadSvc, transcribeSvc)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, processor, settings)

	// Show and run
	myWindow.ShowAndRun()
}
