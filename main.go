package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/metronomiq/metronomiq/internal/audio"
	"github.com/metronomiq/metronomiq/internal/config"
	"github.com/metronomiq/metronomiq/internal/playback"
	"github.com/metronomiq/metronomiq/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const AppID = "com.metronomiq.metronomiq"

func main() {
	log.Printf("MetronomiQ v%s starting...", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow("MetronomiQ")
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))
	myWindow.SetFixedSize(true)

	// Initialize services
	settings := config.NewSettings(myApp)

	var player audio.Player
	player, err := audio.NewClickPlayer(settings.GetClickVolume())
	if err != nil {
		// No audio device is not fatal: the metronome runs silent
		log.Printf("Audio unavailable, running silent: %v", err)
		player = audio.NopPlayer{}
	}
	defer player.Close()

	controller := playback.NewController(player)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, player, controller)

	// Show and run
	myWindow.ShowAndRun()

	// Cancel the ticker before the process exits
	controller.Stop()
}
