package ui

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/metronomiq/metronomiq/internal/audio"
	"github.com/metronomiq/metronomiq/internal/config"
	"github.com/metronomiq/metronomiq/internal/model"
	"github.com/metronomiq/metronomiq/internal/playback"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	tempoModel   *model.TempoModel
	controller   *playback.Controller
	player       audio.Player
	settings     *config.Settings
	localization *Localization

	// Indication
	tempoCaption   *widget.Label
	tempoText      *canvas.Text
	bpmCaption     *widget.Label
	markingCaption *widget.Label
	markingText    *canvas.Text

	// Maelzel controls
	slider    *widget.Slider
	sliderMin *widget.Label
	sliderMax *widget.Label
	sliderRow *fyne.Container

	// Precise controls
	tempoPrompt *widget.Label
	tempoEntry  *widget.Entry
	preciseRow  *fyne.Container

	startStopBtn  *widget.Button
	modeIndicator *widget.Label

	// Guards slider/entry sync against re-entrant change events
	syncing bool
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, player audio.Player, controller *playback.Controller) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		tempoModel:   model.NewTempoModel(),
		controller:   controller,
		player:       player,
		settings:     settings,
		localization: localization,
	}

	// Reopen where the app was closed: mode first, then tempo (the model
	// snaps the tempo to the table when restoring into Maelzel mode).
	if settings.GetTempoMode() == model.ModePrecise {
		ui.tempoModel.SwitchMode()
	}
	ui.tempoModel.SetTempo(settings.GetLastTempo())

	player.SetVolume(settings.GetClickVolume())
	controller.SetBeatsPerMeasure(settings.GetBeatsPerMeasure())
	controller.SetStateCallback(ui.onPlaybackStateChange)

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.createMenu()
	ui.registerShortcuts()

	ui.applyMode()
	ui.refreshDisplay()

	log.Printf("RootUI initialized: tempo=%d mode=%s", ui.tempoModel.CurrentTempo(), ui.tempoModel.Mode())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Indication panel: big tempo number with the traditional marking below
	ui.tempoCaption = widget.NewLabel(ui.localization.GetText(KeyCurrentTempo))
	ui.tempoCaption.Alignment = fyne.TextAlignCenter

	ui.tempoText = canvas.NewText("", theme.Color(theme.ColorNameForeground))
	ui.tempoText.TextSize = TempoTextSize
	ui.tempoText.TextStyle = fyne.TextStyle{Bold: true}
	ui.tempoText.Alignment = fyne.TextAlignCenter

	ui.bpmCaption = widget.NewLabel(ui.localization.GetText(KeyBeatsPerMinute))
	ui.bpmCaption.Alignment = fyne.TextAlignCenter

	ui.markingCaption = widget.NewLabel(ui.localization.GetText(KeyTraditionalMarking))
	ui.markingCaption.Alignment = fyne.TextAlignCenter

	ui.markingText = canvas.NewText("", theme.Color(theme.ColorNameForeground))
	ui.markingText.TextSize = MarkingTextSize
	ui.markingText.TextStyle = fyne.TextStyle{Bold: true}
	ui.markingText.Alignment = fyne.TextAlignCenter

	indication := container.NewVBox(
		ui.tempoCaption,
		container.NewCenter(ui.tempoText),
		ui.bpmCaption,
		ui.markingCaption,
		container.NewCenter(ui.markingText),
	)

	// Maelzel controls: slider over table indices with min/max labels
	table := ui.tempoModel.Table()
	ui.sliderMin = widget.NewLabel(strconv.Itoa(table.First()))
	ui.sliderMax = widget.NewLabel(strconv.Itoa(table.Last()))

	ui.slider = widget.NewSlider(0, float64(table.Size()-1))
	ui.slider.Step = 1
	ui.slider.OnChanged = ui.onSliderChanged

	ui.sliderRow = container.NewBorder(nil, nil, ui.sliderMin, ui.sliderMax, ui.slider)

	// Precise controls: digit-filtered entry with clamp-on-commit
	ui.tempoPrompt = widget.NewLabel(ui.localization.GetText(KeyTempoPrompt))

	ui.tempoEntry = widget.NewEntry()
	ui.tempoEntry.OnChanged = ui.onTempoEntryChanged
	ui.tempoEntry.OnSubmitted = func(string) {
		ui.commitTempoText()
	}

	ui.preciseRow = container.NewBorder(nil, nil, ui.tempoPrompt, nil, ui.tempoEntry)

	// Start/stop button, centered
	ui.startStopBtn = widget.NewButton(ui.localization.GetText(KeyStart), ui.onStartStop)
	ui.startStopBtn.Importance = widget.HighImportance

	buttonRow := container.NewCenter(ui.startStopBtn)

	controls := container.NewVBox(
		ui.sliderRow,
		ui.preciseRow,
		buttonRow,
	)

	// Mode indicator bar at the bottom
	ui.modeIndicator = widget.NewLabel("")

	content := container.NewBorder(
		nil,                                              // top
		container.NewVBox(widget.NewSeparator(), ui.modeIndicator), // bottom
		nil, // left
		nil, // right
		container.NewVBox(
			container.NewPadded(indication),
			widget.NewSeparator(),
			container.NewPadded(controls),
		),
	)

	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	switchItem := fyne.NewMenuItem(ui.localization.GetText(KeySwitchMode), ui.onSwitchMode)
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	quitItem := fyne.NewMenuItem(ui.localization.GetText(KeyQuit), func() {
		ui.app.Quit()
	})
	quitItem.IsQuit = true

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile),
			switchItem,
			settingsItem,
			fyne.NewMenuItemSeparator(),
			quitItem,
		),
	)

	ui.window.SetMainMenu(mainMenu)
}

// registerShortcuts wires the keyboard shortcuts: Ctrl+M switches mode,
// Ctrl+Q quits, Space toggles playback when no widget holds focus.
func (ui *RootUI) registerShortcuts() {
	ui.window.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyM,
		Modifier: fyne.KeyModifierControl,
	}, func(fyne.Shortcut) {
		ui.onSwitchMode()
	})

	ui.window.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyQ,
		Modifier: fyne.KeyModifierControl,
	}, func(fyne.Shortcut) {
		ui.app.Quit()
	})

	ui.window.Canvas().SetOnTypedKey(func(event *fyne.KeyEvent) {
		if event.Name == fyne.KeySpace {
			ui.onStartStop()
		}
	})
}

// onSwitchMode toggles between Maelzel and Precise tempo selection
func (ui *RootUI) onSwitchMode() {
	ui.tempoModel.SwitchMode()
	ui.settings.SetTempoMode(ui.tempoModel.Mode())
	ui.settings.SetLastTempo(ui.tempoModel.CurrentTempo())

	log.Printf("Mode switched to %s, tempo=%d", ui.tempoModel.Mode(), ui.tempoModel.CurrentTempo())

	ui.applyMode()
	ui.refreshDisplay()
}

// applyMode shows the controls of the active mode and hides the other's
func (ui *RootUI) applyMode() {
	switch ui.tempoModel.Mode() {
	case model.ModeMaelzel:
		ui.preciseRow.Hide()
		ui.tempoEntry.Disable()
		ui.sliderRow.Show()
		if ui.controller.Running() {
			ui.slider.Disable()
		} else {
			ui.slider.Enable()
		}
	case model.ModePrecise:
		ui.sliderRow.Hide()
		ui.preciseRow.Show()
		ui.tempoEntry.Enable()
	}

	modeKey := KeyModeMaelzel
	if ui.tempoModel.Mode() == model.ModePrecise {
		modeKey = KeyModePrecise
	}
	ui.modeIndicator.SetText(fmt.Sprintf(ModeIndicatorFormat,
		ui.localization.GetText(KeyMode), ui.localization.GetText(modeKey)))
}

// refreshDisplay re-derives every tempo-dependent widget from the model
func (ui *RootUI) refreshDisplay() {
	ui.syncing = true
	defer func() { ui.syncing = false }()

	tempo := ui.tempoModel.CurrentTempo()

	ui.tempoText.Text = strconv.Itoa(tempo)
	ui.tempoText.Refresh()

	ui.markingText.Text = ui.tempoModel.TraditionalMarking()
	ui.markingText.Refresh()

	ui.tempoEntry.SetText(strconv.Itoa(tempo))
	ui.slider.SetValue(float64(ui.tempoModel.SliderIndex()))
}

// onSliderChanged handles Maelzel slider movement
func (ui *RootUI) onSliderChanged(value float64) {
	if ui.syncing || ui.tempoModel.Mode() != model.ModeMaelzel {
		return
	}

	if err := ui.tempoModel.SetTempoBySliderIndex(int(value)); err != nil {
		// Out-of-range index is a wiring defect; the slider bounds make it unreachable.
		log.Printf("Slider index rejected: %v", err)
		return
	}

	ui.settings.SetLastTempo(ui.tempoModel.CurrentTempo())
	ui.refreshDisplay()
}

// onTempoEntryChanged filters the Precise entry down to digits on every keystroke
func (ui *RootUI) onTempoEntryChanged(text string) {
	if ui.syncing {
		return
	}

	filtered := digitsOnly(text)
	if filtered != text {
		ui.tempoEntry.SetText(filtered)
	}
}

// commitTempoText applies the Precise entry on edit commit: the text is
// repaired into [MinTempo, MaxTempo] first, so out-of-range entry is
// silently clamped rather than rejected.
func (ui *RootUI) commitTempoText() {
	if ui.tempoModel.Mode() != model.ModePrecise {
		return
	}

	normalized := model.Normalize(ui.tempoEntry.Text, model.MinTempo, model.MaxTempo)

	if err := ui.tempoModel.SetTempoByText(normalized); err != nil {
		// Unreachable through the digit filter; keep the last good tempo.
		log.Printf("Tempo input rejected: %v", err)
		ui.refreshDisplay()
		return
	}

	ui.settings.SetLastTempo(ui.tempoModel.CurrentTempo())
	ui.refreshDisplay()
}

// onStartStop toggles playback. The tick interval is read from the model
// once at start; tempo edits while running apply on the next start.
func (ui *RootUI) onStartStop() {
	if ui.controller.Running() {
		if err := ui.controller.Stop(); err != nil {
			log.Printf("Error stopping playback: %v", err)
		}
		return
	}

	if err := ui.controller.Start(ui.tempoModel.TickInterval()); err != nil {
		log.Printf("Error starting playback: %v", err)
	}
}

// onPlaybackStateChange updates the controls on start/stop transitions
func (ui *RootUI) onPlaybackStateChange(running bool) {
	if running {
		ui.startStopBtn.SetText(ui.localization.GetText(KeyStop))
		ui.slider.Disable()
		return
	}

	ui.startStopBtn.SetText(ui.localization.GetText(KeyStart))
	if ui.tempoModel.Mode() == model.ModeMaelzel {
		ui.slider.Enable()
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		// Apply saved settings live
		ui.controller.SetBeatsPerMeasure(ui.settings.GetBeatsPerMeasure())
		ui.player.SetVolume(ui.settings.GetClickVolume())
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
	})
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.tempoCaption.SetText(ui.localization.GetText(KeyCurrentTempo))
	ui.bpmCaption.SetText(ui.localization.GetText(KeyBeatsPerMinute))
	ui.markingCaption.SetText(ui.localization.GetText(KeyTraditionalMarking))
	ui.tempoPrompt.SetText(ui.localization.GetText(KeyTempoPrompt))

	if ui.controller.Running() {
		ui.startStopBtn.SetText(ui.localization.GetText(KeyStop))
	} else {
		ui.startStopBtn.SetText(ui.localization.GetText(KeyStart))
	}

	ui.applyMode()

	// Recreate menu to update item labels
	ui.createMenu()
}

// digitsOnly strips everything but ASCII digits from the entry text
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
