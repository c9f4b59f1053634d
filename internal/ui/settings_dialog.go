package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/metronomiq/metronomiq/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	window       fyne.Window
	localization *Localization
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	beatsSelect    *widget.Select
	volumeSlider   *widget.Slider
	languageSelect *widget.Select
}

// ShowSettingsDialog creates and shows the settings dialog; onSaved is
// invoked after the settings have been persisted so the caller can apply
// them live.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	sd := &SettingsDialog{
		settings:     settings,
		window:       window,
		localization: localization,
		onSaved:      onSaved,
	}

	sd.createUI()
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Beats per measure selection (1 disables the accented downbeat)
	beatsOptions := []string{}
	for _, beats := range sd.settings.GetBeatsPerMeasureOptions() {
		beatsOptions = append(beatsOptions, strconv.Itoa(beats))
	}
	sd.beatsSelect = widget.NewSelect(beatsOptions, nil)

	// Click volume
	sd.volumeSlider = widget.NewSlider(0, 1)
	sd.volumeSlider.Step = 0.05

	// Language selection
	languageOptions := []string{}
	for code := range sd.localization.GetAvailableLanguages() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyBeatsPerMeasure)+":"),
		sd.beatsSelect,

		widget.NewLabel(sd.localization.GetText(KeyClickVolume)+":"),
		sd.volumeSlider,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.beatsSelect.SetSelected(strconv.Itoa(sd.settings.GetBeatsPerMeasure()))
	sd.volumeSlider.SetValue(sd.settings.GetClickVolume())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.beatsSelect.Selected != "" {
		if beats, err := strconv.Atoi(sd.beatsSelect.Selected); err == nil {
			sd.settings.SetBeatsPerMeasure(beats)
		}
	}

	sd.settings.SetClickVolume(sd.volumeSlider.Value)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)
}
