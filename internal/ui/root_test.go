package ui

import (
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/metronomiq/metronomiq/internal/audio"
	"github.com/metronomiq/metronomiq/internal/model"
	"github.com/metronomiq/metronomiq/internal/playback"
)

func newTestUI(t *testing.T) *RootUI {
	t.Helper()

	app := test.NewApp()
	window := app.NewWindow("test")
	controller := playback.NewController(audio.NopPlayer{})

	return NewRootUI(window, app, audio.NopPlayer{}, controller)
}

func TestNewRootUI_InitialState(t *testing.T) {
	ui := newTestUI(t)

	if ui.tempoModel.Mode() != model.ModeMaelzel {
		t.Errorf("Expected initial mode %s, got %s", model.ModeMaelzel, ui.tempoModel.Mode())
	}

	if ui.tempoText.Text != "40" {
		t.Errorf("Expected tempo display '40', got %q", ui.tempoText.Text)
	}

	if ui.markingText.Text != "Grave" {
		t.Errorf("Expected marking 'Grave', got %q", ui.markingText.Text)
	}

	if !ui.sliderRow.Visible() {
		t.Error("Expected slider row visible in Maelzel mode")
	}

	if ui.preciseRow.Visible() {
		t.Error("Expected precise row hidden in Maelzel mode")
	}

	if ui.startStopBtn.Text != "Start" {
		t.Errorf("Expected start button text 'Start', got %q", ui.startStopBtn.Text)
	}

	if !strings.Contains(ui.modeIndicator.Text, "Maelzel") {
		t.Errorf("Expected mode indicator to name Maelzel mode, got %q", ui.modeIndicator.Text)
	}
}

func TestRootUI_SwitchMode(t *testing.T) {
	ui := newTestUI(t)

	ui.onSwitchMode()

	if ui.tempoModel.Mode() != model.ModePrecise {
		t.Errorf("Expected mode %s, got %s", model.ModePrecise, ui.tempoModel.Mode())
	}

	if ui.sliderRow.Visible() {
		t.Error("Expected slider row hidden in Precise mode")
	}

	if !ui.preciseRow.Visible() {
		t.Error("Expected precise row visible in Precise mode")
	}

	if ui.tempoEntry.Text != "40" {
		t.Errorf("Expected entry to carry the tempo over, got %q", ui.tempoEntry.Text)
	}

	if !strings.Contains(ui.modeIndicator.Text, "Precise") {
		t.Errorf("Expected mode indicator to name Precise mode, got %q", ui.modeIndicator.Text)
	}
}

func TestRootUI_SwitchModeSnapsBackToTable(t *testing.T) {
	ui := newTestUI(t)

	ui.onSwitchMode()
	ui.tempoEntry.SetText("95")
	ui.commitTempoText()

	ui.onSwitchMode()

	// 95 is not on the table; the nearest entry at or above is 96.
	if got := ui.tempoModel.CurrentTempo(); got != 96 {
		t.Errorf("Expected tempo snapped to 96, got %d", got)
	}

	if ui.tempoText.Text != "96" {
		t.Errorf("Expected tempo display '96', got %q", ui.tempoText.Text)
	}
}

func TestRootUI_CommitTempoTextClamps(t *testing.T) {
	ui := newTestUI(t)
	ui.onSwitchMode()

	ui.tempoEntry.SetText("999")
	ui.commitTempoText()

	if got := ui.tempoModel.CurrentTempo(); got != 300 {
		t.Errorf("Expected tempo clamped to 300, got %d", got)
	}

	if ui.tempoEntry.Text != "300" {
		t.Errorf("Expected entry repaired to '300', got %q", ui.tempoEntry.Text)
	}

	if ui.markingText.Text != "Prestissimo" {
		t.Errorf("Expected marking 'Prestissimo', got %q", ui.markingText.Text)
	}
}

func TestRootUI_CommitEmptyTempoText(t *testing.T) {
	ui := newTestUI(t)
	ui.onSwitchMode()

	ui.tempoEntry.SetText("")
	ui.commitTempoText()

	// Empty entry repairs to the lower bound.
	if got := ui.tempoModel.CurrentTempo(); got != model.MinTempo {
		t.Errorf("Expected tempo %d for empty entry, got %d", model.MinTempo, got)
	}
}

func TestRootUI_EntryFiltersNonDigits(t *testing.T) {
	ui := newTestUI(t)
	ui.onSwitchMode()

	ui.tempoEntry.SetText("12a")

	if ui.tempoEntry.Text != "12" {
		t.Errorf("Expected entry filtered to '12', got %q", ui.tempoEntry.Text)
	}
}

func TestRootUI_SliderSelectsTableTempo(t *testing.T) {
	ui := newTestUI(t)

	last := float64(ui.tempoModel.Table().Size() - 1)
	ui.slider.SetValue(last)

	if got := ui.tempoModel.CurrentTempo(); got != 208 {
		t.Errorf("Expected tempo 208 at the last slider position, got %d", got)
	}

	if ui.tempoText.Text != "208" {
		t.Errorf("Expected tempo display '208', got %q", ui.tempoText.Text)
	}

	if ui.markingText.Text != "Prestissimo" {
		t.Errorf("Expected marking 'Prestissimo', got %q", ui.markingText.Text)
	}
}

func TestRootUI_StartStop(t *testing.T) {
	ui := newTestUI(t)

	ui.onStartStop()

	if !ui.controller.Running() {
		t.Error("Expected controller running after start")
	}

	if ui.startStopBtn.Text != "Stop" {
		t.Errorf("Expected button text 'Stop', got %q", ui.startStopBtn.Text)
	}

	if !ui.slider.Disabled() {
		t.Error("Expected slider disabled while running")
	}

	ui.onStartStop()

	if ui.controller.Running() {
		t.Error("Expected controller stopped after second toggle")
	}

	if ui.startStopBtn.Text != "Start" {
		t.Errorf("Expected button text 'Start', got %q", ui.startStopBtn.Text)
	}

	if ui.slider.Disabled() {
		t.Error("Expected slider re-enabled after stop")
	}
}

func TestRootUI_PreciseEntryStaysEnabledWhileRunning(t *testing.T) {
	ui := newTestUI(t)
	ui.onSwitchMode()

	ui.onStartStop()
	defer ui.onStartStop()

	// Tempo can still be edited while running; it applies on next start.
	if ui.tempoEntry.Disabled() {
		t.Error("Expected precise entry to stay enabled during playback")
	}

	ui.tempoEntry.SetText("180")
	ui.commitTempoText()

	if got := ui.tempoModel.CurrentTempo(); got != 180 {
		t.Errorf("Expected tempo 180 after edit during playback, got %d", got)
	}
}

func TestDigitsOnly(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"123", "123"},
		{"12a3", "123"},
		{"abc", ""},
		{"", ""},
		{" 42 ", "42"},
		{"-17", "17"},
	}

	for _, test := range tests {
		if got := digitsOnly(test.input); got != test.expected {
			t.Errorf("digitsOnly(%q) = %q, expected %q", test.input, got, test.expected)
		}
	}
}
