package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/metronomiq/metronomiq/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLastTempo(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if tempo := settings.GetLastTempo(); tempo != DefaultTempo {
		t.Errorf("Expected default tempo %d, got %d", DefaultTempo, tempo)
	}

	// Test setting custom value
	settings.SetLastTempo(132)
	if tempo := settings.GetLastTempo(); tempo != 132 {
		t.Errorf("Expected tempo 132, got %d", tempo)
	}

	// Test boundary values
	settings.SetLastTempo(5) // Should be clamped to 20
	if tempo := settings.GetLastTempo(); tempo != model.MinTempo {
		t.Errorf("Expected tempo clamped to %d, got %d", model.MinTempo, tempo)
	}

	settings.SetLastTempo(999) // Should be clamped to 300
	if tempo := settings.GetLastTempo(); tempo != model.MaxTempo {
		t.Errorf("Expected tempo clamped to %d, got %d", model.MaxTempo, tempo)
	}
}

func TestTempoMode(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if mode := settings.GetTempoMode(); mode != model.ModeMaelzel {
		t.Errorf("Expected default mode %s, got %s", model.ModeMaelzel, mode)
	}

	// Test setting custom value
	settings.SetTempoMode(model.ModePrecise)
	if mode := settings.GetTempoMode(); mode != model.ModePrecise {
		t.Errorf("Expected mode %s, got %s", model.ModePrecise, mode)
	}

	settings.SetTempoMode(model.ModeMaelzel)
	if mode := settings.GetTempoMode(); mode != model.ModeMaelzel {
		t.Errorf("Expected mode %s, got %s", model.ModeMaelzel, mode)
	}
}

func TestBeatsPerMeasure(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if beats := settings.GetBeatsPerMeasure(); beats != DefaultBeatsPerMeasure {
		t.Errorf("Expected default beats %d, got %d", DefaultBeatsPerMeasure, beats)
	}

	// Test setting custom value
	settings.SetBeatsPerMeasure(4)
	if beats := settings.GetBeatsPerMeasure(); beats != 4 {
		t.Errorf("Expected beats 4, got %d", beats)
	}

	// Test boundary values
	settings.SetBeatsPerMeasure(0) // Should be clamped to 1
	if beats := settings.GetBeatsPerMeasure(); beats != 1 {
		t.Error("Beats per measure should be clamped to minimum 1")
	}

	settings.SetBeatsPerMeasure(50) // Should be clamped to 12
	if beats := settings.GetBeatsPerMeasure(); beats != 12 {
		t.Error("Beats per measure should be clamped to maximum 12")
	}
}

func TestClickVolume(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if volume := settings.GetClickVolume(); volume != DefaultClickVolume {
		t.Errorf("Expected default volume %.2f, got %.2f", DefaultClickVolume, volume)
	}

	// Test setting custom value
	settings.SetClickVolume(0.25)
	if volume := settings.GetClickVolume(); volume != 0.25 {
		t.Errorf("Expected volume 0.25, got %.2f", volume)
	}

	// Zero is a legitimate stored value, not a missing one
	settings.SetClickVolume(0)
	if volume := settings.GetClickVolume(); volume != 0 {
		t.Errorf("Expected volume 0, got %.2f", volume)
	}

	// Test boundary values
	settings.SetClickVolume(-0.5)
	if volume := settings.GetClickVolume(); volume != 0 {
		t.Error("Volume should be clamped to minimum 0")
	}

	settings.SetClickVolume(1.5)
	if volume := settings.GetClickVolume(); volume != 1 {
		t.Error("Volume should be clamped to maximum 1")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")
	if lang := settings.GetLanguage(); lang != "en" {
		t.Errorf("Expected language 'en', got %s", lang)
	}
}

func TestGetBeatsPerMeasureOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetBeatsPerMeasureOptions()
	expected := []int{1, 2, 3, 4, 6}

	if len(options) != len(expected) {
		t.Fatalf("Expected %d beat options, got %d", len(expected), len(options))
	}

	for i, want := range expected {
		if options[i] != want {
			t.Errorf("Beat option %d: expected %d, got %d", i, want, options[i])
		}
	}
}
