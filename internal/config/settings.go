package config

import (
	"fyne.io/fyne/v2"

	"github.com/metronomiq/metronomiq/internal/model"
	"github.com/metronomiq/metronomiq/internal/playback"
)

// Settings keys for Fyne preferences
const (
	KeyLastTempo       = "last_tempo"
	KeyTempoMode       = "tempo_mode"
	KeyBeatsPerMeasure = "beats_per_measure"
	KeyClickVolume     = "click_volume"
	KeyLanguage        = "app_language"
)

// Stored mode values
const (
	ModeValueMaelzel = "maelzel"
	ModeValuePrecise = "precise"
)

// Default values
const (
	DefaultTempo           = 40
	DefaultBeatsPerMeasure = 1
	DefaultClickVolume     = 0.8
	DefaultLanguage        = "system"
)

// Settings manages application configuration persisted between runs, so the
// metronome reopens at the tempo and mode it was closed with.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLastTempo returns the tempo the app was last used at
func (s *Settings) GetLastTempo() int {
	tempo := s.app.Preferences().Int(KeyLastTempo)
	if tempo <= 0 {
		s.SetLastTempo(DefaultTempo)
		return DefaultTempo
	}
	return tempo
}

// SetLastTempo stores the current tempo, clamped to the valid range
func (s *Settings) SetLastTempo(tempo int) {
	if tempo < model.MinTempo {
		tempo = model.MinTempo
	}
	if tempo > model.MaxTempo {
		tempo = model.MaxTempo
	}
	s.app.Preferences().SetInt(KeyLastTempo, tempo)
}

// GetTempoMode returns the input mode the app was last used in
func (s *Settings) GetTempoMode() model.Mode {
	if s.app.Preferences().String(KeyTempoMode) == ModeValuePrecise {
		return model.ModePrecise
	}
	return model.ModeMaelzel
}

// SetTempoMode stores the current input mode
func (s *Settings) SetTempoMode(mode model.Mode) {
	value := ModeValueMaelzel
	if mode == model.ModePrecise {
		value = ModeValuePrecise
	}
	s.app.Preferences().SetString(KeyTempoMode, value)
}

// GetBeatsPerMeasure returns the configured beats per measure (1 = no accents)
func (s *Settings) GetBeatsPerMeasure() int {
	beats := s.app.Preferences().Int(KeyBeatsPerMeasure)
	if beats <= 0 {
		s.SetBeatsPerMeasure(DefaultBeatsPerMeasure)
		return DefaultBeatsPerMeasure
	}
	if beats > playback.MaxBeatsPerMeasure {
		return playback.MaxBeatsPerMeasure
	}
	return beats
}

// SetBeatsPerMeasure sets the beats per measure, clamped to the valid range
func (s *Settings) SetBeatsPerMeasure(beats int) {
	if beats < playback.MinBeatsPerMeasure {
		beats = playback.MinBeatsPerMeasure
	}
	if beats > playback.MaxBeatsPerMeasure {
		beats = playback.MaxBeatsPerMeasure
	}
	s.app.Preferences().SetInt(KeyBeatsPerMeasure, beats)
}

// GetClickVolume returns the click volume in [0, 1]
func (s *Settings) GetClickVolume() float64 {
	return s.app.Preferences().FloatWithFallback(KeyClickVolume, DefaultClickVolume)
}

// SetClickVolume sets the click volume, clamped to [0, 1]
func (s *Settings) SetClickVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	s.app.Preferences().SetFloat(KeyClickVolume, volume)
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

// GetBeatsPerMeasureOptions returns selectable beats-per-measure values
func (s *Settings) GetBeatsPerMeasureOptions() []int {
	return []int{1, 2, 3, 4, 6}
}
