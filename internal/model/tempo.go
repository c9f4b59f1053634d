package model

import (
	"fmt"
	"strconv"
	"time"
)

// markingBounds maps upper-bound-inclusive BPM ranges to the canonical
// Italian tempo names, in ascending order. The final entry catches
// everything above 200.
var markingBounds = []struct {
	upTo    int
	marking string
}{
	{24, "Larghissimo"},
	{40, "Grave"},
	{60, "Largo"},
	{66, "Larghetto"},
	{76, "Adagio"},
	{108, "Andante"},
	{120, "Moderato"},
	{168, "Allegro"},
	{200, "Presto"},
}

const markingAboveAll = "Prestissimo"

// TempoModel is the single source of truth for the current tempo and the
// active input mode. It has no side effects beyond its own fields; the UI
// re-reads the derived values after every mutation.
type TempoModel struct {
	table   *TempoTable
	mode    Mode
	current int
}

// NewTempoModel creates a model in Maelzel mode at the lowest table tempo
func NewTempoModel() *TempoModel {
	table := NewStandardTempoTable()
	return &TempoModel{
		table:   table,
		mode:    ModeMaelzel,
		current: table.First(),
	}
}

// Table returns the underlying tempo table
func (m *TempoModel) Table() *TempoTable {
	return m.table
}

// Mode returns the active input mode
func (m *TempoModel) Mode() Mode {
	return m.mode
}

// CurrentTempo returns the current tempo in BPM
func (m *TempoModel) CurrentTempo() int {
	return m.current
}

// SliderIndex returns the slider position matching the current tempo: the
// index of the nearest table entry at or above it.
func (m *TempoModel) SliderIndex() int {
	return m.table.IndexOfNearestAtOrAbove(m.current)
}

// SwitchMode toggles between Maelzel and Precise mode. Switching into
// Precise carries the exact tempo over; switching into Maelzel snaps the
// tempo to the nearest table entry at or above it.
func (m *TempoModel) SwitchMode() {
	m.mode = m.mode.Toggled()

	if m.mode == ModeMaelzel {
		snapped, _ := m.table.ValueAt(m.table.IndexOfNearestAtOrAbove(m.current))
		m.current = snapped
	}
}

// SetTempoBySliderIndex sets the tempo from a Maelzel slider position
func (m *TempoModel) SetTempoBySliderIndex(index int) error {
	value, err := m.table.ValueAt(index)
	if err != nil {
		return err
	}
	m.current = value
	return nil
}

// SetTempoByText sets the tempo from free Precise-mode text. Empty text
// falls back to the lowest table tempo; out-of-range values are clamped to
// [MinTempo, MaxTempo]. Unparseable text is a wiring defect (the entry
// widget only admits digits) and is rejected with an error.
func (m *TempoModel) SetTempoByText(text string) error {
	if text == "" {
		m.current = m.table.First()
		return nil
	}

	value, err := strconv.Atoi(text)
	if err != nil {
		return fmt.Errorf("invalid tempo input %q: %w", text, err)
	}

	m.current = clampTempo(value)
	return nil
}

// SetTempo sets the tempo directly, clamped to [MinTempo, MaxTempo].
// Used to restore the persisted tempo at startup.
func (m *TempoModel) SetTempo(bpm int) {
	m.current = clampTempo(bpm)
	if m.mode == ModeMaelzel {
		snapped, _ := m.table.ValueAt(m.table.IndexOfNearestAtOrAbove(m.current))
		m.current = snapped
	}
}

// TraditionalMarking returns the Italian tempo name for the current tempo
func (m *TempoModel) TraditionalMarking() string {
	for _, bound := range markingBounds {
		if m.current <= bound.upTo {
			return bound.marking
		}
	}
	return markingAboveAll
}

// TickInterval returns the duration between metronome ticks at the current
// tempo: 60000/BPM milliseconds, integer division.
func (m *TempoModel) TickInterval() time.Duration {
	return time.Duration(60_000/m.current) * time.Millisecond
}

func clampTempo(bpm int) int {
	if bpm < MinTempo {
		return MinTempo
	}
	if bpm > MaxTempo {
		return MaxTempo
	}
	return bpm
}
