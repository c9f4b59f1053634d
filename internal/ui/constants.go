package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Window sizing: a small fixed window, like a pocket metronome
const (
	WindowWidth  float32 = 300
	WindowHeight float32 = 420
)

// Display text sizing
const (
	TempoTextSize   float32 = 36
	MarkingTextSize float32 = 18
)

// Layout sizing
const (
	StartStopButtonWidth float32 = 140
	SettingsDialogWidth  float32 = 360
	SettingsDialogHeight float32 = 300
)

// Text fragments
const (
	ModeIndicatorFormat = "%s: %s"
)
