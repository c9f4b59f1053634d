package ui

// Package ui contains the Fyne-based desktop user interface for the
// metronome. It wires user interactions to the tempo model and the playback
// controller and renders the tempo display, the two input modes, and the
// mode indicator. All UI strings are localized via Localization.
