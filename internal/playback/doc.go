package playback

// Package playback drives the periodic metronome tick. The Controller is a
// two-state machine (Stopped/Running) guarding a ticker goroutine; the tick
// interval is fixed when playback starts and tempo changes apply on the next
// start.
