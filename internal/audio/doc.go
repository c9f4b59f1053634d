package audio

// Package audio plays the metronome click through the speaker using beep.
// Clicks are synthesized once into buffers; each tick plays a fresh streamer
// from the buffer, fire-and-forget, so plays may overlap at high tempo.
