package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	// Click shape: short decaying sine. The accent click is a perfect
	// fifth plus an octave above the regular one so it cuts through.
	clickFreq       = 1100.0
	accentClickFreq = 1568.0
	clickLength     = 35 * time.Millisecond
	clickDecay      = 120.0 // amplitude decay rate, 1/s

	// DefaultVolume is the click volume used when none is configured
	DefaultVolume = 0.8
)

// Player is the tick playback capability the playback controller depends on.
// Implementations must be safe to call from the ticker goroutine.
type Player interface {
	// PlayTick plays one click, fire-and-forget. Accented ticks mark the
	// first beat of a measure.
	PlayTick(accent bool)

	// SetVolume sets the click volume in [0, 1]
	SetVolume(volume float64)

	// Close stops all playback
	Close()
}

// ClickPlayer renders clicks into beep buffers and plays them through the
// speaker. A fresh streamer is taken from the buffer for every tick, so
// overlapping plays at high tempo work without coordination.
type ClickPlayer struct {
	mu     sync.Mutex
	format beep.Format
	tick   *beep.Buffer
	accent *beep.Buffer
	volume float64
}

// NewClickPlayer initializes the speaker and renders the click buffers
func NewClickPlayer(volume float64) (*ClickPlayer, error) {
	format := beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("failed to initialize speaker: %w", err)
	}

	p := &ClickPlayer{format: format}
	p.SetVolume(volume)
	return p, nil
}

// PlayTick plays one click without waiting for it to finish
func (p *ClickPlayer) PlayTick(accent bool) {
	p.mu.Lock()
	buffer := p.tick
	if accent {
		buffer = p.accent
	}
	p.mu.Unlock()

	shot := buffer.Streamer(0, buffer.Len())
	speaker.Play(shot)
}

// SetVolume re-renders the click buffers at the given volume, clamped to [0, 1]
func (p *ClickPlayer) SetVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}

	tick := renderClick(p.format, clickFreq, volume)
	accent := renderClick(p.format, accentClickFreq, volume)

	p.mu.Lock()
	p.volume = volume
	p.tick = tick
	p.accent = accent
	p.mu.Unlock()
}

// Volume returns the current click volume
func (p *ClickPlayer) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// Close silences any in-flight clicks
func (p *ClickPlayer) Close() {
	speaker.Clear()
}

// renderClick synthesizes one decaying-sine click into a buffer
func renderClick(format beep.Format, freq, volume float64) *beep.Buffer {
	rate := float64(format.SampleRate)
	sampleNum := 0

	click := beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			t := float64(sampleNum) / rate
			value := volume * math.Exp(-t*clickDecay) * math.Sin(2*math.Pi*freq*t)
			samples[i][0] = value
			samples[i][1] = value
			sampleNum++
		}
		return len(samples), true
	})

	buffer := beep.NewBuffer(format)
	buffer.Append(beep.Take(format.SampleRate.N(clickLength), click))
	return buffer
}

// NopPlayer is the silent fallback used when the audio device cannot be
// initialized: the metronome keeps running, it just makes no sound.
type NopPlayer struct{}

func (NopPlayer) PlayTick(bool) {}

func (NopPlayer) SetVolume(float64) {}

func (NopPlayer) Close() {}
