package playback

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/metronomiq/metronomiq/internal/audio"
)

// Beats-per-measure bounds; 1 disables accents
const (
	MinBeatsPerMeasure = 1
	MaxBeatsPerMeasure = 12
)

// Controller starts and stops the periodic tick. It owns the ticker
// goroutine; the player is fire-and-forget, so ticks never wait for the
// previous click to finish.
type Controller struct {
	mu              sync.Mutex
	player          audio.Player
	running         bool
	stop            chan struct{}
	done            chan struct{}
	beatsPerMeasure int
	onStateChange   func(running bool) // callback for UI updates
}

// NewController creates a stopped controller playing through the given player
func NewController(player audio.Player) *Controller {
	return &Controller{
		player:          player,
		beatsPerMeasure: MinBeatsPerMeasure,
	}
}

// SetStateCallback sets the callback invoked on every start/stop transition
func (c *Controller) SetStateCallback(callback func(running bool)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onStateChange = callback
}

// SetBeatsPerMeasure sets how many ticks form one measure. The first tick of
// each measure is accented; 1 disables accents. Takes effect on next start.
func (c *Controller) SetBeatsPerMeasure(beats int) {
	if beats < MinBeatsPerMeasure {
		beats = MinBeatsPerMeasure
	}
	if beats > MaxBeatsPerMeasure {
		beats = MaxBeatsPerMeasure
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.beatsPerMeasure = beats
}

// BeatsPerMeasure returns the configured beats per measure
func (c *Controller) BeatsPerMeasure() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.beatsPerMeasure
}

// Running reports whether the metronome is ticking
func (c *Controller) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Start begins ticking every interval. The first tick fires immediately.
// Returns an error if already running or the interval is not positive.
func (c *Controller) Start(interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("invalid tick interval: %v", interval)
	}

	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return fmt.Errorf("metronome is already running")
	}

	c.running = true
	c.stop = make(chan struct{})
	c.done = make(chan struct{})
	beats := c.beatsPerMeasure
	callback := c.onStateChange
	stop, done := c.stop, c.done
	c.mu.Unlock()

	log.Printf("Playback started: interval=%v beats=%d", interval, beats)

	go c.run(interval, beats, stop, done)

	if callback != nil {
		callback(true)
	}
	return nil
}

// Stop cancels the periodic tick. Once Stop returns, no further tick fires.
// Stopping an already stopped controller is a no-op.
func (c *Controller) Stop() error {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return nil
	}

	c.running = false
	callback := c.onStateChange
	stop, done := c.stop, c.done
	c.mu.Unlock()

	close(stop)
	// Wait for the ticker goroutine to exit so no tick can fire after Stop.
	<-done

	log.Printf("Playback stopped")

	if callback != nil {
		callback(false)
	}
	return nil
}

// run is the ticker loop. It compensates for scheduler drift the same way a
// long-running metronome must: small drift is absorbed, large drift resets
// the expected tick time.
func (c *Controller) run(interval time.Duration, beats int, stop, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	beat := 0
	c.playTick(beat, beats)
	beat++

	nextTick := time.Now().Add(interval)

	for {
		// Drain a pending stop before a pending tick so Stop wins the race.
		select {
		case <-stop:
			return
		default:
		}

		select {
		case <-stop:
			return
		case now := <-ticker.C:
			drift := now.Sub(nextTick)
			if drift > 10*time.Millisecond || drift < -10*time.Millisecond {
				nextTick = now
			}
			nextTick = nextTick.Add(interval)

			c.playTick(beat, beats)
			beat++
		}
	}
}

// playTick plays one click, accenting the first beat of each measure. A
// failing player must not halt the timer, so panics are contained here.
func (c *Controller) playTick(beat, beats int) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Tick playback failed: %v", r)
		}
	}()

	accent := beats > MinBeatsPerMeasure && beat%beats == 0
	c.player.PlayTick(accent)
}
