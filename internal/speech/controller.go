package speech

import (
	"context"
	"errors"
	"sync"
)

// Rate multipliers applied to the engine's natural speed.
const (
	NormalRate = 0.9
	SlowRate   = 0.5
)

// Callbacks notify the UI about utterance lifecycle changes. They are
// invoked from the speaking goroutine; the GUI wraps them in fyne.Do.
type Callbacks struct {
	OnStart func(id string)
	OnEnd   func(id string)
	OnError func(id string, err error)
}

// Controller serializes speech requests: at most one utterance is in
// flight, and starting a new one unconditionally cancels the previous.
// There is no queueing and no retry; engine errors just clear the playing
// indicator.
type Controller struct {
	mu        sync.Mutex
	synth     Synthesizer
	callbacks Callbacks

	voice     Voice
	slow      bool
	playingID string

	cancel context.CancelFunc
	gen    int // utterance generation, guards against stale completions
	wg     sync.WaitGroup
}

// NewController creates a controller speaking through the given
// synthesizer. The default voice follows ChooseDefaultVoice.
func NewController(synth Synthesizer, callbacks Callbacks) *Controller {
	return &Controller{
		synth:     synth,
		callbacks: callbacks,
		voice:     ChooseDefaultVoice(synth.Voices()),
	}
}

// Speak cancels any in-flight utterance, strips lesson markup from text and
// speaks it, associating the lifecycle callbacks with id.
func (c *Controller) Speak(text, id string) {
	cleaned := CleanMarkup(text)
	if ValidateUtteranceText(cleaned) != nil {
		return
	}

	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.gen++
	gen := c.gen
	superseded := c.playingID
	c.playingID = id

	u := Utterance{
		Text:  cleaned,
		Voice: c.voice,
		Rate:  c.rateLocked(),
	}
	c.mu.Unlock()

	// The superseded goroutine sees a stale generation and stays silent, so
	// its indicator is cleared here before the new one starts.
	if superseded != "" && c.callbacks.OnEnd != nil {
		c.callbacks.OnEnd(superseded)
	}
	if c.callbacks.OnStart != nil {
		c.callbacks.OnStart(id)
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		err := c.synth.Speak(ctx, u)
		cancel()

		c.mu.Lock()
		stale := gen != c.gen
		if !stale {
			c.playingID = ""
		}
		c.mu.Unlock()
		if stale {
			return
		}

		if err != nil && !errors.Is(err, context.Canceled) {
			if c.callbacks.OnError != nil {
				c.callbacks.OnError(id, err)
			}
			return
		}
		if c.callbacks.OnEnd != nil {
			c.callbacks.OnEnd(id)
		}
	}()
}

// Stop cancels the current utterance, if any, and clears its indicator.
func (c *Controller) Stop() {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.gen++
	stopped := c.playingID
	c.playingID = ""
	c.mu.Unlock()

	if stopped != "" && c.callbacks.OnEnd != nil {
		c.callbacks.OnEnd(stopped)
	}
}

// PlayingID returns the identifier of the currently speaking item, or "".
func (c *Controller) PlayingID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playingID
}

// SetSlow toggles the global slow-rate mode.
func (c *Controller) SetSlow(slow bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.slow = slow
}

// Slow reports whether slow mode is on.
func (c *Controller) Slow() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.slow
}

// Rate returns the active rate multiplier.
func (c *Controller) Rate() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rateLocked()
}

func (c *Controller) rateLocked() float64 {
	if c.slow {
		return SlowRate
	}
	return NormalRate
}

// SetVoice changes the voice for subsequent utterances.
func (c *Controller) SetVoice(v Voice) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.voice = v
}

// Voice returns the selected voice.
func (c *Controller) Voice() Voice {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.voice
}

// Close stops playback and waits for the goroutine to drain.
func (c *Controller) Close() {
	c.Stop()
	c.wg.Wait()
}
