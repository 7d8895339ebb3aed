package speech

import (
	"errors"
	"sync"
	"testing"
	"time"
)

// recorder collects lifecycle callbacks.
type recorder struct {
	mu     sync.Mutex
	starts []string
	ends   []string
	errs   []string
}

func (r *recorder) callbacks() Callbacks {
	return Callbacks{
		OnStart: func(id string) {
			r.mu.Lock()
			r.starts = append(r.starts, id)
			r.mu.Unlock()
		},
		OnEnd: func(id string) {
			r.mu.Lock()
			r.ends = append(r.ends, id)
			r.mu.Unlock()
		},
		OnError: func(id string, err error) {
			r.mu.Lock()
			r.errs = append(r.errs, id)
			r.mu.Unlock()
		},
	}
}

func (r *recorder) endCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ends)
}

func (r *recorder) errCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.errs)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestControllerSpeakTracksPlayingID(t *testing.T) {
	mock := &mockSynthesizer{name: "mock"}
	rec := &recorder{}
	c := NewController(mock, rec.callbacks())
	defer c.Close()

	c.Speak("cat", "0-1")

	if got := c.PlayingID(); got != "0-1" {
		t.Errorf("PlayingID() = %q, want \"0-1\"", got)
	}

	waitFor(t, func() bool { return rec.endCount() == 1 })
	if got := c.PlayingID(); got != "" {
		t.Errorf("PlayingID() after end = %q, want empty", got)
	}
}

func TestControllerNewSpeakCancelsPrevious(t *testing.T) {
	mock := &mockSynthesizer{
		name:    "mock",
		block:   make(chan struct{}),
		started: make(chan struct{}, 2),
	}
	rec := &recorder{}
	c := NewController(mock, rec.callbacks())
	defer c.Close()

	c.Speak("one", "0-1")
	<-mock.started
	if got := c.PlayingID(); got != "0-1" {
		t.Fatalf("PlayingID() = %q, want \"0-1\"", got)
	}

	// A second request takes over the single playing slot; the first
	// utterance is canceled rather than queued.
	c.Speak("two", "0-2")
	<-mock.started
	if got := c.PlayingID(); got != "0-2" {
		t.Errorf("PlayingID() = %q, want \"0-2\"", got)
	}

	close(mock.block)
	waitFor(t, func() bool { return rec.endCount() >= 2 })
	// The superseded ID ends exactly once, cleared by the takeover; its
	// canceled goroutine must not report a second completion.
	rec.mu.Lock()
	defer rec.mu.Unlock()
	oldEnds := 0
	for _, id := range rec.ends {
		if id == "0-1" {
			oldEnds++
		}
	}
	if oldEnds != 1 {
		t.Errorf("superseded utterance ended %d times, want 1", oldEnds)
	}
}

func TestControllerSupersededIndicatorCleared(t *testing.T) {
	mock := &mockSynthesizer{
		name:    "mock",
		block:   make(chan struct{}),
		started: make(chan struct{}, 2),
	}

	// Playing indicators driven purely by the callbacks, the way the GUI
	// tracks its play buttons.
	var mu sync.Mutex
	playing := make(map[string]bool)
	c := NewController(mock, Callbacks{
		OnStart: func(id string) {
			mu.Lock()
			playing[id] = true
			mu.Unlock()
		},
		OnEnd: func(id string) {
			mu.Lock()
			playing[id] = false
			mu.Unlock()
		},
		OnError: func(id string, err error) {
			mu.Lock()
			playing[id] = false
			mu.Unlock()
		},
	})
	defer c.Close()

	c.Speak("one", "0-1")
	<-mock.started
	c.Speak("two", "0-2")
	<-mock.started

	// At most one item shows as playing at any moment.
	mu.Lock()
	if playing["0-1"] {
		t.Error("superseded item 0-1 still marked playing")
	}
	if !playing["0-2"] {
		t.Error("current item 0-2 not marked playing")
	}
	mu.Unlock()

	close(mock.block)
	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return !playing["0-2"]
	})
}

func TestControllerErrorClearsPlaying(t *testing.T) {
	mock := &mockSynthesizer{name: "mock", speakErr: errors.New("engine down")}
	rec := &recorder{}
	c := NewController(mock, rec.callbacks())
	defer c.Close()

	c.Speak("cat", "0-1")

	waitFor(t, func() bool { return rec.errCount() == 1 })
	if got := c.PlayingID(); got != "" {
		t.Errorf("PlayingID() after error = %q, want empty", got)
	}
	if rec.endCount() != 0 {
		t.Error("failed utterance must not report completion")
	}
}

func TestControllerStripsMarkup(t *testing.T) {
	mock := &mockSynthesizer{name: "mock"}
	rec := &recorder{}
	c := NewController(mock, rec.callbacks())
	defer c.Close()

	c.Speak("[sh]", "0-0")
	waitFor(t, func() bool { return mock.calls() == 1 })

	if got := mock.last().Text; got != "sh" {
		t.Errorf("utterance text = %q, want \"sh\"", got)
	}
}

func TestControllerIgnoresEmptyText(t *testing.T) {
	mock := &mockSynthesizer{name: "mock"}
	rec := &recorder{}
	c := NewController(mock, rec.callbacks())
	defer c.Close()

	c.Speak("  ", "0-0")
	c.Speak("[]", "0-1")

	time.Sleep(20 * time.Millisecond)
	if mock.calls() != 0 {
		t.Errorf("Speak() called engine %d times for empty text, want 0", mock.calls())
	}
	if c.PlayingID() != "" {
		t.Error("empty text must not mark anything as playing")
	}
}

func TestControllerRates(t *testing.T) {
	mock := &mockSynthesizer{name: "mock"}
	c := NewController(mock, Callbacks{})
	defer c.Close()

	if got := c.Rate(); got != NormalRate {
		t.Errorf("Rate() = %v, want %v", got, NormalRate)
	}

	c.SetSlow(true)
	if got := c.Rate(); got != SlowRate {
		t.Errorf("Rate() slow = %v, want %v", got, SlowRate)
	}

	c.Speak("cat", "0-0")
	waitFor(t, func() bool { return mock.calls() == 1 })
	if got := mock.last().Rate; got != SlowRate {
		t.Errorf("utterance rate = %v, want %v", got, SlowRate)
	}
}

func TestControllerDefaultVoice(t *testing.T) {
	mock := &mockSynthesizer{name: "mock"}
	c := NewController(mock, Callbacks{})
	defer c.Close()

	if got := c.Voice().ID; got != "mock-us" {
		t.Errorf("Voice() = %q, want \"mock-us\"", got)
	}

	c.SetVoice(Voice{ID: "other", Lang: "en-US"})
	c.Speak("cat", "0-0")
	waitFor(t, func() bool { return mock.calls() == 1 })
	if got := mock.last().Voice.ID; got != "other" {
		t.Errorf("utterance voice = %q, want \"other\"", got)
	}
}

func TestControllerStop(t *testing.T) {
	mock := &mockSynthesizer{
		name:    "mock",
		block:   make(chan struct{}),
		started: make(chan struct{}, 1),
	}
	rec := &recorder{}
	c := NewController(mock, rec.callbacks())
	defer c.Close()

	c.Speak("cat", "0-1")
	<-mock.started

	c.Stop()
	if got := c.PlayingID(); got != "" {
		t.Errorf("PlayingID() after stop = %q, want empty", got)
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if len(rec.ends) != 1 || rec.ends[0] != "0-1" {
		t.Errorf("ends after stop = %v, want [0-1]", rec.ends)
	}
}
