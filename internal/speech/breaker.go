package speech

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerSynthesizer wraps a remote provider in a circuit breaker so a
// flapping API stops being called for a while instead of stalling every
// click on a play button.
type BreakerSynthesizer struct {
	inner   Synthesizer
	breaker *gobreaker.CircuitBreaker
}

// NewBreakerSynthesizer wraps the given provider
func NewBreakerSynthesizer(inner Synthesizer) Synthesizer {
	settings := gobreaker.Settings{
		Name:        inner.Name() + "-tts",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	}

	return &BreakerSynthesizer{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

// Speak forwards to the inner provider through the breaker. Cancellation is
// not counted as a failure.
func (b *BreakerSynthesizer) Speak(ctx context.Context, u Utterance) error {
	_, err := b.breaker.Execute(func() (interface{}, error) {
		if err := b.inner.Speak(ctx, u); err != nil {
			if ctx.Err() != nil {
				return nil, nil
			}
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("speech provider %s: %w", b.inner.Name(), err)
	}
	return ctx.Err()
}

// Precache forwards to the inner provider. Bulk cache fills do not go
// through the breaker.
func (b *BreakerSynthesizer) Precache(ctx context.Context, u Utterance) error {
	return Precache(ctx, b.inner, u)
}

// Voices returns the inner provider's voices
func (b *BreakerSynthesizer) Voices() []Voice {
	return b.inner.Voices()
}

// Name returns the provider name
func (b *BreakerSynthesizer) Name() string {
	return b.inner.Name()
}

// IsAvailable reports an open breaker as unavailable
func (b *BreakerSynthesizer) IsAvailable() error {
	if b.breaker.State() == gobreaker.StateOpen {
		return fmt.Errorf("speech provider %s temporarily disabled after repeated failures", b.inner.Name())
	}
	return b.inner.IsAvailable()
}
