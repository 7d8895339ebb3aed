package speech

import (
	"context"
	"errors"
	"testing"
)

func TestBreakerTripsAfterConsecutiveFailures(t *testing.T) {
	mock := &mockSynthesizer{name: "mock", speakErr: errors.New("api down")}
	b := NewBreakerSynthesizer(mock)

	ctx := context.Background()
	u := Utterance{Text: "cat"}

	for i := 0; i < 3; i++ {
		if err := b.Speak(ctx, u); err == nil {
			t.Fatalf("Speak() %d expected error", i)
		}
	}

	if err := b.IsAvailable(); err == nil {
		t.Error("IsAvailable() should report an open breaker")
	}

	// The open breaker rejects without calling the provider.
	before := mock.calls()
	if err := b.Speak(ctx, u); err == nil {
		t.Error("Speak() through an open breaker should fail")
	}
	if mock.calls() != before {
		t.Error("open breaker must not call the provider")
	}
}

func TestBreakerPassesSuccess(t *testing.T) {
	mock := &mockSynthesizer{name: "mock"}
	b := NewBreakerSynthesizer(mock)

	if err := b.Speak(context.Background(), Utterance{Text: "cat"}); err != nil {
		t.Errorf("Speak() unexpected error: %v", err)
	}
	if err := b.IsAvailable(); err != nil {
		t.Errorf("IsAvailable() unexpected error: %v", err)
	}
	if b.Name() != "mock" {
		t.Errorf("Name() = %q, want \"mock\"", b.Name())
	}
}

func TestBreakerIgnoresCancellation(t *testing.T) {
	mock := &mockSynthesizer{name: "mock", speakErr: errors.New("interrupted")}
	b := NewBreakerSynthesizer(mock)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Canceled utterances happen every time the user taps a new item; they
	// must not trip the breaker.
	for i := 0; i < 5; i++ {
		_ = b.Speak(ctx, Utterance{Text: "cat"})
	}

	if err := b.IsAvailable(); err != nil {
		t.Errorf("cancellations tripped the breaker: %v", err)
	}
}
