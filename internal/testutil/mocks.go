package testutil

import (
	"context"
	"sync"

	"codeberg.org/snonux/spellcast/internal/speech"
)

// MockSynthesizer is a thread-safe speech.Synthesizer for tests. It records
// every utterance and can be configured to fail.
type MockSynthesizer struct {
	mu sync.Mutex

	SpeakErr     error
	PrecacheErr  error
	VoiceList    []speech.Voice
	ProviderName string

	spoken    []speech.Utterance
	precached []speech.Utterance
}

// NewMockSynthesizer creates a mock with a single en-US voice
func NewMockSynthesizer() *MockSynthesizer {
	return &MockSynthesizer{
		ProviderName: "mock",
		VoiceList: []speech.Voice{
			{ID: "mock-1", Name: "Mock Voice", Lang: "en-US"},
		},
	}
}

// Speak records the utterance
func (m *MockSynthesizer) Speak(ctx context.Context, u speech.Utterance) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SpeakErr != nil {
		return m.SpeakErr
	}
	m.spoken = append(m.spoken, u)
	return nil
}

// Precache records the utterance without marking it spoken
func (m *MockSynthesizer) Precache(ctx context.Context, u speech.Utterance) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PrecacheErr != nil {
		return m.PrecacheErr
	}
	m.precached = append(m.precached, u)
	return nil
}

// Voices returns the configured voice list
func (m *MockSynthesizer) Voices() []speech.Voice {
	return m.VoiceList
}

// Name returns the configured provider name
func (m *MockSynthesizer) Name() string {
	return m.ProviderName
}

// IsAvailable always reports available
func (m *MockSynthesizer) IsAvailable() error {
	return nil
}

// Spoken returns a copy of the recorded utterances
func (m *MockSynthesizer) Spoken() []speech.Utterance {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]speech.Utterance(nil), m.spoken...)
}

// Precached returns a copy of the recorded precache utterances
func (m *MockSynthesizer) Precached() []speech.Utterance {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]speech.Utterance(nil), m.precached...)
}
