package speech

import (
	"context"
)

// ESpeakSynthesizer implements Synthesizer for espeak-ng
type ESpeakSynthesizer struct {
	espeak *ESpeak
}

// NewESpeakSynthesizer creates a new espeak-ng provider
func NewESpeakSynthesizer(config *ESpeakConfig) (Synthesizer, error) {
	espeak, err := NewESpeak(config)
	if err != nil {
		return nil, err
	}

	return &ESpeakSynthesizer{espeak: espeak}, nil
}

// Speak speaks the utterance using espeak-ng
func (s *ESpeakSynthesizer) Speak(ctx context.Context, u Utterance) error {
	if err := ValidateUtteranceText(u.Text); err != nil {
		return err
	}
	return s.espeak.Speak(ctx, u.Text, u.Voice.ID, u.Rate)
}

// Voices returns the espeak voice variants
func (s *ESpeakSynthesizer) Voices() []Voice {
	return espeakVoices()
}

// Name returns the provider name
func (s *ESpeakSynthesizer) Name() string {
	return "espeak-ng"
}

// IsAvailable checks if espeak-ng is installed
func (s *ESpeakSynthesizer) IsAvailable() error {
	return checkESpeakInstalled()
}
