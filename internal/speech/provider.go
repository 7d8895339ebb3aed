package speech

import (
	"context"
	"fmt"
	"log"
)

// Utterance is one request to speak a piece of text.
type Utterance struct {
	Text  string  // cleaned text, ready for the engine
	Voice Voice   // selected voice; zero value means provider default
	Rate  float64 // speed multiplier relative to the engine's natural rate
}

// Synthesizer defines the interface for text-to-speech providers. Speak
// blocks until playback finishes, fails, or the context is canceled.
type Synthesizer interface {
	// Speak synthesizes and plays the utterance
	Speak(ctx context.Context, u Utterance) error

	// Voices returns the voices this provider offers
	Voices() []Voice

	// Name returns the provider name
	Name() string

	// IsAvailable checks if the provider is properly configured and available
	IsAvailable() error
}

// Config holds common configuration for speech providers
type Config struct {
	Provider string // Provider name: "espeak", "openai" or "genai"
	CacheDir string // Directory for synthesized audio files

	// OpenAI-specific settings
	OpenAIKey   string
	OpenAIModel string  // "tts-1", "tts-1-hd", or "gpt-4o-mini-tts"
	OpenAIVoice string  // "alloy", "ash", "coral", "echo", "nova", ...
	OpenAISpeed float64 // 0.25 to 4.0, applied on top of the utterance rate

	// Google GenAI settings
	GenAIKey   string
	GenAIModel string // e.g. "gemini-2.5-flash-preview-tts"
	GenAIVoice string // prebuilt voice name, e.g. "Kore"
}

// DefaultProviderConfig returns default configuration
func DefaultProviderConfig() *Config {
	return &Config{
		Provider:    "espeak",
		CacheDir:    "./.speech_cache",
		OpenAIModel: "gpt-4o-mini-tts",
		OpenAIVoice: "nova",
		OpenAISpeed: 1.0,
		GenAIModel:  "gemini-2.5-flash-preview-tts",
		GenAIVoice:  "Kore",
	}
}

// NewSynthesizer creates the appropriate speech provider based on
// configuration. Remote providers are wrapped in a circuit breaker.
func NewSynthesizer(config *Config) (Synthesizer, error) {
	if config == nil {
		config = DefaultProviderConfig()
	}

	switch config.Provider {
	case "espeak":
		return NewESpeakSynthesizer(nil)

	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		s, err := NewOpenAISynthesizer(config)
		if err != nil {
			return nil, err
		}
		return NewBreakerSynthesizer(s), nil

	case "genai":
		if config.GenAIKey == "" {
			return nil, fmt.Errorf("GenAI API key is required")
		}
		s, err := NewGenAISynthesizer(config)
		if err != nil {
			return nil, err
		}
		return NewBreakerSynthesizer(s), nil

	default:
		return nil, fmt.Errorf("unknown speech provider: %s", config.Provider)
	}
}

// SynthesizerWithFallback wraps a primary provider with a fallback option
type SynthesizerWithFallback struct {
	primary  Synthesizer
	fallback Synthesizer
}

// NewSynthesizerWithFallback creates a provider that falls back to secondary
// if primary fails
func NewSynthesizerWithFallback(primary, fallback Synthesizer) Synthesizer {
	return &SynthesizerWithFallback{
		primary:  primary,
		fallback: fallback,
	}
}

// Speak tries the primary provider first, falls back to secondary on error
func (s *SynthesizerWithFallback) Speak(ctx context.Context, u Utterance) error {
	err := s.primary.Speak(ctx, u)
	if err != nil && ctx.Err() == nil {
		log.Printf("Primary provider (%s) failed: %v. Falling back to %s",
			s.primary.Name(), err, s.fallback.Name())
		return s.fallback.Speak(ctx, u)
	}
	return err
}

// Precache fills the primary provider's cache
func (s *SynthesizerWithFallback) Precache(ctx context.Context, u Utterance) error {
	return Precache(ctx, s.primary, u)
}

// Voices returns the primary provider's voices
func (s *SynthesizerWithFallback) Voices() []Voice {
	return s.primary.Voices()
}

// Name returns the provider name
func (s *SynthesizerWithFallback) Name() string {
	return fmt.Sprintf("%s (fallback: %s)", s.primary.Name(), s.fallback.Name())
}

// IsAvailable checks if at least one provider is available
func (s *SynthesizerWithFallback) IsAvailable() error {
	primaryErr := s.primary.IsAvailable()
	if primaryErr == nil {
		return nil
	}

	fallbackErr := s.fallback.IsAvailable()
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("both providers unavailable: primary=%v, fallback=%v",
		primaryErr, fallbackErr)
}
