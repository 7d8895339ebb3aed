package speech

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAISynthesizer implements Synthesizer for OpenAI TTS. Synthesis goes
// to a content-addressed mp3 cache; playback uses the platform player.
type OpenAISynthesizer struct {
	client *openai.Client
	config *Config
}

// NewOpenAISynthesizer creates a new OpenAI TTS provider
func NewOpenAISynthesizer(config *Config) (*OpenAISynthesizer, error) {
	if config.OpenAIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	return &OpenAISynthesizer{
		client: openai.NewClient(config.OpenAIKey),
		config: config,
	}, nil
}

// Speak synthesizes the utterance via the OpenAI API and plays it back
func (s *OpenAISynthesizer) Speak(ctx context.Context, u Utterance) error {
	if err := ValidateUtteranceText(u.Text); err != nil {
		return err
	}

	file, err := s.synthesize(ctx, u)
	if err != nil {
		return err
	}
	return PlayFile(ctx, file)
}

// Precache synthesizes the utterance into the audio cache without playback
func (s *OpenAISynthesizer) Precache(ctx context.Context, u Utterance) error {
	if err := ValidateUtteranceText(u.Text); err != nil {
		return err
	}
	_, err := s.synthesize(ctx, u)
	return err
}

// synthesize returns the path of the cached mp3 for the utterance, calling
// the API only on a cache miss.
func (s *OpenAISynthesizer) synthesize(ctx context.Context, u Utterance) (string, error) {
	voice := u.Voice.ID
	if voice == "" {
		voice = s.config.OpenAIVoice
	}
	speed := clampSpeed(s.config.OpenAISpeed * u.Rate)

	file := cacheFilePath(s.config.CacheDir, ".mp3",
		u.Text, s.config.OpenAIModel, voice, fmt.Sprintf("%.2f", speed))
	if cached(file) {
		return file, nil
	}

	req := openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(s.config.OpenAIModel),
		Input:          u.Text,
		Voice:          openai.SpeechVoice(voice),
		Speed:          speed,
		ResponseFormat: openai.SpeechResponseFormatMp3,
	}

	response, err := s.client.CreateSpeech(ctx, req)
	if err != nil {
		if strings.Contains(err.Error(), "does not have access to model") {
			return "", fmt.Errorf("OpenAI TTS API error: %w\nNote: The %s model requires access. Try --openai-model tts-1-hd instead", err, s.config.OpenAIModel)
		}
		return "", fmt.Errorf("OpenAI TTS API error: %w", err)
	}
	defer response.Close()

	data, err := io.ReadAll(response)
	if err != nil {
		return "", fmt.Errorf("failed to read audio data: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("no audio data received from OpenAI")
	}

	if err := writeCacheFile(file, data); err != nil {
		return "", fmt.Errorf("failed to write audio cache: %w", err)
	}
	return file, nil
}

// clampSpeed keeps the speed inside the API's accepted range.
func clampSpeed(speed float64) float64 {
	if speed < 0.25 {
		return 0.25
	}
	if speed > 4.0 {
		return 4.0
	}
	return speed
}

// Voices returns the OpenAI voice roster
func (s *OpenAISynthesizer) Voices() []Voice {
	return OpenAIVoices()
}

// OpenAIVoices lists the OpenAI TTS voices. Enumerable without a key.
func OpenAIVoices() []Voice {
	names := []string{
		"alloy", "ash", "ballad", "coral", "echo", "fable",
		"onyx", "nova", "sage", "shimmer", "verse",
	}
	voices := make([]Voice, len(names))
	for i, n := range names {
		voices[i] = Voice{ID: n, Name: "OpenAI " + n, Lang: "en-US"}
	}
	return voices
}

// Name returns the provider name
func (s *OpenAISynthesizer) Name() string {
	return "openai"
}

// IsAvailable checks if the OpenAI API is accessible
func (s *OpenAISynthesizer) IsAvailable() error {
	if s.config.OpenAIKey == "" {
		return fmt.Errorf("OpenAI API key not configured")
	}

	// A test API call would use credits; having a key is good enough here
	return nil
}
