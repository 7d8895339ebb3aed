package speech

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GenAISynthesizer implements Synthesizer for Google's Gemini TTS models.
// The API returns raw PCM, which is wrapped in a WAV header and cached
// before playback.
type GenAISynthesizer struct {
	client *genai.Client
	config *Config
}

// NewGenAISynthesizer creates a new Gemini TTS provider
func NewGenAISynthesizer(config *Config) (*GenAISynthesizer, error) {
	if config.GenAIKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  config.GenAIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GenAISynthesizer{
		client: client,
		config: config,
	}, nil
}

// Speak synthesizes the utterance via the Gemini API and plays it back
func (s *GenAISynthesizer) Speak(ctx context.Context, u Utterance) error {
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
func (s *GenAISynthesizer) Precache(ctx context.Context, u Utterance) error {
	if err := ValidateUtteranceText(u.Text); err != nil {
		return err
	}
	_, err := s.synthesize(ctx, u)
	return err
}

func (s *GenAISynthesizer) synthesize(ctx context.Context, u Utterance) (string, error) {
	voice := u.Voice.ID
	if voice == "" {
		voice = s.config.GenAIVoice
	}

	// Gemini TTS has no speed parameter; pacing is steered via the prompt.
	prompt := u.Text
	if u.Rate > 0 && u.Rate < 0.7 {
		prompt = "Say very slowly and clearly: " + u.Text
	}

	file := cacheFilePath(s.config.CacheDir, ".wav",
		prompt, s.config.GenAIModel, voice)
	if cached(file) {
		return file, nil
	}

	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: voice},
			},
		},
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.config.GenAIModel, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("GenAI TTS API error: %w", err)
	}

	pcm := extractAudioData(resp)
	if len(pcm) == 0 {
		return "", fmt.Errorf("no audio data received from GenAI")
	}

	// 24kHz 16-bit mono PCM is what the TTS models emit.
	if err := writeCacheFile(file, wrapPCMInWAV(pcm, 24000, 1, 16)); err != nil {
		return "", fmt.Errorf("failed to write audio cache: %w", err)
	}
	return file, nil
}

func extractAudioData(resp *genai.GenerateContentResponse) []byte {
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data
			}
		}
	}
	return nil
}

// Voices returns a selection of Gemini prebuilt voices
func (s *GenAISynthesizer) Voices() []Voice {
	return GenAIVoices()
}

// GenAIVoices lists the Gemini prebuilt voices offered in the selector.
// Enumerable without a configured key.
func GenAIVoices() []Voice {
	names := []string{"Kore", "Puck", "Charon", "Fenrir", "Aoede", "Leda"}
	voices := make([]Voice, len(names))
	for i, n := range names {
		voices[i] = Voice{ID: n, Name: "Google " + n, Lang: "en-US"}
	}
	return voices
}

// Name returns the provider name
func (s *GenAISynthesizer) Name() string {
	return "genai"
}

// IsAvailable checks if the GenAI API is accessible
func (s *GenAISynthesizer) IsAvailable() error {
	if s.config.GenAIKey == "" {
		return fmt.Errorf("GenAI API key not configured")
	}
	return nil
}
