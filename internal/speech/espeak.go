package speech

import (
	"context"
	"fmt"
	"os/exec"
)

// ESpeakConfig holds configuration for the espeak-ng engine
type ESpeakConfig struct {
	Voice     string // Voice variant (e.g., "en-us", "en-us+f3")
	Speed     int    // Natural speech speed in words per minute (default: 170)
	Pitch     int    // Pitch adjustment, 0 to 99 (default: 50)
	Amplitude int    // Volume/amplitude, 0 to 200 (default: 100)
	WordGap   int    // Gap between words in 10ms units (default: 0)
}

// DefaultESpeakConfig returns the default configuration for a U.S. English
// voice
func DefaultESpeakConfig() *ESpeakConfig {
	return &ESpeakConfig{
		Voice:     "en-us",
		Speed:     170,
		Pitch:     50,
		Amplitude: 100,
		WordGap:   0,
	}
}

// ESpeak provides an interface to the espeak-ng text-to-speech engine.
// Unlike file-based providers it speaks straight to the sound device.
type ESpeak struct {
	config *ESpeakConfig
}

// NewESpeak creates a new ESpeak instance with the given configuration
func NewESpeak(config *ESpeakConfig) (*ESpeak, error) {
	// Check if espeak-ng is installed
	if err := checkESpeakInstalled(); err != nil {
		return nil, err
	}

	if config == nil {
		config = DefaultESpeakConfig()
	}

	return &ESpeak{config: config}, nil
}

// Speak speaks the given text at the given rate multiplier, blocking until
// playback ends or ctx is canceled.
func (e *ESpeak) Speak(ctx context.Context, text, voice string, rate float64) error {
	if text == "" {
		return fmt.Errorf("text cannot be empty")
	}
	if voice == "" {
		voice = e.config.Voice
	}

	cmd := exec.CommandContext(ctx, "espeak-ng", e.speakArgs(text, voice, rate)...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("espeak-ng failed: %w\nOutput: %s", err, string(output))
	}
	return nil
}

// speakArgs builds the espeak-ng argument list. The text goes after "--" so
// a word starting with a dash is never parsed as an option.
func (e *ESpeak) speakArgs(text, voice string, rate float64) []string {
	args := []string{
		"-v", voice,
		"-s", fmt.Sprintf("%d", scaledSpeed(e.config.Speed, rate)),
		"-p", fmt.Sprintf("%d", e.config.Pitch),
		"-a", fmt.Sprintf("%d", e.config.Amplitude),
	}
	if e.config.WordGap > 0 {
		args = append(args, "-g", fmt.Sprintf("%d", e.config.WordGap))
	}
	return append(args, "--", text)
}

// scaledSpeed maps a rate multiplier onto espeak's words-per-minute scale,
// clamped to the engine's supported range.
func scaledSpeed(base int, rate float64) int {
	if rate <= 0 {
		rate = 1.0
	}
	wpm := int(float64(base) * rate)
	if wpm < 80 {
		wpm = 80
	} else if wpm > 450 {
		wpm = 450
	}
	return wpm
}

// SetSpeed updates the natural speech speed
func (e *ESpeak) SetSpeed(speed int) {
	if speed < 80 {
		speed = 80
	} else if speed > 450 {
		speed = 450
	}
	e.config.Speed = speed
}

// SetPitch updates the pitch (0-99, 50 is default)
func (e *ESpeak) SetPitch(pitch int) {
	if pitch < 0 {
		pitch = 0
	} else if pitch > 99 {
		pitch = 99
	}
	e.config.Pitch = pitch
}

// SetAmplitude updates the volume/amplitude (0-200, 100 is default)
func (e *ESpeak) SetAmplitude(amplitude int) {
	if amplitude < 0 {
		amplitude = 0
	} else if amplitude > 200 {
		amplitude = 200
	}
	e.config.Amplitude = amplitude
}

// checkESpeakInstalled verifies that espeak-ng is available on the system
func checkESpeakInstalled() error {
	cmd := exec.Command("espeak-ng", "--version")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("espeak-ng is not installed or not in PATH: %w", err)
	}
	return nil
}

// espeakVoices lists the U.S. English voice variants offered in the voice
// selector.
func espeakVoices() []Voice {
	return []Voice{
		{ID: "en-us", Name: "US English", Lang: "en-US"},
		{ID: "en-us+m3", Name: "US English male 3", Lang: "en-US"},
		{ID: "en-us+f3", Name: "US English female 3", Lang: "en-US"},
		{ID: "en-us+f4", Name: "US English female 4", Lang: "en-US"},
		{ID: "en", Name: "English", Lang: "en-GB"},
	}
}
