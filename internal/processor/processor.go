package processor

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"codeberg.org/snonux/spellcast/internal/catalog"
	"codeberg.org/snonux/spellcast/internal/cli"
	"codeberg.org/snonux/spellcast/internal/gui"
	"codeberg.org/snonux/spellcast/internal/speech"
)

// Processor handles the non-GUI entry points: speaking a single word,
// filling the audio cache for a whole lesson and launching the GUI.
type Processor struct {
	flags *cli.Flags

	// newSynthesizer is swappable in tests
	newSynthesizer func(*speech.Config) (speech.Synthesizer, error)
}

// NewProcessor creates a new processor
func NewProcessor(flags *cli.Flags) *Processor {
	return &Processor{
		flags:          flags,
		newSynthesizer: speech.NewSynthesizer,
	}
}

// SpeechConfig builds the provider configuration from flags and the config
// file. Flag values win over the config file, the config file wins over the
// built-in defaults.
func (p *Processor) SpeechConfig() *speech.Config {
	config := speech.DefaultProviderConfig()

	config.Provider = p.flags.SpeechProvider
	config.OpenAIKey = cli.GetOpenAIKey()
	config.GenAIKey = cli.GetGenAIKey()
	config.OpenAIModel = p.flags.OpenAIModel
	config.OpenAIVoice = p.flags.OpenAIVoice
	config.OpenAISpeed = p.flags.OpenAISpeed
	config.GenAIModel = p.flags.GenAIModel
	config.GenAIVoice = p.flags.GenAIVoice

	if p.flags.CacheDir != "" {
		config.CacheDir = p.flags.CacheDir
	}

	// Config file values apply where the flag kept its default
	if p.flags.SpeechProvider == "espeak" && viper.IsSet("speech.provider") {
		config.Provider = viper.GetString("speech.provider")
	}
	if p.flags.OpenAIModel == "gpt-4o-mini-tts" && viper.IsSet("speech.openai_model") {
		config.OpenAIModel = viper.GetString("speech.openai_model")
	}
	if p.flags.OpenAIVoice == "" && viper.IsSet("speech.openai_voice") {
		config.OpenAIVoice = viper.GetString("speech.openai_voice")
	}
	if p.flags.OpenAISpeed == 1.0 && viper.IsSet("speech.openai_speed") {
		config.OpenAISpeed = viper.GetFloat64("speech.openai_speed")
	}
	if p.flags.GenAIVoice == "Kore" && viper.IsSet("speech.genai_voice") {
		config.GenAIVoice = viper.GetString("speech.genai_voice")
	}

	return config
}

// LoadCatalog loads the configured lesson file, or the built-in demo lesson
// when none is configured.
func (p *Processor) LoadCatalog() (*catalog.Catalog, error) {
	path := p.flags.Lesson
	if path == "" && viper.IsSet("lesson.file") {
		path = viper.GetString("lesson.file")
	}
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(path)
}

// SpeakWord speaks a single word on the command line and exits.
func (p *Processor) SpeakWord(word string) error {
	text := speech.CleanMarkup(word)
	if err := speech.ValidateUtteranceText(text); err != nil {
		return fmt.Errorf("invalid word %q: %w", word, err)
	}

	synth, err := p.newSynthesizer(p.SpeechConfig())
	if err != nil {
		return err
	}

	u := speech.Utterance{
		Text:  text,
		Voice: p.chooseVoice(synth),
		Rate:  speech.NormalRate,
	}
	if p.flags.Slow {
		u.Rate = speech.SlowRate
	}

	fmt.Printf("Speaking %q via %s\n", text, synth.Name())
	return synth.Speak(context.Background(), u)
}

// Precache synthesizes audio for every lesson item at both speaking rates so
// classroom playback never waits on the network.
func (p *Processor) Precache() error {
	cat, err := p.LoadCatalog()
	if err != nil {
		return err
	}

	synth, err := p.newSynthesizer(p.SpeechConfig())
	if err != nil {
		return err
	}
	if _, ok := synth.(speech.Precacher); !ok {
		return fmt.Errorf("provider %s has no audio cache, nothing to precache", synth.Name())
	}

	voice := p.chooseVoice(synth)
	rates := []float64{speech.NormalRate, speech.SlowRate}

	total := 0
	cachedCount := 0
	errorCount := 0
	ctx := context.Background()

	for _, section := range cat.Sections {
		for _, item := range section.Items {
			text := speech.CleanMarkup(item)
			if speech.ValidateUtteranceText(text) != nil {
				continue
			}
			total++

			fmt.Printf("Caching %s: %s\n", section.Title, text)
			for _, rate := range rates {
				u := speech.Utterance{Text: text, Voice: voice, Rate: rate}
				if err := speech.Precache(ctx, synth, u); err != nil {
					fmt.Fprintf(os.Stderr, "  Error caching %q at rate %.1f: %v\n", text, rate, err)
					errorCount++
					continue
				}
				cachedCount++
			}
		}
	}

	fmt.Printf("\n=== Precache Summary ===\n")
	fmt.Printf("Lesson items: %d\n", total)
	fmt.Printf("Utterances cached: %d\n", cachedCount)
	if errorCount > 0 {
		fmt.Printf("Errors: %d\n", errorCount)
	}
	fmt.Printf("========================\n")

	if errorCount > 0 {
		return fmt.Errorf("%d utterances failed to cache", errorCount)
	}
	return nil
}

// RunGUIMode launches the GUI application
func (p *Processor) RunGUIMode() error {
	cat, err := p.LoadCatalog()
	if err != nil {
		return err
	}

	guiConfig := &gui.Config{
		Catalog:      cat,
		SpeechConfig: p.SpeechConfig(),
		VoiceID:      p.flags.Voice,
		StartSlow:    p.flags.Slow,
	}

	app := gui.New(guiConfig)
	app.Run()

	return nil
}

// chooseVoice resolves the --voice flag against the provider's roster,
// falling back to the provider's default pick.
func (p *Processor) chooseVoice(synth speech.Synthesizer) speech.Voice {
	voices := synth.Voices()
	if p.flags.Voice != "" {
		for _, v := range voices {
			if v.ID == p.flags.Voice {
				return v
			}
		}
		fmt.Fprintf(os.Stderr, "Warning: voice %q not offered by %s, using default\n",
			p.flags.Voice, synth.Name())
	}
	return speech.ChooseDefaultVoice(voices)
}
