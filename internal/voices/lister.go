package voices

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"

	"codeberg.org/snonux/spellcast/internal/speech"
)

// Lister prints the voices of the supported providers and, given an API
// key, the OpenAI TTS models available to it.
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a new voice lister
func NewLister(apiKey string) *Lister {
	l := &Lister{apiKey: apiKey}
	if apiKey != "" {
		l.client = openai.NewClient(apiKey)
	}
	return l
}

// ListVoices prints all selectable voices grouped by provider.
func (l *Lister) ListVoices() error {
	fmt.Println("Available voices:")

	if es, err := speech.NewESpeakSynthesizer(nil); err == nil {
		printGroup("espeak-ng", es.Voices())
	} else {
		fmt.Println("\nespeak-ng: not installed")
	}
	printGroup("openai", speech.OpenAIVoices())
	printGroup("genai", speech.GenAIVoices())

	if def := speech.ChooseDefaultVoice(speech.GenAIVoices()); def.ID != "" {
		fmt.Printf("\nDefault voice: %s (%s)\n", def.Name, def.Lang)
	}

	return nil
}

func printGroup(title string, vs []speech.Voice) {
	fmt.Printf("\n%s:\n", title)
	for _, v := range vs {
		fmt.Printf("  %-12s %s (%s)\n", v.ID, v.Name, v.Lang)
	}
}

// ListModels lists the OpenAI TTS models available to the configured key.
func (l *Lister) ListModels() error {
	if l.apiKey == "" {
		return fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .spellcast.yaml")
	}

	models, err := l.client.ListModels(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	ttsModels := []string{}
	for _, model := range models.Models {
		if strings.Contains(model.ID, "tts") || strings.Contains(model.ID, "audio") {
			ttsModels = append(ttsModels, model.ID)
		}
	}
	sort.Strings(ttsModels)

	fmt.Println("Text-to-Speech (TTS) Models:")
	if len(ttsModels) == 0 {
		fmt.Println("  No TTS models found")
	}
	for _, model := range ttsModels {
		fmt.Printf("  %s\n", model)
	}

	return nil
}
