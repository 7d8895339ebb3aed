package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile        string
	Lesson         string
	SpeechProvider string
	Voice          string
	Slow           bool
	CacheDir       string
	Precache       bool
	ListVoices     bool
	ListModels     bool
	GUIMode        bool

	// OpenAI flags
	OpenAIModel string
	OpenAIVoice string
	OpenAISpeed float64

	// GenAI flags
	GenAIModel string
	GenAIVoice string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		SpeechProvider: "espeak",
		OpenAIModel:    "gpt-4o-mini-tts",
		OpenAISpeed:    1.0,
		GenAIModel:     "gemini-2.5-flash-preview-tts",
		GenAIVoice:     "Kore",
	}
}
