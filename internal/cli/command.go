package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/spellcast/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "spellcast [word]",
		Short: "Dictation and spelling practice",
		Long: `spellcast presents word lists for dictation practice.

It speaks words aloud via espeak-ng or a remote TTS provider, lets the
teacher annotate the screen freehand, and turns any word into a
letter-tile spelling puzzle.

Examples:
  spellcast                       # Launch interactive GUI (default)
  spellcast ship                  # Speak a single word via CLI
  spellcast --lesson week3.yaml   # Load a custom lesson file
  spellcast --precache            # Pre-synthesise audio for the lesson`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	home, _ := os.UserHomeDir()
	defaultCacheDir := filepath.Join(home, ".cache", "spellcast", "audio")

	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.spellcast.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.Lesson, "lesson", "l", "", "Lesson file (YAML); built-in demo lesson when empty")
	cmd.Flags().StringVar(&flags.SpeechProvider, "speech-provider", flags.SpeechProvider, "Speech provider: espeak, openai or genai")
	cmd.Flags().StringVar(&flags.Voice, "voice", "", "Voice ID (see --list-voices)")
	cmd.Flags().BoolVar(&flags.Slow, "slow", false, "Start with the slow speaking rate selected")
	cmd.Flags().StringVar(&flags.CacheDir, "cache-dir", defaultCacheDir, "Directory for cached remote TTS audio")
	cmd.Flags().BoolVar(&flags.Precache, "precache", false, "Synthesise audio for every lesson item, then exit")
	cmd.Flags().BoolVar(&flags.ListVoices, "list-voices", false, "List available voices per provider")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI TTS models for the current API key")

	// OpenAI flags
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI TTS model: tts-1, tts-1-hd, gpt-4o-mini-tts")
	cmd.Flags().StringVar(&flags.OpenAIVoice, "openai-voice", "", "OpenAI voice: alloy, ash, coral, echo, fable, nova, onyx, sage, shimmer")
	cmd.Flags().Float64Var(&flags.OpenAISpeed, "openai-speed", flags.OpenAISpeed, "OpenAI speech speed (0.25 to 4.0)")

	// GenAI flags
	cmd.Flags().StringVar(&flags.GenAIModel, "genai-model", flags.GenAIModel, "Gemini TTS model")
	cmd.Flags().StringVar(&flags.GenAIVoice, "genai-voice", flags.GenAIVoice, "Gemini prebuilt voice name")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("speech.provider", cmd.Flags().Lookup("speech-provider"))
	viper.BindPFlag("speech.voice", cmd.Flags().Lookup("voice"))
	viper.BindPFlag("speech.cache_dir", cmd.Flags().Lookup("cache-dir"))
	viper.BindPFlag("speech.openai_model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("speech.openai_voice", cmd.Flags().Lookup("openai-voice"))
	viper.BindPFlag("speech.openai_speed", cmd.Flags().Lookup("openai-speed"))
	viper.BindPFlag("speech.genai_model", cmd.Flags().Lookup("genai-model"))
	viper.BindPFlag("speech.genai_voice", cmd.Flags().Lookup("genai-voice"))
	viper.BindPFlag("lesson.file", cmd.Flags().Lookup("lesson"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".spellcast" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".spellcast")
	}

	// Environment variables
	viper.SetEnvPrefix("SPELLCAST")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("speech.openai_key")
}

// GetGenAIKey retrieves the Gemini API key from environment or config
func GetGenAIKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("speech.genai_key")
}
