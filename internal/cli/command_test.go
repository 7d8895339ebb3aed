package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	// Test basic command properties
	if cmd.Use != "spellcast [word]" {
		t.Errorf("Expected Use to be 'spellcast [word]', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "spelling practice") {
		t.Errorf("Expected Short description to contain 'spelling practice'")
	}

	// Test that flags are set up
	flagTests := []struct {
		name     string
		expected bool
	}{
		{"config", true},
		{"lesson", true},
		{"speech-provider", true},
		{"voice", true},
		{"slow", true},
		{"cache-dir", true},
		{"precache", true},
		{"list-voices", true},
		{"list-models", true},
		{"openai-model", true},
		{"openai-voice", true},
		{"openai-speed", true},
		{"genai-model", true},
		{"genai-voice", true},
	}

	for _, tt := range flagTests {
		t.Run("flag_"+tt.name, func(t *testing.T) {
			var flag *pflag.Flag
			if tt.name == "config" {
				flag = cmd.PersistentFlags().Lookup(tt.name)
			} else {
				flag = cmd.Flags().Lookup(tt.name)
			}
			if flag == nil && tt.expected {
				t.Errorf("Expected flag %s to exist", tt.name)
			}
		})
	}
}

func TestSetupFlags(t *testing.T) {
	cmd := &cobra.Command{}
	flags := NewFlags()

	setupFlags(cmd, flags)

	// Test default values
	cacheFlag := cmd.Flags().Lookup("cache-dir")
	if cacheFlag == nil {
		t.Fatal("cache-dir flag not found")
	}

	home, _ := os.UserHomeDir()
	expectedDefault := filepath.Join(home, ".cache", "spellcast", "audio")
	if cacheFlag.DefValue != expectedDefault {
		t.Errorf("Expected default cache dir to be %s, got %s", expectedDefault, cacheFlag.DefValue)
	}

	providerFlag := cmd.Flags().Lookup("speech-provider")
	if providerFlag == nil {
		t.Fatal("speech-provider flag not found")
	}
	if providerFlag.DefValue != "espeak" {
		t.Errorf("Expected default speech provider to be espeak, got %s", providerFlag.DefValue)
	}
}

func TestInitConfig(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	tests := []struct {
		name      string
		cfgFile   string
		setupFunc func(t *testing.T) string
	}{
		{
			name:    "with config file",
			cfgFile: "test-config.yaml",
			setupFunc: func(t *testing.T) string {
				tmpDir := t.TempDir()
				cfgPath := filepath.Join(tmpDir, "test-config.yaml")
				content := `speech:
  provider: openai
  openai_key: test-key
lesson:
  file: /test/lesson.yaml`
				err := os.WriteFile(cfgPath, []byte(content), 0644)
				if err != nil {
					t.Fatalf("Failed to create test config: %v", err)
				}
				return cfgPath
			},
		},
		{
			name:    "without config file",
			cfgFile: "",
			setupFunc: func(t *testing.T) string {
				return ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset viper for each test
			viper.Reset()

			cfgPath := tt.setupFunc(t)
			if tt.cfgFile != "" && cfgPath != "" {
				tt.cfgFile = cfgPath
			}

			InitConfig(tt.cfgFile)

			// Test environment variable prefix
			os.Setenv("SPELLCAST_TEST_VAR", "test-value")
			defer os.Unsetenv("SPELLCAST_TEST_VAR")

			if viper.GetString("test_var") != "test-value" {
				t.Error("Environment variable not properly loaded")
			}
		})
	}
}

func TestGetOpenAIKey(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	tests := []struct {
		name      string
		envKey    string
		configKey string
		expected  string
	}{
		{
			name:      "from environment",
			envKey:    "env-test-key",
			configKey: "config-test-key",
			expected:  "env-test-key",
		},
		{
			name:      "from config when no env",
			envKey:    "",
			configKey: "config-test-key",
			expected:  "config-test-key",
		},
		{
			name:      "empty when neither set",
			envKey:    "",
			configKey: "",
			expected:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset viper
			viper.Reset()

			// Set up environment
			if tt.envKey != "" {
				os.Setenv("OPENAI_API_KEY", tt.envKey)
				defer os.Unsetenv("OPENAI_API_KEY")
			} else {
				os.Unsetenv("OPENAI_API_KEY")
			}

			// Set up config
			if tt.configKey != "" {
				viper.Set("speech.openai_key", tt.configKey)
			}

			got := GetOpenAIKey()
			if got != tt.expected {
				t.Errorf("GetOpenAIKey() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetGenAIKey(t *testing.T) {
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	viper.Reset()
	os.Unsetenv("GEMINI_API_KEY")

	if got := GetGenAIKey(); got != "" {
		t.Errorf("GetGenAIKey() = %v, want empty", got)
	}

	viper.Set("speech.genai_key", "config-genai-key")
	if got := GetGenAIKey(); got != "config-genai-key" {
		t.Errorf("GetGenAIKey() = %v, want config-genai-key", got)
	}

	os.Setenv("GEMINI_API_KEY", "env-genai-key")
	defer os.Unsetenv("GEMINI_API_KEY")
	if got := GetGenAIKey(); got != "env-genai-key" {
		t.Errorf("GetGenAIKey() = %v, want env-genai-key", got)
	}
}

func TestBindFlagsToViper(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	// Reset viper
	viper.Reset()

	cmd := &cobra.Command{}
	flags := NewFlags()
	setupFlags(cmd, flags)

	// Set some flag values
	cmd.Flags().Set("speech-provider", "genai")
	cmd.Flags().Set("voice", "en-us+f3")
	cmd.Flags().Set("openai-model", "tts-1-hd")

	bindFlagsToViper(cmd)

	// Test that values are bound
	if viper.GetString("speech.provider") != "genai" {
		t.Errorf("Expected speech.provider to be genai, got %s", viper.GetString("speech.provider"))
	}

	if viper.GetString("speech.voice") != "en-us+f3" {
		t.Errorf("Expected speech.voice to be en-us+f3, got %s", viper.GetString("speech.voice"))
	}

	if viper.GetString("speech.openai_model") != "tts-1-hd" {
		t.Errorf("Expected speech.openai_model to be tts-1-hd, got %s", viper.GetString("speech.openai_model"))
	}
}
