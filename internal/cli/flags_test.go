package cli

import (
	"reflect"
	"testing"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	// Test default values
	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"SpeechProvider", flags.SpeechProvider, "espeak"},
		{"OpenAIModel", flags.OpenAIModel, "gpt-4o-mini-tts"},
		{"OpenAISpeed", flags.OpenAISpeed, 1.0},
		{"GenAIModel", flags.GenAIModel, "gemini-2.5-flash-preview-tts"},
		{"GenAIVoice", flags.GenAIVoice, "Kore"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	// Test boolean defaults (should be false)
	boolTests := []struct {
		name  string
		value bool
	}{
		{"Slow", flags.Slow},
		{"Precache", flags.Precache},
		{"ListVoices", flags.ListVoices},
		{"ListModels", flags.ListModels},
		{"GUIMode", flags.GUIMode},
	}

	for _, tt := range boolTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != false {
				t.Errorf("%s = %v, want false", tt.name, tt.value)
			}
		})
	}

	// Test string defaults (should be empty)
	stringTests := []struct {
		name  string
		value string
	}{
		{"CfgFile", flags.CfgFile},
		{"Lesson", flags.Lesson},
		{"Voice", flags.Voice},
		{"OpenAIVoice", flags.OpenAIVoice},
	}

	for _, tt := range stringTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Errorf("%s = %v, want empty string", tt.name, tt.value)
			}
		})
	}
}

func TestFlagsStructure(t *testing.T) {
	// Test that Flags struct has all expected fields
	flags := &Flags{}
	flagsType := reflect.TypeOf(*flags)

	expectedFields := []string{
		"CfgFile", "Lesson", "SpeechProvider", "Voice", "Slow",
		"CacheDir", "Precache", "ListVoices", "ListModels", "GUIMode",
		"OpenAIModel", "OpenAIVoice", "OpenAISpeed",
		"GenAIModel", "GenAIVoice",
	}

	for _, fieldName := range expectedFields {
		t.Run("has_field_"+fieldName, func(t *testing.T) {
			if _, ok := flagsType.FieldByName(fieldName); !ok {
				t.Errorf("Flags struct missing field: %s", fieldName)
			}
		})
	}
}
