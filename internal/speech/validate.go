package speech

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidateUtteranceText validates that the input is worth sending to an
// engine: non-blank and containing at least one letter.
func ValidateUtteranceText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text cannot be empty")
	}

	for _, r := range text {
		if unicode.IsLetter(r) {
			return nil
		}
	}

	return fmt.Errorf("text must contain at least one letter")
}

// CleanMarkup strips the bracket, slash and hyphen markup used in lesson
// lists (e.g. "[s]", "/sh/", "un-til") so engines don't read it aloud.
func CleanMarkup(text string) string {
	replacer := strings.NewReplacer(
		"[", "",
		"]", "",
		"/", "",
		"-", " ",
	)
	return strings.TrimSpace(replacer.Replace(text))
}
