package speech

import "strings"

// Voice identifies one voice of a speech provider.
type Voice struct {
	ID   string // engine-specific identifier passed to the provider
	Name string // display name
	Lang string // BCP 47 tag, e.g. "en-US"
}

// ChooseDefaultVoice picks the initial voice from an enumeration: a U.S.
// English voice whose name suggests a higher-quality engine ("Natural" or
// "Google") if present, else the first U.S. English voice, else the first
// voice at all.
func ChooseDefaultVoice(voices []Voice) Voice {
	var firstUS *Voice
	for i, v := range voices {
		if !isUSEnglish(v.Lang) {
			continue
		}
		if firstUS == nil {
			firstUS = &voices[i]
		}
		name := strings.ToLower(v.Name)
		if strings.Contains(name, "natural") || strings.Contains(name, "google") {
			return v
		}
	}
	if firstUS != nil {
		return *firstUS
	}
	if len(voices) > 0 {
		return voices[0]
	}
	return Voice{}
}

func isUSEnglish(lang string) bool {
	lang = strings.ReplaceAll(lang, "_", "-")
	return strings.EqualFold(lang, "en-US")
}
