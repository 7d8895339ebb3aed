package tiles

import (
	"strings"
	"unicode"
)

// Kind classifies a tile by the grapheme category it was matched from.
type Kind int

const (
	KindConsonant Kind = iota
	KindVowel
	KindDigraph
	KindVowelTeam
	KindRControlled
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindConsonant:
		return "consonant"
	case KindVowel:
		return "vowel"
	case KindDigraph:
		return "digraph"
	case KindVowelTeam:
		return "vowel team"
	case KindRControlled:
		return "r-controlled"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

// Tile is a single unit of phonetic decomposition. Immutable once computed.
type Tile struct {
	Text string
	Kind Kind
}

// Hideable reports whether the tile may be hidden in the cipher game.
// Punctuation and whitespace tiles stay visible.
func (t Tile) Hideable() bool {
	return t.Kind != KindOther
}

// Multi-letter graphemes, matched longest first. The order within each
// group matters: "igh" must win over "ig"+"h".
var (
	trigraphs = []string{"tch", "dge", "igh"}

	digraphs = []string{
		"ch", "sh", "th", "wh", "ph", "gh", "ck", "ng", "qu", "kn", "wr", "mb",
	}

	vowelTeams = []string{
		"ai", "ay", "ea", "ee", "ei", "ey", "ie", "oa", "oe", "oo", "ou",
		"ow", "oy", "oi", "au", "aw", "ue", "ui", "ew",
	}

	rControlled = []string{"ar", "er", "ir", "or", "ur"}
)

// Decompose splits a word into an ordered sequence of phonetic tiles.
// Matching is greedy: at each position the longest known grapheme wins,
// falling back to a single rune. Characters that are neither letters nor
// apostrophes become KindOther tiles.
func Decompose(word string) []Tile {
	runes := []rune(word)
	var out []Tile

	for i := 0; i < len(runes); {
		r := runes[i]

		if !unicode.IsLetter(r) && r != '\'' {
			out = append(out, Tile{Text: string(r), Kind: KindOther})
			i++
			continue
		}

		rest := strings.ToLower(string(runes[i:]))

		if g := matchPrefix(rest, trigraphs); g != "" {
			out = append(out, tileAt(runes, i, len(g), KindDigraph))
			i += len(g)
			continue
		}
		if g := matchPrefix(rest, vowelTeams); g != "" {
			out = append(out, tileAt(runes, i, len(g), KindVowelTeam))
			i += len(g)
			continue
		}
		if g := matchPrefix(rest, rControlled); g != "" {
			out = append(out, tileAt(runes, i, len(g), KindRControlled))
			i += len(g)
			continue
		}
		if g := matchPrefix(rest, digraphs); g != "" {
			out = append(out, tileAt(runes, i, len(g), KindDigraph))
			i += len(g)
			continue
		}

		kind := KindConsonant
		if isVowel(r) {
			kind = KindVowel
		}
		out = append(out, Tile{Text: string(r), Kind: kind})
		i++
	}

	return out
}

// matchPrefix returns the first grapheme that prefixes s, or "".
func matchPrefix(s string, graphemes []string) string {
	for _, g := range graphemes {
		if strings.HasPrefix(s, g) {
			return g
		}
	}
	return ""
}

// tileAt builds a tile from the original runes so the display keeps the
// word's casing even though matching is lowercase.
func tileAt(runes []rune, start, length int, kind Kind) Tile {
	return Tile{Text: string(runes[start : start+length]), Kind: kind}
}

func isVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// Texts returns the tile texts in order. Convenience for tests and the
// cipher game's equality check.
func Texts(ts []Tile) []string {
	if len(ts) == 0 {
		return nil
	}
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Text
	}
	return out
}
