package tiles

import (
	"reflect"
	"testing"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		word string
		want []string
	}{
		{"cat", []string{"c", "a", "t"}},
		{"ship", []string{"sh", "i", "p"}},
		{"chat", []string{"ch", "a", "t"}},
		{"rain", []string{"r", "ai", "n"}},
		{"night", []string{"n", "igh", "t"}},
		{"catch", []string{"c", "a", "tch"}},
		{"bird", []string{"b", "ir", "d"}},
		{"queen", []string{"qu", "ee", "n"}},
		{"knee", []string{"kn", "ee"}},
		{"song", []string{"s", "o", "ng"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got := Texts(Decompose(tt.word))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Decompose(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestDecomposeKinds(t *testing.T) {
	got := Decompose("shark")

	want := []Tile{
		{Text: "sh", Kind: KindDigraph},
		{Text: "ar", Kind: KindRControlled},
		{Text: "k", Kind: KindConsonant},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Decompose(\"shark\") = %v, want %v", got, want)
	}
}

func TestDecomposeKeepsCasing(t *testing.T) {
	got := Texts(Decompose("Ship"))
	want := []string{"Sh", "i", "p"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Decompose(\"Ship\") = %v, want %v", got, want)
	}
}

func TestDecomposePhrase(t *testing.T) {
	got := Decompose("at it")

	if len(got) != 5 {
		t.Fatalf("expected 5 tiles, got %d: %v", len(got), got)
	}
	space := got[2]
	if space.Kind != KindOther {
		t.Errorf("space tile kind = %v, want KindOther", space.Kind)
	}
	if space.Hideable() {
		t.Error("space tile must not be hideable")
	}
}

func TestKindString(t *testing.T) {
	if KindVowelTeam.String() != "vowel team" {
		t.Errorf("KindVowelTeam.String() = %q", KindVowelTeam.String())
	}
	if Kind(99).String() != "unknown" {
		t.Errorf("unexpected string for invalid kind: %q", Kind(99).String())
	}
}
