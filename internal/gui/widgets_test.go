package gui

import "testing"

func TestMaskText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single word", "cat", "•••"},
		{"phrase keeps word boundaries", "a red hat", "• ••• •••"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := maskText(tt.in); got != tt.want {
				t.Errorf("maskText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
