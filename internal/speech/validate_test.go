package speech

import "testing"

func TestValidateUtteranceText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{
			name:    "valid word",
			text:    "cat",
			wantErr: false,
		},
		{
			name:    "valid sentence",
			text:    "The cat sat on the mat.",
			wantErr: false,
		},
		{
			name:    "empty string",
			text:    "",
			wantErr: true,
		},
		{
			name:    "whitespace only",
			text:    "   \t\n",
			wantErr: true,
		},
		{
			name:    "punctuation only",
			text:    "...!?",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUtteranceText(tt.text)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUtteranceText(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
		})
	}
}

func TestCleanMarkup(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"[s]", "s"},
		{"/sh/", "sh"},
		{"un-til", "un til"},
		{"cat", "cat"},
		{" [c]-[a]-[t] ", "c a t"},
	}

	for _, tt := range tests {
		if got := CleanMarkup(tt.in); got != tt.want {
			t.Errorf("CleanMarkup(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
