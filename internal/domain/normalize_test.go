package domain

import "testing"

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "Pitch", "pitch"},
		{"trims", "  accord  ", "accord"},
		{"compresses spaces", "take   off", "take off"},
		{"keeps hyphen", "well-known", "well-known"},
		{"keeps apostrophe", "o'clock", "o'clock"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeText(tt.in); got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCollapseSpace(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "accord with", "accord with"},
		{"newlines and tabs", "VERB\n\t+  PITCH", "VERB + PITCH"},
		{"leading and trailing", "  deep \n breath ", "deep breath"},
		{"only whitespace", " \n\t ", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CollapseSpace(tt.in); got != tt.want {
				t.Errorf("CollapseSpace(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
