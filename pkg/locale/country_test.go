package locale

import "testing"

func TestNormalizeNationality(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"alpha-2 code passes through", "US", "US"},
		{"lower-case code", "us", "US"},
		{"country name", "United States", "US"},
		{"alias", "USA", "US"},
		{"demonym", "British", "GB"},
		{"empty maps to unknown", "", UnknownNationality},
		{"whitespace maps to unknown", "   ", UnknownNationality},
		{"unknown literal preserved", "unknown", UnknownNationality},
		{"unrecognized value kept trimmed", " Atlantis ", "Atlantis"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeNationality(tt.input); got != tt.want {
				t.Errorf("NormalizeNationality(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
