package sanitizer

import "testing"

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Main Hotel", "Main Hotel"},
		{"leading and trailing spaces", "  Main Hotel  ", "Main Hotel"},
		{"internal runs collapse", "Main   Hotel\t Opera", "Main Hotel Opera"},
		{"empty", "", ""},
		{"only whitespace", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimAndNormalize(tt.input); got != tt.want {
				t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeEndpoint(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already canonical", "https://api.opera.example.com/v1", "https://api.opera.example.com/v1"},
		{"http upgraded", "http://api.mews.com/v1", "https://api.mews.com/v1"},
		{"no scheme", "api.rms.example.com", "https://api.rms.example.com"},
		{"host lower-cased", "https://API.Example.COM/PMS", "https://api.example.com/PMS"},
		{"trailing slash stripped", "https://api.example.com/pms/", "https://api.example.com/pms"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeEndpoint(tt.input); got != tt.want {
				t.Errorf("NormalizeEndpoint(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"valid E.164", "+12125551234", "+12125551234"},
		{"with punctuation", "+1 (212) 555-1234", "+12125551234"},
		{"leading and trailing spaces", "  +12125551234  ", "+12125551234"},
		{"empty", "", ""},
		{"only whitespace", "   ", ""},
		{"unparseable kept trimmed", " ext. 42 ", "ext. 42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePhone(tt.input); got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
