package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPHelper_BuildHeaders(t *testing.T) {
	h := NewHTTPHelper("")

	headers := h.BuildHeaders(map[string]string{"Accept": "application/json"})

	assert.Equal(t, DefaultUserAgent, headers.Get("User-Agent"))
	assert.Equal(t, []string{"application/json"}, headers.Values("Accept"))
}

func TestHTTPHelper_CustomUserAgent(t *testing.T) {
	headers := NewHTTPHelper("research-bot/2.0").BuildHeaders(nil)

	assert.Equal(t, "research-bot/2.0", headers.Get("User-Agent"))
	assert.Equal(t, "application/json, text/html", headers.Get("Accept"))
}

func TestStringHelper_NormalizeWhitespace(t *testing.T) {
	s := NewStringHelper()

	assert.Equal(t, "a b c", s.NormalizeWhitespace("  a\n\nb\t c "))
}

func TestStringHelper_TruncateString(t *testing.T) {
	s := NewStringHelper()

	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{"Fits", "Roe v. Wade", 20, "Roe v. Wade"},
		{"ASCII", "Roe v. Wade", 8, "Roe v..."},
		{"Wide runes", "消防處消防處", 7, "消防..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, s.TruncateString(tt.input, tt.width))
		})
	}
}
