package service

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncatePreview(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{"short passthrough", "i feel overwhelmed", 120, "i feel overwhelmed"},
		{"exact length kept", "abcde", 5, "abcde"},
		{"ascii cut", "abcdef", 3, "abc"},
		{"multi-byte cut on rune boundary", "ñañañ", 4, "ñaña"},
		{"cjk cut on rune boundary", "助けてください", 3, "助けて"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncatePreview(tt.input, tt.max)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestTruncatePreviewLongMultiByte(t *testing.T) {
	got := truncatePreview(strings.Repeat("é", 200), 120)

	assert.Equal(t, 120, utf8.RuneCountInString(got))
	assert.True(t, utf8.ValidString(got))
	assert.NotContains(t, got, "�")
}
