package utils

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestComputeNickname(t *testing.T) {
	tests := []struct {
		name               string
		currentDisplayName string
		positive           int64
		negative           int64
		fallbackUsername   string
		expected           string
	}{
		{
			name:               "plain display name gets prefix",
			currentDisplayName: "Alice",
			positive:           3,
			negative:           1,
			expected:           "(+3 | -1) Alice",
		},
		{
			name:               "existing prefix is replaced not stacked",
			currentDisplayName: "(+3 | -1) Alice",
			positive:           4,
			negative:           1,
			expected:           "(+4 | -1) Alice",
		},
		{
			name:               "empty display name falls back to username",
			currentDisplayName: "",
			positive:           0,
			negative:           0,
			fallbackUsername:   "alice",
			expected:           "(+0 | -0) alice",
		},
		{
			name:               "long names are truncated to the nickname limit",
			currentDisplayName: "ThisIsAnExtremelyLongDisplayNameIndeed",
			positive:           10,
			negative:           2,
			expected:           "(+10 | -2) ThisIsAnExtremelyLong",
		},
		{
			name:               "parenthesised name that is not a score prefix is kept",
			currentDisplayName: "(+banana) Bob",
			positive:           1,
			negative:           0,
			expected:           "(+1 | -0) (+banana) Bob",
		},
		{
			name:               "accented name within the limit is kept whole",
			currentDisplayName: "ééééééééééééééé",
			positive:           10,
			negative:           2,
			expected:           "(+10 | -2) ééééééééééééééé",
		},
		{
			name:               "wide characters are truncated per character not per byte",
			currentDisplayName: strings.Repeat("名", 30),
			positive:           3,
			negative:           1,
			expected:           "(+3 | -1) " + strings.Repeat("名", 22),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeNickname(tt.currentDisplayName, tt.positive, tt.negative, tt.fallbackUsername)
			assert.Equal(t, tt.expected, got)
			assert.LessOrEqual(t, utf8.RuneCountInString(got), 32)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestComputeNicknameIdempotent(t *testing.T) {
	// Applying the formatter to its own output must not change the result.
	first := ComputeNickname("Alice", 3, 1, "alice")
	second := ComputeNickname(first, 3, 1, "alice")
	assert.Equal(t, first, second)
}

func TestIsTrustedEligible(t *testing.T) {
	tests := []struct {
		name     string
		positive int64
		negative int64
		expected bool
	}{
		{"zero score", 0, 0, false},
		{"just below threshold", 14, 0, false},
		{"exactly at threshold", 15, 0, true},
		{"above threshold", 20, 3, true},
		{"negatives pull net score below threshold", 15, 1, false},
		{"large balanced score", 100, 85, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsTrustedEligible(tt.positive, tt.negative, 15))
		})
	}
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "abc", TruncateString("abc", 5))
	assert.Equal(t, "abc", TruncateString("abcdef", 3))
	assert.Empty(t, TruncateString("", 10))
}

func TestTruncateStringRuneBoundary(t *testing.T) {
	// Cutting by byte index would split a multi-byte rune and leave invalid
	// UTF-8; the cut must land on a character boundary instead.
	s := "(+10 | -2) " + strings.Repeat("é", 15)

	got := TruncateString(s, 32)
	assert.Equal(t, s, got) // 26 characters, no truncation needed

	got = TruncateString(strings.Repeat("é", 40), 32)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 32, utf8.RuneCountInString(got))
	assert.Equal(t, strings.Repeat("é", 32), got)
}
