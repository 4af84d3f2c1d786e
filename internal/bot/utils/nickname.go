package utils

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/reputo/reputo/internal/bot/constants"
)

// nicknamePrefixPattern matches the score prefix this bot writes into
// nicknames, e.g. "(+3 | -1) ". Stripping it before prepending a fresh prefix
// keeps ComputeNickname idempotent.
var nicknamePrefixPattern = regexp.MustCompile(`^\(\+\d+ \| -\d+\)\s*`)

// ComputeNickname builds the decorated nickname for a member from their
// aggregate score. The current display name has any existing score prefix
// stripped; if the member has no display name yet, the raw username is used
// as the base. The result is truncated to Discord's nickname limit.
func ComputeNickname(currentDisplayName string, positive, negative int64, fallbackUsername string) string {
	base := currentDisplayName
	if base == "" {
		base = fallbackUsername
	} else {
		base = nicknamePrefixPattern.ReplaceAllString(base, "")
	}

	nick := fmt.Sprintf("(+%d | -%d) %s", positive, negative, base)

	return TruncateString(nick, constants.MaxNicknameLength)
}

// IsTrustedEligible reports whether a member's net score qualifies them for
// the Trusted role.
func IsTrustedEligible(positive, negative, threshold int64) bool {
	return positive-negative >= threshold
}

// TruncateString shortens a string to at most maxLength characters. The cut
// is made on a rune boundary so multi-byte names are never split mid-rune.
func TruncateString(s string, maxLength int) string {
	if utf8.RuneCountInString(s) <= maxLength {
		return s
	}

	return string([]rune(s)[:maxLength])
}
