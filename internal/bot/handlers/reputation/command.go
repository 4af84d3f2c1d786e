package reputation

import (
	"strconv"
	"strings"
)

// ParseCommand tokenizes message content on whitespace and returns the
// lowercased command token along with the remaining arguments.
func ParseCommand(content string) (string, []string) {
	fields := strings.Fields(content)
	if len(fields) == 0 {
		return "", nil
	}

	return strings.ToLower(fields[0]), fields[1:]
}

// ParseEventID extracts the numeric event ID from a deletion command's
// arguments. Returns false for a missing or non-numeric argument.
func ParseEventID(args []string) (int64, bool) {
	if len(args) == 0 {
		return 0, false
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

// BuildReason joins the argument tokens after the mention back into the
// free-text reason. Returns an empty string when no reason was given.
func BuildReason(args []string) string {
	if len(args) < 2 {
		return ""
	}

	return strings.Join(args[1:], " ")
}
