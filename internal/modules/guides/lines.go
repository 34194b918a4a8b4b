package guides

import "strings"

// SplitLines converts newline-delimited form text into an ordered list of
// trimmed, non-blank lines. Blank lines are dropped silently; order is
// preserved. Handles CRLF input.
func SplitLines(text string) []string {
	out := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
