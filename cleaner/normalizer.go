package cleaner

import "strings"

// Normalize collapses runs of spaces and runs of newlines down to one, then
// drops a single leading newline. Both collapses loop until nothing changes.
func Normalize(text string) string {
	for strings.Contains(text, "  ") {
		text = strings.ReplaceAll(text, "  ", " ")
	}
	for strings.Contains(text, "\n\n") {
		text = strings.ReplaceAll(text, "\n\n", "\n")
	}
	return strings.TrimPrefix(text, "\n")
}
