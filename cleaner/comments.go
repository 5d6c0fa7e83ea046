package cleaner

import "regexp"

// commentPattern matches a line comment together with its terminating newline,
// or a block comment. The block alternative is non-greedy so two block
// comments separated by code are removed independently.
var commentPattern = regexp.MustCompile(`(?s)//[^\n]*(?:\n|$)|/\*.*?\*/`)

// StripComments replaces every line and block comment in src with a single
// newline. String and character literals are not tracked, so a "//" or "/*"
// inside quotes is treated as the start of a comment.
func StripComments(src string) string {
	return commentPattern.ReplaceAllLiteralString(src, "\n")
}
