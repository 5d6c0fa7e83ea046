package cleaner

import "strings"

// Blacklist is an ordered set of substring markers. A document containing
// any of them is rejected as a whole.
type Blacklist []string

// DefaultBlacklist lists the features the minimal dialect does not support:
// preprocessor directives, wide and floating types, storage classes, enum and
// switch, hex literals, bitwise and shift operators, logical and, brace
// initializers, unions and inline assembly.
var DefaultBlacklist = Blacklist{
	"#",
	"float",
	"double",
	"long",
	"short",
	"static",
	"signed ",
	"enum",
	"for",
	"extern ",
	"typedef",
	"inline",
	"const",
	"0x",
	"^",
	"switch",
	"&&",
	"__builtin",
	"<<",
	">>",
	"::",
	"= {",
	"union ",
	" asm ",
}

// Match returns the first marker found in text, in list order.
func (b Blacklist) Match(text string) (string, bool) {
	for _, marker := range b {
		if strings.Contains(text, marker) {
			return marker, true
		}
	}
	return "", false
}

// Accepts reports whether text contains none of the markers.
func (b Blacklist) Accepts(text string) bool {
	_, found := b.Match(text)
	return !found
}
