package cleaner

import "strings"

// Rule is a literal pattern and its replacement.
type Rule struct {
	Pattern     string
	Replacement string
}

// RewriteRules are applied in order, each one exactly once over the output of
// the rule before it. A later rule sees text produced by earlier ones, so the
// chain is not idempotent and does not preserve program meaning.
type RewriteRules []Rule

// DefaultRewriteRules reduce operators outside the minimal dialect to ones the
// downstream tokenizer understands.
var DefaultRewriteRules = RewriteRules{
	{"/", "*"},
	{" % ", " * "},
	{" > ", " < "},
	{"+=", "="},
	{"++", ""},
	{"--", ""},
	{" | ", " + "},
	{" & ", " + "},
	{"~", "-"},
	{"\t", " "},
}

// Apply runs every rule once, left to right.
func (rs RewriteRules) Apply(text string) string {
	for _, r := range rs {
		text = strings.ReplaceAll(text, r.Pattern, r.Replacement)
	}
	return text
}
