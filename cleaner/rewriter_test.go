package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewriteRules_Apply(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a / b", "a * b"},
		{"a/b", "a*b"},
		{"a % b", "a * b"},
		{"a%b", "a%b"},
		{"a > b", "a < b"},
		{"a>b", "a>b"},
		{"x += 1", "x = 1"},
		{"i++", "i"},
		{"--i", "i"},
		{"a | b", "a + b"},
		{"a & b", "a + b"},
		{"a&b", "a&b"},
		{"~x", "-x"},
		{"\tx;", " x;"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultRewriteRules.Apply(tt.in))
		})
	}
}

func TestRewriteRules_Order(t *testing.T) {
	// Tabs are replaced last, so tab-delimited operators are not rewritten.
	assert.Equal(t, "a > b", DefaultRewriteRules.Apply("a\t>\tb"))
	// The decrement rule runs before "~" becomes "-".
	assert.Equal(t, "--x", DefaultRewriteRules.Apply("~~x"))
	// "+=" is gone before "++" is looked at.
	assert.Equal(t, "a =+ b", DefaultRewriteRules.Apply("a +=+ b"))
}

func TestRewriteRules_NotIdempotent(t *testing.T) {
	once := DefaultRewriteRules.Apply("~~x")
	twice := DefaultRewriteRules.Apply(once)
	assert.NotEqual(t, once, twice)
	assert.Equal(t, "x", twice)
}

func TestRewriteRules_Custom(t *testing.T) {
	rules := RewriteRules{{"a", "b"}, {"b", "c"}}
	assert.Equal(t, "cc", rules.Apply("ab"))
	assert.Equal(t, "ab", RewriteRules(nil).Apply("ab"))
}
