package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"spaces", "a    b", "a b"},
		{"odd run", "a     b", "a b"},
		{"blank lines", "int a;\n\n\n\nint b;\n", "int a;\nint b;\n"},
		{"leading newlines", "\n\n\nint a;", "int a;"},
		{"tabs untouched", "a\t\tb", "a\t\tb"},
		{"space-only lines survive", "a\n \n \nb", "a\n \n \nb"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"\n",
		"\n\n \n\n  x  \n\n\n y",
		" \n\nint  main()\n\n{\n\n\n  return   0;\n}\n\n",
		"                                 ",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}
