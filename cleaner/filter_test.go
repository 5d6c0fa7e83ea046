package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlacklist_RejectsEveryMarker(t *testing.T) {
	for _, marker := range DefaultBlacklist {
		t.Run(marker, func(t *testing.T) {
			text := "int main() {\n" + marker + "\n}\n"
			got, found := DefaultBlacklist.Match(text)
			assert.True(t, found)
			assert.Equal(t, marker, got)
			assert.False(t, DefaultBlacklist.Accepts(text))
		})
	}
}

func TestBlacklist_Accepts(t *testing.T) {
	text := "int main()\n{\n int a = 1;\n while (a < 10) {\n a = a + 1;\n }\n return a;\n}\n"
	assert.True(t, DefaultBlacklist.Accepts(text))
}

func TestBlacklist_FirstMarkerWins(t *testing.T) {
	got, found := DefaultBlacklist.Match("enum E; #define X 1")
	assert.True(t, found)
	assert.Equal(t, "#", got)
}

func TestBlacklist_SubstringMatch(t *testing.T) {
	// Markers are plain substrings, identifiers are not spared.
	marker, found := DefaultBlacklist.Match("int format;")
	assert.True(t, found)
	assert.Equal(t, "for", marker)

	// Trailing spaces in markers are significant.
	assert.True(t, DefaultBlacklist.Accepts("int unsigned_x;"))
	assert.False(t, DefaultBlacklist.Accepts("unsigned int x;"))
}

func TestBlacklist_Empty(t *testing.T) {
	assert.True(t, Blacklist{}.Accepts("#include <stdio.h>"))
}
