package cleaner

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "update golden files")

const rejectedPrefix = "rejected: "

func goldenOutput(src string) string {
	out, marker, ok := Process(src, DefaultBlacklist, DefaultRewriteRules)
	if !ok {
		return rejectedPrefix + marker + "\n"
	}
	return out
}

func TestProcess_Golden(t *testing.T) {
	matches, err := filepath.Glob("testdata/*.c")
	require.NoError(t, err)

	for _, src := range matches {
		t.Run(filepath.Base(src), func(t *testing.T) {
			data, err := os.ReadFile(src)
			require.NoError(t, err)
			goldenPath := strings.TrimSuffix(src, ".c") + ".golden"

			got := goldenOutput(string(data))
			if *update {
				require.NoError(t, os.WriteFile(goldenPath, []byte(got), 0o644))
				return
			}

			want, err := os.ReadFile(goldenPath)
			require.NoError(t, err)
			assert.Equal(t, string(want), got)
		})
	}
}
