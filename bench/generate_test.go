package bench

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sample")
	samples, err := Generate(dir, 3, 1000)
	require.NoError(t, err)
	require.Len(t, samples, 3)

	for i, s := range samples {
		want := int64(i) * 1000
		assert.Equal(t, filepath.Join(dir, "test"+itoa(want)+".c"), s.Path)

		fi, err := os.Stat(s.Path)
		require.NoError(t, err)
		assert.Equal(t, fi.Size(), s.Size)
		assert.GreaterOrEqual(t, s.Size, want)
		assert.Less(t, s.Size, want+int64(len(snippet)))
	}
	assert.Equal(t, int64(0), samples[0].Size)
}

func TestGenerate_ReusesExisting(t *testing.T) {
	dir := t.TempDir()
	first, err := Generate(dir, 2, 500)
	require.NoError(t, err)
	second, err := Generate(dir, 2, 500)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
