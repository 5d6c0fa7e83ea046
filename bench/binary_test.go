package bench

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBinary(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "lexer")

	b, err := LoadBinary(bin)
	require.NoError(t, err)
	assert.Equal(t, bin, b.Path)
	assert.Equal(t, bin, b.Label)

	require.NoError(t, os.WriteFile(bin+FlagsSuffix, []byte("-O3\n  -march=native\n"), 0o644))
	b, err = LoadBinary(bin)
	require.NoError(t, err)
	assert.Equal(t, bin+" (-O3 -march=native)", b.Label)

	require.NoError(t, os.WriteFile(bin+FlagsSuffix, []byte("\n"), 0o644))
	b, err = LoadBinary(bin)
	require.NoError(t, err)
	assert.Equal(t, bin, b.Label)
}

func TestLoadBinary_BareName(t *testing.T) {
	b, err := LoadBinary("no-such-lexer")
	require.NoError(t, err)
	assert.Equal(t, "."+string(filepath.Separator)+"no-such-lexer", b.Path)
	assert.Equal(t, "no-such-lexer", b.Label)
}
