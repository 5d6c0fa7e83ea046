package bench

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
binaries: [lexer, fast_lexer]
steps: 4
threshold: 1.5s
reference: cl100k_base
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"lexer", "fast_lexer"}, cfg.Binaries)
	assert.Equal(t, 4, cfg.Steps)
	assert.Equal(t, 1500*time.Millisecond, cfg.Threshold)
	assert.Equal(t, "cl100k_base", cfg.Reference)

	// Unset fields keep their defaults.
	assert.Equal(t, int64(50000), cfg.StepSize)
	assert.Equal(t, "./sample", cfg.SampleDir)
	assert.Equal(t, "stat.html", cfg.Output)
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steps: 0\n"), 0o644))
	_, err := LoadConfig(path)
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDefaultConfig_Valid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}
