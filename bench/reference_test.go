package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTiktokenReference(t *testing.T) {
	ref, err := NewTiktokenReference("cl100k_base")
	if err != nil {
		t.Skipf("encoding unavailable: %v", err)
	}
	assert.Equal(t, "tiktoken/cl100k_base", ref.Name())
	assert.Zero(t, ref.Tokenize(""))
	assert.Positive(t, ref.Tokenize(snippet))
}
