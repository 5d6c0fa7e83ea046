package bench

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// Reference is an in-process tokenizer plotted next to the external binaries.
type Reference interface {
	Name() string
	Tokenize(text string) int
}

// TiktokenReference counts BPE tokens with a tiktoken encoding.
type TiktokenReference struct {
	encoding string
	enc      *tiktoken.Tiktoken
}

// NewTiktokenReference loads encoding, e.g. "cl100k_base". The first call may
// download the BPE ranks into TIKTOKEN_CACHE_DIR.
func NewTiktokenReference(encoding string) (*TiktokenReference, error) {
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to get tiktoken encoding: %w", err)
	}
	return &TiktokenReference{encoding: encoding, enc: enc}, nil
}

func (r *TiktokenReference) Name() string {
	return "tiktoken/" + r.encoding
}

func (r *TiktokenReference) Tokenize(text string) int {
	return len(r.enc.Encode(text, nil, nil))
}
