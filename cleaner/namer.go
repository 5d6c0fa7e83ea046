package cleaner

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

const (
	DefaultPrefix = "ccc"
	DefaultExt    = ".c"

	suffixDigits = 10
	// maxDraws bounds the redraw loop. With 10^10 suffixes per sequence
	// number it is only reached when the namespace is broken.
	maxDraws = 1 << 16
)

// ErrNamespaceExhausted is returned when no free name was found.
var ErrNamespaceExhausted = errors.New("no free output name")

// Namer generates output names of the form <prefix>_<seq>_<suffix><ext>.
type Namer struct {
	Prefix string
	Ext    string
	rnd    *rand.Rand
}

// NewNamer returns a Namer drawing suffixes from rnd. A nil rnd uses a
// randomly seeded source.
func NewNamer(prefix, ext string, rnd *rand.Rand) *Namer {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Namer{Prefix: prefix, Ext: ext, rnd: rnd}
}

func (n *Namer) suffix() string {
	var b strings.Builder
	b.Grow(suffixDigits)
	for range suffixDigits {
		b.WriteByte(byte('0' + n.rnd.IntN(10)))
	}
	return b.String()
}

// Candidate draws one name for seq without consulting any namespace.
func (n *Namer) Candidate(seq int) string {
	return fmt.Sprintf("%s_%04d_%s%s", n.Prefix, seq, n.suffix(), n.Ext)
}

// Name draws candidates until one is free in ns and reserves it.
func (n *Namer) Name(seq int, ns Namespace) (string, error) {
	for range maxDraws {
		name := n.Candidate(seq)
		taken, err := ns.IsTaken(name)
		if err != nil {
			return "", err
		}
		if taken {
			continue
		}
		err = ns.Reserve(name)
		if errors.Is(err, ErrNameTaken) {
			continue
		}
		if err != nil {
			return "", err
		}
		return name, nil
	}
	return "", fmt.Errorf("sequence %d: %w", seq, ErrNamespaceExhausted)
}
