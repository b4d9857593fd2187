package random

import (
	"encoding/binary"
	"math/rand/v2"

	"github.com/lazybeaver/xorshift"
)

// xorShiftSequence is the part of the xorshift generators' interface
// that is needed here.
type xorShiftSequence interface {
	Next() uint64
}

// xorShiftSource adapts an xorshift sequence to the Source interface of
// math/rand/v2.
type xorShiftSource struct {
	sequence xorShiftSequence
}

func (s xorShiftSource) Uint64() uint64 {
	return s.sequence.Next()
}

type deterministicGenerator struct {
	*rand.Rand
}

// NewDeterministicGenerator creates a SingleThreadedGenerator whose
// output depends only on the provided seed, backed by an xorshift64*
// sequence. It is not suitable for cryptographic purposes; its value
// lies in reproducibility, such as when generating test corpora.
func NewDeterministicGenerator(seed uint64) SingleThreadedGenerator {
	if seed == 0 {
		// The all zero state is a fixed point of xorshift.
		seed = 1
	}
	return &deterministicGenerator{
		Rand: rand.New(xorShiftSource{sequence: xorshift.NewXorShift64Star(seed)}),
	}
}

func (g *deterministicGenerator) Read(p []byte) (int, error) {
	i := 0
	for ; i+8 <= len(p); i += 8 {
		binary.LittleEndian.PutUint64(p[i:], g.Rand.Uint64())
	}
	if i < len(p) {
		v := g.Rand.Uint64()
		for ; i < len(p); i++ {
			p[i] = byte(v)
			v >>= 8
		}
	}
	return len(p), nil
}
