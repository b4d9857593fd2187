package sha256

import (
	"encoding/binary"

	"github.com/cryptoprim/cp-digest/pkg/wordops"
)

// ExpandBlock expands a block into the 64-word message schedule that
// the compression rounds consume. The first 16 words are the block's
// contents read as big-endian 32-bit words; every later word is derived
// from four earlier ones, so the words must be filled in increasing
// order.
func ExpandBlock(block *Block) [64]uint32 {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[i*4:])
	}
	for i := 16; i < 64; i++ {
		w[i] = wordops.SmallSigma1(w[i-2]) + w[i-7] + wordops.SmallSigma0(w[i-15]) + w[i-16]
	}
	return w
}
