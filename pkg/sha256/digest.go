// Package sha256 implements the SHA-256 message digest algorithm from
// first principles: the round constants and initial hash values are
// derived from prime numbers instead of being hardcoded, and the
// padding, message schedule and compression function are built on the
// 32-bit word operations in pkg/wordops.
package sha256

import (
	"encoding/binary"
)

// Size of SHA-256 digests.
const Size = 32

// Sum computes the SHA-256 digest of a message. Blocks are compressed
// strictly in order, as every block's starting state is the previous
// block's output. The function carries no state between calls and may
// be invoked concurrently on different messages.
func Sum(message []byte) ([Size]byte, error) {
	var digest [Size]byte
	padded, err := Pad(message)
	if err != nil {
		return digest, err
	}

	state := InitialHashValues()
	constants := RoundConstants()
	for _, block := range Segment(padded) {
		schedule := ExpandBlock(&block)
		state = CompressBlock(state, &schedule, constants)
	}

	for i, w := range state {
		binary.BigEndian.PutUint32(digest[i*4:], w)
	}
	return digest, nil
}
