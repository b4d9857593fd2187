package sha256

import (
	"encoding/binary"
	"fmt"
	"math"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// BlockSize is the number of bytes of padded message consumed by one
// compression pass.
const BlockSize = 64

// maximumMessageSizeBytes is the largest message size whose length in
// bits still fits in the 64-bit length field of the padding.
const maximumMessageSizeBytes = math.MaxUint64 / 8

// Block is a 512-bit chunk of a padded message.
type Block [BlockSize]byte

// Pad appends padding to a message so that its length becomes a
// multiple of the block size: a single one bit, zero bits, and the
// original length in bits as a 64-bit big-endian integer. Every message
// has exactly one valid padded form; messages that are already a
// multiple of the block size gain a full extra block.
func Pad(message []byte) ([]byte, error) {
	if uint64(len(message)) > maximumMessageSizeBytes {
		return nil, status.Errorf(codes.InvalidArgument, "Message of %d bytes has a bit length that cannot be represented in the 64 bit length field", len(message))
	}
	bitLength := uint64(len(message)) * 8

	// The length field needs 8 bytes and the one bit needs 1 byte,
	// which together determine how many blocks the result spans.
	paddedSize := ((len(message)+8)/BlockSize + 1) * BlockSize
	padded := make([]byte, paddedSize)
	copy(padded, message)
	padded[len(message)] = 0x80
	binary.BigEndian.PutUint64(padded[paddedSize-8:], bitLength)
	return padded, nil
}

// Segment splits a padded message into its sequence of blocks. The
// input must have gone through Pad() first; calling it with a length
// that is not a multiple of the block size is a programming error.
func Segment(paddedMessage []byte) []Block {
	if len(paddedMessage)%BlockSize != 0 {
		panic(fmt.Sprintf("Padded message of %d bytes is not a multiple of the block size", len(paddedMessage)))
	}
	blocks := make([]Block, len(paddedMessage)/BlockSize)
	for i := range blocks {
		copy(blocks[i][:], paddedMessage[i*BlockSize:])
	}
	return blocks
}
