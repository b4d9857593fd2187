package wordops

import (
	"fmt"
	"math/bits"
)

// checkAmount validates a rotation or shift amount. Amounts are fixed
// constants of the hash algorithm, so an out of range value indicates a
// programming error rather than a condition the caller can recover
// from.
func checkAmount(n int) {
	if n < 0 || n >= 32 {
		panic(fmt.Sprintf("Rotation or shift amount %d is not in range [0, 32)", n))
	}
}

// RotateRight performs a circular right rotation of a 32-bit word by n
// bits. Bits shifted out at the bottom reenter at the top, making the
// operation bijective.
func RotateRight(x uint32, n int) uint32 {
	checkAmount(n)
	return bits.RotateLeft32(x, -n)
}

// ShiftRight performs a logical right shift of a 32-bit word by n bits,
// filling with zero bits at the top.
func ShiftRight(x uint32, n int) uint32 {
	checkAmount(n)
	return x >> n
}

// Choose selects bits from y where the corresponding bit of x is set,
// and from z where it is clear.
func Choose(x, y, z uint32) uint32 {
	return (x & y) ^ (^x & z)
}

// Majority computes the per-bit majority vote among three words.
func Majority(x, y, z uint32) uint32 {
	return (x & y) ^ (x & z) ^ (y & z)
}

// Parity computes the per-bit three-way exclusive or of three words.
// SHA-1 uses this function in some of its rounds; the SHA-256
// compression function does not, so it is provided as a standalone
// utility only.
func Parity(x, y, z uint32) uint32 {
	return x ^ y ^ z
}

// SmallSigma0 is the σ₀ function applied during message schedule
// expansion.
func SmallSigma0(x uint32) uint32 {
	return RotateRight(x, 7) ^ RotateRight(x, 18) ^ ShiftRight(x, 3)
}

// SmallSigma1 is the σ₁ function applied during message schedule
// expansion.
func SmallSigma1(x uint32) uint32 {
	return RotateRight(x, 17) ^ RotateRight(x, 19) ^ ShiftRight(x, 10)
}

// BigSigma0 is the Σ₀ function applied to working register a in every
// compression round.
func BigSigma0(x uint32) uint32 {
	return RotateRight(x, 2) ^ RotateRight(x, 13) ^ RotateRight(x, 22)
}

// BigSigma1 is the Σ₁ function applied to working register e in every
// compression round.
func BigSigma1(x uint32) uint32 {
	return RotateRight(x, 6) ^ RotateRight(x, 11) ^ RotateRight(x, 25)
}
