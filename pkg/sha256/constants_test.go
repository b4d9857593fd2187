package sha256_test

import (
	"testing"

	"github.com/cryptoprim/cp-digest/pkg/sha256"
	"github.com/stretchr/testify/require"
)

// The first 32 bits of the fractional parts of the cube roots of the
// first 64 prime numbers, as published in FIPS 180-4. The constant
// generator must reproduce this table exactly; even a single bit of
// rounding error at position 31 would make every digest wrong.
var fips180RoundConstants = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5,
	0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3,
	0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc,
	0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7,
	0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13,
	0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3,
	0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5,
	0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208,
	0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// The first 32 bits of the fractional parts of the square roots of the
// first 8 prime numbers.
var fips180InitialHashValues = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

func TestRoundConstants(t *testing.T) {
	t.Run("MatchesPublishedTable", func(t *testing.T) {
		require.Equal(t, fips180RoundConstants, *sha256.RoundConstants())
	})

	t.Run("Idempotent", func(t *testing.T) {
		require.Same(t, sha256.RoundConstants(), sha256.RoundConstants())
		require.Equal(t, *sha256.RoundConstants(), *sha256.RoundConstants())
	})
}

func TestInitialHashValues(t *testing.T) {
	require.Equal(t, fips180InitialHashValues, sha256.InitialHashValues())
}

func TestCubeRootFractionalBits(t *testing.T) {
	t.Run("Two", func(t *testing.T) {
		require.Equal(t, uint32(0x428a2f98), sha256.CubeRootFractionalBits(2))
	})

	t.Run("LastPrime", func(t *testing.T) {
		require.Equal(t, uint32(0xc67178f2), sha256.CubeRootFractionalBits(311))
	})

	t.Run("PerfectCube", func(t *testing.T) {
		// The cube root of 8 has no fractional part at all.
		require.Equal(t, uint32(0), sha256.CubeRootFractionalBits(8))
	})
}

func TestSquareRootFractionalBits(t *testing.T) {
	t.Run("Two", func(t *testing.T) {
		require.Equal(t, uint32(0x6a09e667), sha256.SquareRootFractionalBits(2))
	})

	t.Run("Nineteen", func(t *testing.T) {
		require.Equal(t, uint32(0x5be0cd19), sha256.SquareRootFractionalBits(19))
	})

	t.Run("PerfectSquare", func(t *testing.T) {
		require.Equal(t, uint32(0), sha256.SquareRootFractionalBits(9))
	})
}
