package sha256

import (
	"math/big"
	"sync"

	"github.com/cryptoprim/cp-digest/pkg/sieve"
	"github.com/cryptoprim/cp-digest/pkg/util"
)

var (
	roundConstantsOnce sync.Once
	roundConstants     [64]uint32

	initialHashValuesOnce sync.Once
	initialHashValues     [8]uint32
)

// cubeRootFloor returns the largest integer whose cube does not exceed
// x. math/big provides Sqrt but no cube root, so this performs a binary
// search over the candidate range.
func cubeRootFloor(x *big.Int) *big.Int {
	lo := big.NewInt(0)
	hi := new(big.Int).Lsh(big.NewInt(1), uint(x.BitLen())/3+1)
	mid, cube := new(big.Int), new(big.Int)
	for lo.Cmp(hi) < 0 {
		// Round upwards, so that lo always makes progress.
		mid.Add(lo, hi)
		mid.Add(mid, big.NewInt(1))
		mid.Rsh(mid, 1)
		cube.Mul(mid, mid)
		cube.Mul(cube, mid)
		if cube.Cmp(x) <= 0 {
			lo.Set(mid)
		} else {
			hi.Sub(mid, big.NewInt(1))
		}
	}
	return lo
}

// CubeRootFractionalBits returns the first 32 bits after the binary
// point of the cube root of n, i.e. floor(frac(cbrt(n)) * 2^32).
//
// The computation is carried out entirely on integers: the low 32 bits
// of floor(cbrt(n * 2^96)) are exactly the fractional bits wanted.
// Double precision floating point arithmetic only carries 52 fraction
// bits and may misround the lowest bits, which is why no floating point
// value is involved at any step.
func CubeRootFractionalBits(n int) uint32 {
	shifted := new(big.Int).Lsh(big.NewInt(int64(n)), 96)
	return uint32(cubeRootFloor(shifted).Uint64())
}

// SquareRootFractionalBits returns the first 32 bits after the binary
// point of the square root of n, i.e. floor(frac(sqrt(n)) * 2^32).
func SquareRootFractionalBits(n int) uint32 {
	shifted := new(big.Int).Lsh(big.NewInt(int64(n)), 64)
	return uint32(new(big.Int).Sqrt(shifted).Uint64())
}

// RoundConstants returns the 64 round constants of the compression
// function: the fractional cube root bits of the first 64 primes. The
// table is computed on first use and immutable afterwards, so the
// returned array may be shared freely between goroutines.
func RoundConstants() *[64]uint32 {
	roundConstantsOnce.Do(func() {
		for i, p := range util.Must(sieve.FirstPrimes(64)) {
			roundConstants[i] = CubeRootFractionalBits(p)
		}
	})
	return &roundConstants
}

// InitialHashValues returns the initial working state of a digest
// computation: the fractional square root bits of the first 8 primes.
// A copy is returned, as callers mutate the state while compressing
// blocks.
func InitialHashValues() [8]uint32 {
	initialHashValuesOnce.Do(func() {
		for i, p := range util.Must(sieve.FirstPrimes(8)) {
			initialHashValues[i] = SquareRootFractionalBits(p)
		}
	})
	return initialHashValues
}
