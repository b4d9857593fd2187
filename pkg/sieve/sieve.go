package sieve

import (
	"math"

	"github.com/fxtlabs/primes"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// nthPrimeUpperBound returns a value that is guaranteed to be at least
// as large as the n-th prime number, so that a bounded sieve of
// Eratosthenes yields at least n primes. For n >= 6 the Rosser bound
// n*(ln n + ln ln n) applies; smaller values are covered by a constant.
func nthPrimeUpperBound(n int) int {
	if n < 6 {
		return 13
	}
	f := float64(n)
	return int(math.Ceil(f * (math.Log(f) + math.Log(math.Log(f)))))
}

// FirstPrimes returns the first n prime numbers in increasing order,
// starting at 2.
func FirstPrimes(n int) ([]int, error) {
	if n < 1 {
		return nil, status.Errorf(codes.InvalidArgument, "Number of primes %d is not positive", n)
	}
	for limit := nthPrimeUpperBound(n); ; limit *= 2 {
		if p := primes.Sieve(limit); len(p) >= n {
			return p[:n], nil
		}
	}
}
