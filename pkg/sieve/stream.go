package sieve

// Stream is a finite, restartable cursor over the first n prime
// numbers. The underlying primes are computed once at construction
// time; iteration itself does not allocate.
type Stream struct {
	primes []int
	next   int
}

// NewStream creates a Stream yielding exactly n primes.
func NewStream(n int) (*Stream, error) {
	p, err := FirstPrimes(n)
	if err != nil {
		return nil, err
	}
	return &Stream{primes: p}, nil
}

// Next returns the next prime in the sequence. The boolean return
// value is false once the stream is exhausted.
func (s *Stream) Next() (int, bool) {
	if s.next >= len(s.primes) {
		return 0, false
	}
	p := s.primes[s.next]
	s.next++
	return p, true
}

// Reset rewinds the stream to the first prime.
func (s *Stream) Reset() {
	s.next = 0
}
