package sha256

// Hasher computes digests of whole messages. Consumers such as digest
// comparison tools only need this interface; they have no access to
// intermediate schedules or hash states. Implementations must be safe
// to use from multiple goroutines, provided every call operates on its
// own message.
type Hasher interface {
	Hash(message []byte) ([Size]byte, error)
}

type plainHasher struct{}

// NewHasher creates a Hasher that computes plain SHA-256 digests using
// Sum().
func NewHasher() Hasher {
	return plainHasher{}
}

func (plainHasher) Hash(message []byte) ([Size]byte, error) {
	return Sum(message)
}
