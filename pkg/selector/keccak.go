package selector

import (
	"hash"

	"golang.org/x/crypto/sha3"
)

// newKeccak256 returns a new legacy Keccak-256 hasher (Ethereum-compatible).
func newKeccak256() hash.Hash {
	return sha3.NewLegacyKeccak256()
}

// Keccak256 computes keccak256 over the concatenation of data.
func Keccak256(data ...[]byte) []byte {
	h := newKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}

// Hasher computes selectors with a reusable keccak state. It is not safe for
// concurrent use; give each goroutine its own.
type Hasher struct {
	h   hash.Hash
	sum [32]byte
}

// NewHasher returns a Hasher ready for use.
func NewHasher() *Hasher {
	return &Hasher{h: newKeccak256()}
}

// Selector returns the selector of sig without allocating.
func (h *Hasher) Selector(sig []byte) Selector {
	h.h.Reset()
	h.h.Write(sig)
	h.h.Sum(h.sum[:0])

	var s Selector
	copy(s[:], h.sum[:Size])
	return s
}
