package search

import (
	"fmt"

	"github.com/luxfi/pocketh/pkg/intmath"
)

// SpaceSize returns K^L, the number of infixes of length infixLen over a.
func SpaceSize(a *Alphabet, infixLen int) (uint64, error) {
	if infixLen < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidInfixLength, infixLen)
	}
	total, err := intmath.Pow(uint64(a.Len()), uint(infixLen))
	if err != nil {
		return 0, fmt.Errorf("%w: %d^%d: %v", ErrSpaceOverflow, a.Len(), infixLen, err)
	}
	return total, nil
}

// Decode returns the infix identified by index. The index is read as an
// infixLen-digit base-K number, least-significant digit first, so digit i is
// floor(index / K^i) mod K.
func Decode(index uint64, infixLen int, a *Alphabet) (string, error) {
	total, err := SpaceSize(a, infixLen)
	if err != nil {
		return "", err
	}
	if index >= total {
		return "", fmt.Errorf("%w: %d >= %d", ErrIndexOutOfRange, index, total)
	}
	buf := make([]byte, infixLen)
	decodeInto(buf, index, a)
	return string(buf), nil
}

// Encode is the inverse of Decode.
func Encode(infix string, a *Alphabet) (uint64, error) {
	if _, err := SpaceSize(a, len(infix)); err != nil {
		return 0, err
	}
	k := uint64(a.Len())
	var index uint64
	for i := len(infix) - 1; i >= 0; i-- {
		d, ok := a.Digit(infix[i])
		if !ok {
			return 0, fmt.Errorf("%w: symbol %q at position %d", ErrInvalidAlphabet, infix[i], i)
		}
		index = index*k + uint64(d)
	}
	return index, nil
}

// decodeInto writes the len(dst) digits of index into dst. The caller
// guarantees index < K^len(dst).
func decodeInto(dst []byte, index uint64, a *Alphabet) {
	k := uint64(a.Len())
	for i := range dst {
		dst[i] = a.symbols[index%k]
		index /= k
	}
}
