// Package intmath provides overflow-checked integer arithmetic.
package intmath

import (
	"errors"
	"math/bits"
)

// ErrOverflow is returned if a result would not fit in 64 bits.
var ErrOverflow = errors.New("overflow")

// Mul returns a*b, or ErrOverflow if the product needs more than 64 bits.
func Mul(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, ErrOverflow
	}
	return lo, nil
}

// Pow returns base**exp by repeated checked multiplication. Pow(x, 0) is 1 for
// every x, including 0.
func Pow(base uint64, exp uint) (uint64, error) {
	result := uint64(1)
	for i := uint(0); i < exp; i++ {
		var err error
		if result, err = Mul(result, base); err != nil {
			return 0, err
		}
		// Once the product collapses to 0 or 1 it can't change.
		if result <= 1 {
			break
		}
	}
	return result, nil
}
