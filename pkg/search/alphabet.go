package search

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// DefaultSymbols is the alphabet used when none is configured: the 52 Latin
// letters, lowercase first.
const DefaultSymbols = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// forbiddenSymbols would change the shape of the generated signature.
const forbiddenSymbols = "(),"

// Alphabet is an ordered set of distinct single-byte symbols. Digit d of an
// index maps to Symbol(d). The zero value is not usable; use NewAlphabet or
// DefaultAlphabet.
type Alphabet struct {
	symbols string
	// digit holds 1+digit for each symbol byte, 0 for bytes not in the alphabet.
	digit [256]uint16
}

// NewAlphabet validates symbols and returns the alphabet they describe.
func NewAlphabet(symbols string) (*Alphabet, error) {
	if symbols == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidAlphabet)
	}
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		if c <= ' ' || c >= 0x7f {
			return nil, fmt.Errorf("%w: symbol %q at position %d is not printable ASCII", ErrInvalidAlphabet, c, i)
		}
		if strings.IndexByte(forbiddenSymbols, c) >= 0 {
			return nil, fmt.Errorf("%w: symbol %q is not allowed in a function name", ErrInvalidAlphabet, c)
		}
	}
	if dups := lo.FindDuplicates([]byte(symbols)); len(dups) > 0 {
		return nil, fmt.Errorf("%w: duplicate symbols %q", ErrInvalidAlphabet, string(dups))
	}

	a := &Alphabet{symbols: symbols}
	for i := 0; i < len(symbols); i++ {
		a.digit[symbols[i]] = uint16(i + 1)
	}
	return a, nil
}

// DefaultAlphabet returns the alphabet built from DefaultSymbols.
func DefaultAlphabet() *Alphabet {
	a, err := NewAlphabet(DefaultSymbols)
	if err != nil {
		panic(err) // DefaultSymbols is a valid constant
	}
	return a
}

// Len returns K, the number of symbols.
func (a *Alphabet) Len() int {
	return len(a.symbols)
}

// Symbol returns the symbol for digit d.
func (a *Alphabet) Symbol(d int) byte {
	return a.symbols[d]
}

// Digit returns the digit of symbol c and whether c belongs to the alphabet.
func (a *Alphabet) Digit(c byte) (int, bool) {
	d := a.digit[c]
	return int(d) - 1, d != 0
}

func (a *Alphabet) String() string {
	return a.symbols
}
