// Package selector computes Ethereum ABI function selectors: the first four
// bytes of the keccak256 hash of a canonical signature such as
// "transfer(address,uint256)".
package selector

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Size is the length of a selector in bytes.
const Size = 4

// ErrInvalid is returned when a string can't be parsed as a selector.
var ErrInvalid = errors.New("invalid selector")

// Selector is a 4-byte ABI function selector.
type Selector [Size]byte

// Of returns the selector of signature. Every string, including "", has one.
func Of(signature string) Selector {
	var s Selector
	copy(s[:], Keccak256([]byte(signature))[:Size])
	return s
}

// Parse decodes an 8-digit hex selector with an optional 0x prefix.
func Parse(str string) (Selector, error) {
	raw := strings.TrimPrefix(strings.TrimPrefix(str, "0x"), "0X")
	if len(raw) != 2*Size {
		return Selector{}, fmt.Errorf("%w: %q must be %d hex digits", ErrInvalid, str, 2*Size)
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return Selector{}, fmt.Errorf("%w: %q: %v", ErrInvalid, str, err)
	}
	var s Selector
	copy(s[:], b)
	return s, nil
}

// MustParse is like Parse but panics on malformed input. It is meant for
// constants.
func MustParse(str string) Selector {
	s, err := Parse(str)
	if err != nil {
		panic(err)
	}
	return s
}

// Uint32 returns the selector as a big-endian integer.
func (s Selector) Uint32() uint32 {
	return binary.BigEndian.Uint32(s[:])
}

// Hex returns the 0x-prefixed lowercase hex form.
func (s Selector) Hex() string {
	return "0x" + hex.EncodeToString(s[:])
}

func (s Selector) String() string {
	return s.Hex()
}

// MarshalText implements encoding.TextMarshaler.
func (s Selector) MarshalText() ([]byte, error) {
	return []byte(s.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Selector) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
