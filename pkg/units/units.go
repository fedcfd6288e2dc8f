// Package units converts between wei and the larger ether denominations and
// between decimal and hex renderings of 256-bit integers.
package units

import (
	"errors"
	"fmt"
	"strings"

	"github.com/holiman/uint256"
)

var (
	ErrSyntax    = errors.New("invalid number")
	ErrNegative  = errors.New("negative amounts are not supported")
	ErrPrecision = errors.New("too many fractional digits")
	ErrRange     = errors.New("value exceeds 256 bits")
)

// Unit is a named denomination of wei.
type Unit struct {
	Name     string
	Decimals int
}

var (
	Wei   = Unit{Name: "wei", Decimals: 0}
	Gwei  = Unit{Name: "gwei", Decimals: 9}
	Ether = Unit{Name: "ether", Decimals: 18}
)

// ParseUnit maps a unit name to its denomination. Unknown names fall back to
// ether.
func ParseUnit(name string) Unit {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "wei":
		return Wei
	case "gwei":
		return Gwei
	default: // "eth", "ether" and anything unrecognised
		return Ether
	}
}

// FromWei renders value in unit with exactly unit.Decimals fractional digits,
// e.g. 1 wei is "0.000000001" gwei.
func FromWei(value *uint256.Int, unit Unit) string {
	if unit.Decimals == 0 {
		return value.Dec()
	}
	scale := pow10(unit.Decimals)
	quo, rem := new(uint256.Int).DivMod(value, scale, new(uint256.Int))

	frac := rem.Dec()
	return quo.Dec() + "." + strings.Repeat("0", unit.Decimals-len(frac)) + frac
}

// ToWei parses a non-negative decimal amount of unit, such as "1.5", and
// returns the exact number of wei.
func ToWei(value string, unit Unit) (*uint256.Int, error) {
	s := strings.TrimSpace(value)
	if strings.HasPrefix(s, "-") {
		return nil, fmt.Errorf("%w: %q", ErrNegative, value)
	}
	s = strings.TrimPrefix(s, "+")

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return nil, fmt.Errorf("%w: %q", ErrSyntax, value)
	}
	if !isDigits(whole) || !isDigits(frac) {
		return nil, fmt.Errorf("%w: %q", ErrSyntax, value)
	}
	frac = strings.TrimRight(frac, "0")
	if len(frac) > unit.Decimals {
		return nil, fmt.Errorf("%w: %q has more than %d decimals for %s", ErrPrecision, value, unit.Decimals, unit.Name)
	}
	return parseDigits(whole + frac + strings.Repeat("0", unit.Decimals-len(frac)))
}

// ParseInt accepts a decimal or 0x-prefixed hex integer.
func ParseInt(s string) (*uint256.Int, error) {
	s = strings.TrimSpace(s)
	if hexDigits, ok := cutHexPrefix(s); ok {
		return parseHex(hexDigits)
	}
	if s == "" || !isDigits(s) {
		return nil, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	return parseDigits(s)
}

// ToHex converts a decimal string to 0x-prefixed minimal hex.
func ToHex(decimal string) (string, error) {
	s := strings.TrimSpace(decimal)
	if s == "" || !isDigits(s) {
		return "", fmt.Errorf("%w: %q", ErrSyntax, decimal)
	}
	v, err := parseDigits(s)
	if err != nil {
		return "", err
	}
	return v.Hex(), nil
}

// ToDecimal converts a hex string, with or without 0x prefix, to decimal.
func ToDecimal(hexStr string) (string, error) {
	s := strings.TrimSpace(hexStr)
	if digits, ok := cutHexPrefix(s); ok {
		s = digits
	}
	v, err := parseHex(s)
	if err != nil {
		return "", err
	}
	return v.Dec(), nil
}

func cutHexPrefix(s string) (string, bool) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s[2:], true
	}
	return s, false
}

// parseHex parses bare hex digits, tolerating leading zeros.
func parseHex(digits string) (*uint256.Int, error) {
	if digits == "" {
		return nil, fmt.Errorf("%w: empty hex", ErrSyntax)
	}
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return nil, fmt.Errorf("%w: %q is not hex", ErrSyntax, digits)
		}
	}
	trimmed := strings.TrimLeft(strings.ToLower(digits), "0")
	if trimmed == "" {
		trimmed = "0"
	}
	if len(trimmed) > 64 {
		return nil, fmt.Errorf("%w: 0x%s", ErrRange, trimmed)
	}
	v, err := uint256.FromHex("0x" + trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return v, nil
}

// parseDigits parses a string of decimal digits, tolerating leading zeros.
func parseDigits(digits string) (*uint256.Int, error) {
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		return new(uint256.Int), nil
	}
	v, err := uint256.FromDecimal(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRange, trimmed)
	}
	return v, nil
}

func pow10(n int) *uint256.Int {
	return new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(uint64(n)))
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
