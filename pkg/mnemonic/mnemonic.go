// Package mnemonic generates BIP-39 English mnemonic phrases.
package mnemonic

import (
	"errors"
	"fmt"

	"github.com/tyler-smith/go-bip39"
)

// DefaultWords is the phrase length used when none is requested.
const DefaultWords = 12

var ErrInvalidWordCount = errors.New("invalid mnemonic word count")

// entropyBits maps a phrase length to its entropy size. Every 3 words carry
// 32 bits of entropy plus 1 checksum bit.
var entropyBits = map[int]int{
	12: 128,
	15: 160,
	18: 192,
	21: 224,
	24: 256,
}

// Generate returns a random phrase of the given length, drawing entropy from
// crypto/rand.
func Generate(words int) (string, error) {
	bits, ok := entropyBits[words]
	if !ok {
		return "", fmt.Errorf("%w: %d (want 12, 15, 18, 21 or 24)", ErrInvalidWordCount, words)
	}
	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return "", fmt.Errorf("failed to generate entropy: %w", err)
	}
	phrase, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("failed to create mnemonic: %w", err)
	}
	return phrase, nil
}

// Validate reports whether phrase has valid words and checksum.
func Validate(phrase string) bool {
	return bip39.IsMnemonicValid(phrase)
}
