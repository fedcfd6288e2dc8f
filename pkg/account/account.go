// Package account generates Ethereum accounts: a secp256k1 key pair and the
// address derived from the public key.
package account

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/luxfi/pocketh/pkg/selector"
)

const (
	PrivateKeySize = 32
	// PublicKeySize is the uncompressed point without its 0x04 lead byte.
	PublicKeySize = 64
	AddressSize   = 20
)

var ErrInvalidPrivateKey = errors.New("invalid private key")

// Address is an Ethereum account address.
type Address [AddressSize]byte

// Hex returns the 0x-prefixed lowercase form.
func (a Address) Hex() string {
	return "0x" + hex.EncodeToString(a[:])
}

// Checksum returns the EIP-55 mixed-case form.
func (a Address) Checksum() string {
	lower := hex.EncodeToString(a[:])
	digest := selector.Keccak256([]byte(lower))

	var b strings.Builder
	b.Grow(2 + len(lower))
	b.WriteString("0x")
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		nibble := digest[i/2]
		if i%2 == 0 {
			nibble >>= 4
		}
		if c >= 'a' && nibble&0xf >= 8 {
			c -= 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}

func (a Address) String() string {
	return a.Checksum()
}

// Account holds a key pair and its address.
type Account struct {
	privateKey *secp256k1.PrivateKey
	PublicKey  [PublicKeySize]byte
	Address    Address
}

// Generate creates an account from a fresh private key drawn from rand, which
// should be crypto/rand.Reader outside of tests.
func Generate(rand io.Reader) (*Account, error) {
	priv, err := secp256k1.GeneratePrivateKeyFromRand(rand)
	if err != nil {
		return nil, fmt.Errorf("failed to generate private key: %w", err)
	}
	return fromKey(priv), nil
}

// FromPrivateKey rebuilds the account of a 32-byte private key.
func FromPrivateKey(key []byte) (*Account, error) {
	if len(key) != PrivateKeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidPrivateKey, len(key), PrivateKeySize)
	}
	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(key); overflow {
		return nil, fmt.Errorf("%w: not below the curve order", ErrInvalidPrivateKey)
	}
	if scalar.IsZero() {
		return nil, fmt.Errorf("%w: zero", ErrInvalidPrivateKey)
	}
	return fromKey(secp256k1.NewPrivateKey(&scalar)), nil
}

// FromHex is FromPrivateKey for a hex string with optional 0x prefix.
func FromHex(key string) (*Account, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(key, "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	return FromPrivateKey(b)
}

func fromKey(priv *secp256k1.PrivateKey) *Account {
	acc := &Account{privateKey: priv}
	// Skip the 0x04 uncompressed-point marker; the address is computed over X|Y.
	uncompressed := priv.PubKey().SerializeUncompressed()
	copy(acc.PublicKey[:], uncompressed[1:])
	copy(acc.Address[:], selector.Keccak256(acc.PublicKey[:])[32-AddressSize:])
	return acc
}

// PrivateKeyBytes returns the raw 32-byte private key.
// WARNING: This exposes the private key.
func (a *Account) PrivateKeyBytes() []byte {
	return a.privateKey.Serialize()
}

// PrivateKeyHex returns the 0x-prefixed private key.
// WARNING: This exposes the private key.
func (a *Account) PrivateKeyHex() string {
	return "0x" + hex.EncodeToString(a.PrivateKeyBytes())
}

// PublicKeyHex returns the 0x-prefixed 64-byte public key.
func (a *Account) PublicKeyHex() string {
	return "0x" + hex.EncodeToString(a.PublicKey[:])
}
