// Package encryption seals exported key material with age, either to an
// X25519 recipient ("age1...") or to a passphrase.
package encryption

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"filippo.io/age"
	"filippo.io/age/armor"
)

var ErrEmptyPassphrase = errors.New("passphrase must not be empty")

// EncryptToRecipients encrypts plain to one or more X25519 recipients and
// returns ASCII-armored ciphertext.
func EncryptToRecipients(plain []byte, recipients ...string) ([]byte, error) {
	if len(recipients) == 0 {
		return nil, errors.New("at least one recipient is required")
	}
	rs := make([]age.Recipient, 0, len(recipients))
	for _, r := range recipients {
		parsed, err := age.ParseX25519Recipient(strings.TrimSpace(r))
		if err != nil {
			return nil, fmt.Errorf("invalid recipient %q: %w", r, err)
		}
		rs = append(rs, parsed)
	}
	return seal(plain, rs...)
}

// EncryptWithPassphrase encrypts plain under a scrypt-derived key. A
// workFactor of 0 keeps age's default; tests pass a small value.
func EncryptWithPassphrase(plain []byte, passphrase string, workFactor int) ([]byte, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}
	r, err := age.NewScryptRecipient(passphrase)
	if err != nil {
		return nil, err
	}
	if workFactor > 0 {
		r.SetWorkFactor(workFactor)
	}
	return seal(plain, r)
}

// DecryptWithIdentity opens armored ciphertext with an AGE-SECRET-KEY-1...
// identity.
func DecryptWithIdentity(ciphertext []byte, identity string) ([]byte, error) {
	id, err := age.ParseX25519Identity(strings.TrimSpace(identity))
	if err != nil {
		return nil, fmt.Errorf("invalid identity: %w", err)
	}
	return open(ciphertext, id)
}

// DecryptWithPassphrase opens armored ciphertext sealed by
// EncryptWithPassphrase.
func DecryptWithPassphrase(ciphertext []byte, passphrase string) ([]byte, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}
	id, err := age.NewScryptIdentity(passphrase)
	if err != nil {
		return nil, err
	}
	return open(ciphertext, id)
}

func seal(plain []byte, recipients ...age.Recipient) ([]byte, error) {
	var out bytes.Buffer
	aw := armor.NewWriter(&out)
	w, err := age.Encrypt(aw, recipients...)
	if err != nil {
		return nil, fmt.Errorf("failed to start encryption: %w", err)
	}
	if _, err := w.Write(plain); err != nil {
		return nil, fmt.Errorf("failed to encrypt: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish encryption: %w", err)
	}
	if err := aw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish armor: %w", err)
	}
	return out.Bytes(), nil
}

func open(ciphertext []byte, identity age.Identity) ([]byte, error) {
	r, err := age.Decrypt(armor.NewReader(bytes.NewReader(ciphertext)), identity)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}
	return io.ReadAll(r)
}
