package crypto

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"
)

const fingerprintKeySize = 32

var ErrInvalidFingerprintKey = errors.New("fingerprint key must be between 16 and 64 bytes")

// Fingerprinter derives short stable identifiers for passwords. The key lives
// only in memory, so identifiers cannot be reversed offline.
type Fingerprinter struct {
	key []byte
}

// NewFingerprinter creates a Fingerprinter with a keyed BLAKE2b-256 hash.
func NewFingerprinter(key []byte) (*Fingerprinter, error) {
	if len(key) < 16 || len(key) > blake2b.Size {
		return nil, ErrInvalidFingerprintKey
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &Fingerprinter{key: k}, nil
}

// NewRandomFingerprinter keys a Fingerprinter from r.
func NewRandomFingerprinter(r io.Reader) (*Fingerprinter, error) {
	key := make([]byte, fingerprintKeySize)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("generating fingerprint key: %w", err)
	}
	return NewFingerprinter(key)
}

// Fingerprint returns 16 hex characters identifying password.
func (f *Fingerprinter) Fingerprint(password string) string {
	h, err := blake2b.New256(f.key)
	if err != nil {
		// key length is checked in NewFingerprinter
		panic(err)
	}
	h.Write([]byte(password))
	return hex.EncodeToString(h.Sum(nil)[:8])
}
