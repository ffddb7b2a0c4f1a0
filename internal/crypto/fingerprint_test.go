package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestFingerprint(t *testing.T) {
	f, err := NewFingerprinter(bytes.Repeat([]byte{7}, 32))
	if err != nil {
		t.Fatalf("NewFingerprinter() unexpected error: %v", err)
	}

	a := f.Fingerprint("correct-horse")
	if len(a) != 16 {
		t.Errorf("Fingerprint() length = %d, want 16", len(a))
	}
	if a != f.Fingerprint("correct-horse") {
		t.Error("Fingerprint() is not stable")
	}
	if a == f.Fingerprint("correct-horsf") {
		t.Error("Fingerprint() collided for different passwords")
	}
}

func TestFingerprintDependsOnKey(t *testing.T) {
	f1, _ := NewFingerprinter(bytes.Repeat([]byte{1}, 32))
	f2, _ := NewFingerprinter(bytes.Repeat([]byte{2}, 32))

	if f1.Fingerprint("same") == f2.Fingerprint("same") {
		t.Error("different keys produced the same fingerprint")
	}
}

func TestNewFingerprinterInvalidKey(t *testing.T) {
	for _, n := range []int{0, 8, 15, 65} {
		if _, err := NewFingerprinter(make([]byte, n)); !errors.Is(err, ErrInvalidFingerprintKey) {
			t.Errorf("NewFingerprinter(%d bytes) error = %v, want %v", n, err, ErrInvalidFingerprintKey)
		}
	}
}

func TestNewRandomFingerprinter(t *testing.T) {
	f, err := NewRandomFingerprinter(NewSelector())
	if err != nil {
		t.Fatalf("NewRandomFingerprinter() unexpected error: %v", err)
	}
	if f.Fingerprint("x") == "" {
		t.Error("Fingerprint() returned empty string")
	}

	if _, err := NewRandomFingerprinter(failingReader{}); !errors.Is(err, errBoom) {
		t.Errorf("NewRandomFingerprinter() error = %v, want %v", err, errBoom)
	}
}
