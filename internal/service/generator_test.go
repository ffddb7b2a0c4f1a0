package service

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/metrics"
	"github.com/vaultpass/passgen/internal/model"
)

func boolPtr(b bool) *bool { return &b }

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errors.New("no entropy") }

func newTestGeneratorService(t *testing.T) *GeneratorService {
	t.Helper()
	fp, err := crypto.NewFingerprinter(bytes.Repeat([]byte{9}, 32))
	if err != nil {
		t.Fatalf("NewFingerprinter() unexpected error: %v", err)
	}
	return NewGeneratorService(nil, fp, metrics.New())
}

func TestGenerate_Defaults(t *testing.T) {
	svc := newTestGeneratorService(t)
	resp, err := svc.Generate(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 16 {
		t.Errorf("expected length 16, got %d", resp.Length)
	}
	if len(resp.Password) != 16 {
		t.Errorf("expected password length 16, got %d", len(resp.Password))
	}
	if resp.PoolSize != 88 {
		t.Errorf("expected pool size 88, got %d", resp.PoolSize)
	}
	if resp.Strength != "Very strong" {
		t.Errorf("expected Very strong, got %q", resp.Strength)
	}
	if len(resp.ID) != 16 {
		t.Errorf("expected 16-char id, got %q", resp.ID)
	}
	if resp.Warning != "" {
		t.Errorf("unexpected warning %q", resp.Warning)
	}
}

func TestGenerate_CustomOptions(t *testing.T) {
	svc := newTestGeneratorService(t)
	resp, err := svc.Generate(model.GenerateRequest{
		Length:    32,
		Uppercase: boolPtr(true),
		Lowercase: boolPtr(true),
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 32 {
		t.Errorf("expected length 32, got %d", resp.Length)
	}
	for _, c := range resp.Password {
		if !((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
			t.Errorf("unexpected character %q in password with only uppercase+lowercase", c)
		}
	}
}

func TestGenerate_LowerDigitsScenario(t *testing.T) {
	svc := newTestGeneratorService(t)
	resp, err := svc.Generate(model.GenerateRequest{
		Length:    10,
		Uppercase: boolPtr(false),
		Lowercase: boolPtr(true),
		Numbers:   boolPtr(true),
		Symbols:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.PoolSize != 36 {
		t.Errorf("expected pool size 36, got %d", resp.PoolSize)
	}
	if math.Abs(resp.EntropyBits-51.7) > 0.05 {
		t.Errorf("expected ~51.7 bits, got %.3f", resp.EntropyBits)
	}
	if resp.Strength != "Moderate" {
		t.Errorf("expected Moderate, got %q", resp.Strength)
	}
}

func TestGenerate_LengthTooShort(t *testing.T) {
	svc := newTestGeneratorService(t)
	_, err := svc.Generate(model.GenerateRequest{Length: 3})
	if !errors.Is(err, crypto.ErrLengthTooShort) {
		t.Fatalf("expected ErrLengthTooShort, got %v", err)
	}
}

func TestGenerate_LengthTooLong(t *testing.T) {
	svc := newTestGeneratorService(t)
	_, err := svc.Generate(model.GenerateRequest{Length: 200})
	if !errors.Is(err, crypto.ErrLengthTooLong) {
		t.Fatalf("expected ErrLengthTooLong, got %v", err)
	}
}

func TestGenerate_NoCharacterTypes(t *testing.T) {
	m := metrics.New()
	svc := NewGeneratorService(nil, nil, m)
	_, err := svc.Generate(model.GenerateRequest{
		Length:    16,
		Uppercase: boolPtr(false),
		Lowercase: boolPtr(false),
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if !errors.Is(err, crypto.ErrEmptyPool) {
		t.Fatalf("expected ErrEmptyPool, got %v", err)
	}
	if got := testutil.CollectAndCount(m.Registry(), "passgen_generation_failures_total"); got != 1 {
		t.Errorf("expected 1 failure series, got %d", got)
	}
}

func TestGenerate_WeakSourceWarning(t *testing.T) {
	gen := crypto.NewGenerator(crypto.NewSelectorFrom(brokenReader{}))
	svc := NewGeneratorService(gen, nil, nil)

	resp, err := svc.Generate(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Warning != crypto.ErrWeakRandomSource.Error() {
		t.Errorf("expected weak source warning, got %q", resp.Warning)
	}
	if resp.ID != "" {
		t.Errorf("expected no id without fingerprinter, got %q", resp.ID)
	}
}

func TestStrength(t *testing.T) {
	svc := newTestGeneratorService(t)
	resp, err := svc.Strength(model.StrengthRequest{
		Password:  "abcdefgh12",
		Uppercase: boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.PoolSize != 36 || resp.Strength != "Moderate" {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestStrength_EmptyPool(t *testing.T) {
	svc := newTestGeneratorService(t)
	_, err := svc.Strength(model.StrengthRequest{
		Password:  "abc",
		Uppercase: boolPtr(false),
		Lowercase: boolPtr(false),
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if !errors.Is(err, crypto.ErrEmptyPool) {
		t.Fatalf("expected ErrEmptyPool, got %v", err)
	}
}
