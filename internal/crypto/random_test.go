package crypto

import (
	"errors"
	"io"
	"math"
	"strconv"
	"testing"
)

var errBoom = errors.New("boom")

// seqSource replays values, then returns 0 forever.
type seqSource struct {
	values []uint32
	calls  int
	err    error
}

func (s *seqSource) Uint32() (uint32, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.calls++
	if len(s.values) == 0 {
		return 0, nil
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v, nil
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errBoom
}

func TestIntnInvalidRange(t *testing.T) {
	sel := NewSelector()

	for _, n := range []int{0, -1, -100} {
		if _, err := sel.Intn(n); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("Intn(%d) error = %v, want %v", n, err, ErrInvalidRange)
		}
	}
}

func TestIntnRangeAbove32Bits(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("int cannot hold ranges above 2^32")
	}
	sel := NewSelector()

	var full uint64 = 1 << 32
	if _, err := sel.Intn(int(full)); err != nil {
		t.Errorf("Intn(2^32) unexpected error: %v", err)
	}
	if _, err := sel.Intn(int(full + 1)); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("Intn(2^32+1) error = %v, want %v", err, ErrInvalidRange)
	}
}

func TestIntnInRange(t *testing.T) {
	sel := NewSelector()

	for _, n := range []int{1, 2, 3, 7, 36, 62, 88, 1000} {
		for i := 0; i < 500; i++ {
			v, err := sel.Intn(n)
			if err != nil {
				t.Fatalf("Intn(%d) unexpected error: %v", n, err)
			}
			if v < 0 || v >= n {
				t.Fatalf("Intn(%d) = %d, out of range", n, v)
			}
		}
	}
}

func TestIntnRejectsBiasedTail(t *testing.T) {
	// For n = 3 the accepted region is [0, 4294967295); the max uint32 is rejected.
	src := &seqSource{values: []uint32{math.MaxUint32, 7}}
	sel := NewSelectorWithSource(src)

	v, err := sel.Intn(3)
	if err != nil {
		t.Fatalf("Intn() unexpected error: %v", err)
	}
	if v != 1 {
		t.Errorf("Intn(3) = %d, want 1", v)
	}
	if src.calls != 2 {
		t.Errorf("Intn(3) drew %d values, want 2", src.calls)
	}
}

func TestIntnPowerOfTwoNeverRejects(t *testing.T) {
	src := &seqSource{values: []uint32{math.MaxUint32}}
	sel := NewSelectorWithSource(src)

	v, err := sel.Intn(16)
	if err != nil {
		t.Fatalf("Intn() unexpected error: %v", err)
	}
	if v != 15 {
		t.Errorf("Intn(16) = %d, want 15", v)
	}
	if src.calls != 1 {
		t.Errorf("Intn(16) drew %d values, want 1", src.calls)
	}
}

func TestIntnPropagatesSourceError(t *testing.T) {
	sel := NewSelectorWithSource(&seqSource{err: errBoom})

	if _, err := sel.Intn(10); !errors.Is(err, errBoom) {
		t.Errorf("Intn() error = %v, want %v", err, errBoom)
	}
}

func TestIntnUniformChiSquare(t *testing.T) {
	const (
		n      = 10
		trials = 100000
		// df = 9; p(chi2 > 35) is about 7e-5.
		critical = 35.0
	)

	sel := NewSelector()
	var counts [n]int
	for i := 0; i < trials; i++ {
		v, err := sel.Intn(n)
		if err != nil {
			t.Fatalf("Intn() unexpected error: %v", err)
		}
		counts[v]++
	}

	expected := float64(trials) / n
	var chi2 float64
	for _, c := range counts {
		d := float64(c) - expected
		chi2 += d * d / expected
	}
	if chi2 > critical {
		t.Errorf("chi-square = %.2f exceeds %.2f; counts = %v", chi2, critical, counts)
	}
}

func TestNewSelectorCryptoSource(t *testing.T) {
	sel := NewSelector()
	if sel.Weak() {
		t.Fatal("NewSelector() should use the cryptographic source")
	}
	if err := sel.Warning(); err != nil {
		t.Errorf("Warning() = %v, want nil", err)
	}
}

func TestNewSelectorFallsBackWhenSourceFails(t *testing.T) {
	for name, r := range map[string]io.Reader{
		"failing reader": failingReader{},
		"nil reader":     nil,
	} {
		t.Run(name, func(t *testing.T) {
			sel := NewSelectorFrom(r)
			if !sel.Weak() {
				t.Fatal("expected weak selector")
			}
			if !errors.Is(sel.Warning(), ErrWeakRandomSource) {
				t.Errorf("Warning() = %v, want %v", sel.Warning(), ErrWeakRandomSource)
			}

			v, err := sel.Intn(36)
			if err != nil {
				t.Fatalf("Intn() unexpected error: %v", err)
			}
			if v < 0 || v >= 36 {
				t.Errorf("Intn(36) = %d, out of range", v)
			}
		})
	}
}

func TestSelectorRead(t *testing.T) {
	sel := NewSelectorWithSource(&seqSource{values: []uint32{0x04030201, 0x08070605}})

	buf := make([]byte, 6)
	n, err := sel.Read(buf)
	if err != nil {
		t.Fatalf("Read() unexpected error: %v", err)
	}
	if n != 6 {
		t.Errorf("Read() n = %d, want 6", n)
	}
	want := []byte{1, 2, 3, 4, 5, 6}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("Read() = %v, want %v", buf, want)
		}
	}
}
