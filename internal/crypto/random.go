package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	mathrand "math/rand/v2"
	"sync"
	"time"
)

var (
	ErrInvalidRange     = errors.New("random range must be between 1 and 2^32")
	ErrWeakRandomSource = errors.New("cryptographic random source unavailable, using non-cryptographic fallback")
)

// Source produces uniformly distributed 32-bit values.
type Source interface {
	Uint32() (uint32, error)
}

type readerSource struct {
	r io.Reader
}

func (s readerSource) Uint32() (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(s.r, b[:]); err != nil {
		return 0, fmt.Errorf("reading random bytes: %w", err)
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

// weakSource wraps a seeded PCG. *mathrand.Rand is not safe for concurrent use.
type weakSource struct {
	mu  sync.Mutex
	rng *mathrand.Rand
}

func newWeakSource() *weakSource {
	now := uint64(time.Now().UnixNano())
	return &weakSource{rng: mathrand.New(mathrand.NewPCG(now, now>>17|now<<47))}
}

func (s *weakSource) Uint32() (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Uint32(), nil
}

// Selector draws unbiased integers in a bounded range.
type Selector struct {
	src  Source
	weak bool
}

// NewSelector returns a Selector backed by crypto/rand.
func NewSelector() *Selector {
	return NewSelectorFrom(rand.Reader)
}

// NewSelectorFrom probes r once and uses it as the random source. If the probe
// fails the selector falls back to math/rand and reports ErrWeakRandomSource
// from Warning.
func NewSelectorFrom(r io.Reader) *Selector {
	src := readerSource{r: r}
	if r != nil {
		if _, err := src.Uint32(); err == nil {
			return &Selector{src: src}
		}
	}
	return &Selector{src: newWeakSource(), weak: true}
}

// NewSelectorWithSource uses src as-is, without probing.
func NewSelectorWithSource(src Source) *Selector {
	return &Selector{src: src}
}

// Weak reports whether the selector runs on the non-cryptographic fallback.
func (s *Selector) Weak() bool {
	return s.weak
}

// Warning returns ErrWeakRandomSource when the guarantee is degraded, nil otherwise.
func (s *Selector) Warning() error {
	if s.weak {
		return ErrWeakRandomSource
	}
	return nil
}

// Intn returns a uniformly distributed integer in [0, n).
// Draws at or above the largest multiple of n that fits in 2^32 are rejected,
// which removes modulo bias exactly.
func (s *Selector) Intn(n int) (int, error) {
	if n <= 0 || uint64(n) > 1<<32 {
		return 0, ErrInvalidRange
	}

	bound := uint64(n)
	limit := (1 << 32) / bound * bound

	for {
		v, err := s.src.Uint32()
		if err != nil {
			return 0, err
		}
		if uint64(v) < limit {
			return int(uint64(v) % bound), nil
		}
	}
}

// Read fills p from the underlying source.
func (s *Selector) Read(p []byte) (int, error) {
	var buf [4]byte
	for i := 0; i < len(p); i += 4 {
		v, err := s.src.Uint32()
		if err != nil {
			return i, err
		}
		binary.LittleEndian.PutUint32(buf[:], v)
		copy(p[i:], buf[:])
	}
	return len(p), nil
}
