package crypto

import (
	"errors"
	"strings"
)

const (
	MinLength     = 6
	MaxLength     = 64
	DefaultLength = 16
)

var (
	ErrLengthTooShort = errors.New("password length must be at least 6")
	ErrLengthTooLong  = errors.New("password length must be at most 64")
	ErrEmptyPool      = errors.New("at least one character type must be selected")
)

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length           int
	Uppercase        bool
	Lowercase        bool
	Numbers          bool
	Symbols          bool
	ExcludeAmbiguous bool
}

// DefaultOptions returns sensible defaults: 16 characters with all types enabled.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    DefaultLength,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// Classes returns the enabled character classes in pool order.
func (o GeneratorOptions) Classes() []CharacterClass {
	var out []CharacterClass
	if o.Uppercase {
		out = append(out, Uppercase)
	}
	if o.Lowercase {
		out = append(out, Lowercase)
	}
	if o.Numbers {
		out = append(out, Digits)
	}
	if o.Symbols {
		out = append(out, Symbols)
	}
	return out
}

// Pool builds the character pool the options describe.
func (o GeneratorOptions) Pool() Pool {
	return BuildPool(o.Classes(), o.ExcludeAmbiguous)
}

// ClampLength forces n into [MinLength, MaxLength].
func ClampLength(n int) int {
	if n < MinLength {
		return MinLength
	}
	if n > MaxLength {
		return MaxLength
	}
	return n
}

// Generator draws passwords from a pool through a Selector.
type Generator struct {
	sel *Selector
}

// NewGenerator creates a Generator. A nil selector means crypto/rand.
func NewGenerator(sel *Selector) *Generator {
	if sel == nil {
		sel = NewSelector()
	}
	return &Generator{sel: sel}
}

// Selector returns the selector backing the generator.
func (g *Generator) Selector() *Selector {
	return g.sel
}

// Generate creates a random password based on the given options.
// Every character is drawn independently and uniformly from the pool.
// Length is checked before the pool, so an out-of-range length is reported
// even when no class is enabled; ErrEmptyPool implies a valid length.
func (g *Generator) Generate(opts GeneratorOptions) (string, error) {
	if opts.Length < MinLength {
		return "", ErrLengthTooShort
	}
	if opts.Length > MaxLength {
		return "", ErrLengthTooLong
	}

	pool := []rune(opts.Pool())
	if len(pool) == 0 {
		return "", ErrEmptyPool
	}

	var sb strings.Builder
	sb.Grow(opts.Length)

	for i := 0; i < opts.Length; i++ {
		idx, err := g.sel.Intn(len(pool))
		if err != nil {
			return "", err
		}
		sb.WriteRune(pool[idx])
	}

	return sb.String(), nil
}
