package crypto

import (
	"math"
	"unicode/utf8"
)

// Category is a coarse strength rating derived from entropy bits.
type Category int

const (
	VeryWeak Category = iota
	Weak
	Moderate
	Strong
	VeryStrong
)

func (c Category) String() string {
	switch c {
	case VeryWeak:
		return "Very weak"
	case Weak:
		return "Weak"
	case Moderate:
		return "Moderate"
	case Strong:
		return "Strong"
	case VeryStrong:
		return "Very strong"
	}
	return "Unknown"
}

// Strength is the entropy estimate for a generated password.
type Strength struct {
	Bits     float64
	Category Category
}

// EntropyBits returns length * log2(poolSize). Degenerate inputs yield 0.
func EntropyBits(length, poolSize int) float64 {
	if length <= 0 || poolSize <= 1 {
		return 0
	}
	return float64(length) * math.Log2(float64(poolSize))
}

// CategoryFor maps entropy bits onto a Category.
func CategoryFor(bits float64) Category {
	switch {
	case bits < 28:
		return VeryWeak
	case bits < 40:
		return Weak
	case bits < 60:
		return Moderate
	case bits < 80:
		return Strong
	default:
		return VeryStrong
	}
}

// EstimateStrength assumes password was drawn i.i.d. from pool; it does not
// look at the characters themselves.
func EstimateStrength(password string, pool Pool) Strength {
	bits := EntropyBits(utf8.RuneCountInString(password), pool.Distinct())
	return Strength{Bits: bits, Category: CategoryFor(bits)}
}
