package crypto

import (
	"math"
	"strings"
	"testing"
)

const bitsTolerance = 1e-9

func TestEntropyBits(t *testing.T) {
	tests := []struct {
		length, poolSize int
		want             float64
	}{
		{10, 36, 10 * math.Log2(36)},
		{16, 88, 16 * math.Log2(88)},
		{8, 2, 8},
		{64, 1, 0},
		{0, 36, 0},
		{-1, 36, 0},
		{10, 0, 0},
	}

	for _, tt := range tests {
		got := EntropyBits(tt.length, tt.poolSize)
		if math.Abs(got-tt.want) > bitsTolerance {
			t.Errorf("EntropyBits(%d, %d) = %v, want %v", tt.length, tt.poolSize, got, tt.want)
		}
	}
}

func TestCategoryFor(t *testing.T) {
	tests := []struct {
		bits float64
		want Category
	}{
		{0, VeryWeak},
		{27.99, VeryWeak},
		{28, Weak},
		{39.99, Weak},
		{40, Moderate},
		{59.99, Moderate},
		{60, Strong},
		{79.99, Strong},
		{80, VeryStrong},
		{400, VeryStrong},
	}

	for _, tt := range tests {
		if got := CategoryFor(tt.bits); got != tt.want {
			t.Errorf("CategoryFor(%v) = %v, want %v", tt.bits, got, tt.want)
		}
	}
}

func TestEstimateStrengthLowerDigitsScenario(t *testing.T) {
	opts := GeneratorOptions{Length: 10, Lowercase: true, Numbers: true}
	pool := opts.Pool()
	if pool.Size() != 36 {
		t.Fatalf("pool size = %d, want 36", pool.Size())
	}

	password, err := NewGenerator(nil).Generate(opts)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}

	s := EstimateStrength(password, pool)
	if math.Abs(s.Bits-51.7) > 0.05 {
		t.Errorf("EstimateStrength() bits = %.3f, want ~51.7", s.Bits)
	}
	if s.Category != Moderate {
		t.Errorf("EstimateStrength() category = %v, want %v", s.Category, Moderate)
	}
	if s.Category.String() != "Moderate" {
		t.Errorf("Category.String() = %q, want %q", s.Category.String(), "Moderate")
	}
}

func TestEstimateStrengthIgnoresContent(t *testing.T) {
	pool := BuildPool(Classes, false)

	a := EstimateStrength(strings.Repeat("a", 16), pool)
	b := EstimateStrength("Zq8!mK2#pL9@xW4$", pool)
	if a != b {
		t.Errorf("estimates differ for equal length: %+v vs %+v", a, b)
	}
	if want := 16 * math.Log2(88); math.Abs(a.Bits-want) > bitsTolerance {
		t.Errorf("bits = %v, want %v", a.Bits, want)
	}
}

func TestEstimateStrengthDistinctSymbols(t *testing.T) {
	// Duplicates in the pool do not add entropy.
	s := EstimateStrength("abcdefgh", Pool("abab"))
	if math.Abs(s.Bits-8) > bitsTolerance {
		t.Errorf("bits = %v, want 8", s.Bits)
	}
}

func TestCategoryString(t *testing.T) {
	want := []string{"Very weak", "Weak", "Moderate", "Strong", "Very strong"}
	for i, w := range want {
		if got := Category(i).String(); got != w {
			t.Errorf("Category(%d).String() = %q, want %q", i, got, w)
		}
	}
}
