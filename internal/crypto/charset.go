package crypto

import "strings"

// CharacterClass is one of the fixed character categories a password can draw from.
type CharacterClass int

const (
	Uppercase CharacterClass = iota
	Lowercase
	Digits
	Symbols
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// AmbiguousChars are easily confused when read or typed by hand.
	AmbiguousChars = "O0Il"
)

// Classes lists every character class in pool order.
var Classes = []CharacterClass{Uppercase, Lowercase, Digits, Symbols}

// Chars returns the ordered characters of the class.
func (c CharacterClass) Chars() string {
	switch c {
	case Uppercase:
		return uppercaseChars
	case Lowercase:
		return lowercaseChars
	case Digits:
		return numberChars
	case Symbols:
		return symbolChars
	}
	return ""
}

func (c CharacterClass) String() string {
	switch c {
	case Uppercase:
		return "uppercase"
	case Lowercase:
		return "lowercase"
	case Digits:
		return "digits"
	case Symbols:
		return "symbols"
	}
	return "unknown"
}

// Pool is the sequence of characters eligible for selection.
type Pool string

// Size is the number of characters in the pool, counting repeats.
func (p Pool) Size() int {
	return len([]rune(p))
}

// Distinct is the number of different characters in the pool.
func (p Pool) Distinct() int {
	seen := make(map[rune]struct{}, len(p))
	for _, r := range p {
		seen[r] = struct{}{}
	}
	return len(seen)
}

// Contains reports whether r is part of the pool.
func (p Pool) Contains(r rune) bool {
	return strings.ContainsRune(string(p), r)
}

// BuildPool concatenates the enabled classes in declared order, dropping
// AmbiguousChars when excludeAmbiguous is set.
func BuildPool(enabled []CharacterClass, excludeAmbiguous bool) Pool {
	on := make(map[CharacterClass]bool, len(enabled))
	for _, c := range enabled {
		on[c] = true
	}

	var b strings.Builder
	for _, c := range Classes {
		if !on[c] {
			continue
		}
		for _, r := range c.Chars() {
			if excludeAmbiguous && strings.ContainsRune(AmbiguousChars, r) {
				continue
			}
			b.WriteRune(r)
		}
	}
	return Pool(b.String())
}
