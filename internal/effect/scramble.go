// Package effect holds the cosmetic animations shown after a password is
// generated. Animations are plain values advanced one frame per Tick; they
// never touch the password itself, which is final before the first frame.
package effect

import (
	"math/rand/v2"
	"strings"
)

// DefaultGlyphs are shown in not-yet-revealed positions.
const DefaultGlyphs = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%&*?"

// Scramble reveals a password left to right, cycling random glyphs in the
// positions that are still hidden.
type Scramble struct {
	Gen int

	target        []rune
	glyphs        []rune
	noise         []rune
	frame         int
	framesPerChar int
}

// NewScramble starts a reveal of password for generation gen.
func NewScramble(gen int, password, glyphs string, framesPerChar int) Scramble {
	if glyphs == "" {
		glyphs = DefaultGlyphs
	}
	if framesPerChar < 1 {
		framesPerChar = 1
	}
	target := []rune(password)
	return Scramble{
		Gen:           gen,
		target:        target,
		glyphs:        []rune(glyphs),
		noise:         append([]rune(nil), target...),
		framesPerChar: framesPerChar,
	}
}

// Revealed is the number of characters shown in their final form.
func (s Scramble) Revealed() int {
	n := s.frame / s.framesPerChar
	if n > len(s.target) {
		return len(s.target)
	}
	return n
}

func (s Scramble) Done() bool {
	return s.Revealed() >= len(s.target)
}

// Tick advances one frame and reshuffles the hidden positions using rnd.
func (s Scramble) Tick(rnd *rand.Rand) Scramble {
	if s.Done() {
		return s
	}
	s.frame++
	noise := make([]rune, len(s.target))
	copy(noise, s.target)
	for i := s.Revealed(); i < len(noise); i++ {
		noise[i] = s.glyphs[rnd.IntN(len(s.glyphs))]
	}
	s.noise = noise
	return s
}

// Frame renders the current animation frame.
func (s Scramble) Frame() string {
	if s.Done() {
		return string(s.target)
	}
	var b strings.Builder
	r := s.Revealed()
	b.WriteString(string(s.target[:r]))
	b.WriteString(string(s.noise[r:]))
	return b.String()
}
