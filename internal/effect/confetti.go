package effect

import (
	"math/rand/v2"
	"strings"
)

const (
	// MaxFrames bounds a burst even if particles never leave the field.
	MaxFrames = 60
	gravity   = 0.15
)

var confettiGlyphs = []rune{'*', '+', 'o', '.', '~', '^'}

// Particle is one piece of confetti.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Glyph  rune
	Color  int
}

// Confetti is a particle burst rendered on a width x height character field.
type Confetti struct {
	Gen int

	Width, Height int
	Particles     []Particle
	frame         int
}

// NewConfetti launches count particles from the bottom centre of the field.
func NewConfetti(gen, width, height, count int, rnd *rand.Rand) Confetti {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	ps := make([]Particle, count)
	for i := range ps {
		ps[i] = Particle{
			X:     float64(width) / 2,
			Y:     float64(height - 1),
			VX:    (rnd.Float64() - 0.5) * 3,
			VY:    -(1 + rnd.Float64()*1.5),
			Glyph: confettiGlyphs[rnd.IntN(len(confettiGlyphs))],
			Color: rnd.IntN(6),
		}
	}
	return Confetti{Gen: gen, Width: width, Height: height, Particles: ps}
}

func (c Confetti) Done() bool {
	return len(c.Particles) == 0 || c.frame >= MaxFrames
}

// Tick moves every particle and drops the ones that left the field.
func (c Confetti) Tick() Confetti {
	if c.Done() {
		return c
	}
	next := make([]Particle, 0, len(c.Particles))
	for _, p := range c.Particles {
		p.X += p.VX
		p.Y += p.VY
		p.VY += gravity
		if p.X < 0 || p.X >= float64(c.Width) || p.Y >= float64(c.Height) {
			continue
		}
		next = append(next, p)
	}
	c.Particles = next
	c.frame++
	return c
}

// Lines renders the field; cells above the top edge are not drawn.
func (c Confetti) Lines() []string {
	grid := make([][]rune, c.Height)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", c.Width))
	}
	if !c.Done() {
		for _, p := range c.Particles {
			x, y := int(p.X), int(p.Y)
			if y < 0 || y >= c.Height || x < 0 || x >= c.Width {
				continue
			}
			grid[y][x] = p.Glyph
		}
	}
	lines := make([]string, c.Height)
	for y, row := range grid {
		lines[y] = string(row)
	}
	return lines
}
