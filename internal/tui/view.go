package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/effect"
)

const (
	meterWidth = 30
	// meterFullBits is the entropy at which the meter is drawn full.
	meterFullBits = 128.0
)

func (m model) View() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.title.Render("passgen"))
	b.WriteString(s.muted.Render("  (q to quit)"))
	b.WriteByte('\n')

	if w := m.cfg.Generator.Selector().Warning(); w != nil {
		b.WriteString(s.banner.Render("WARNING: " + w.Error()))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	b.WriteString(m.viewOptions())
	b.WriteString("\n\n")

	if m.hasConfetti {
		b.WriteString(m.viewConfetti())
		b.WriteByte('\n')
	}

	if m.password != "" {
		frame := m.password
		if m.hasScramble {
			frame = m.scramble.Frame()
		}
		b.WriteString(s.password.Render(frame))
		b.WriteByte('\n')
		b.WriteString(m.viewMeter())
		b.WriteByte('\n')
	} else {
		b.WriteString(s.muted.Render("press enter to generate"))
		b.WriteByte('\n')
	}

	if m.err != nil {
		b.WriteString(s.errLine.Render(m.err.Error()))
		b.WriteByte('\n')
	}

	if m.showHistory {
		b.WriteByte('\n')
		b.WriteString(m.viewHistory())
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(s.muted.Render("enter generate  +/- length  u/l/d/s classes  a ambiguous  t theme  h history  x clear"))
	b.WriteByte('\n')
	return b.String()
}

func (m model) viewOptions() string {
	s := m.styles
	check := func(on bool, label string) string {
		box := "[ ]"
		if on {
			box = "[x]"
		}
		return s.text.Render(box + " " + label)
	}

	lines := []string{
		s.text.Render(fmt.Sprintf("Length: %d  (%d-%d)", m.opts.Length, crypto.MinLength, crypto.MaxLength)),
		check(m.opts.Uppercase, "Uppercase (u)") + "  " + check(m.opts.Lowercase, "Lowercase (l)"),
		check(m.opts.Numbers, "Digits (d)") + "  " + check(m.opts.Symbols, "Symbols (s)"),
		check(m.opts.ExcludeAmbiguous, "Exclude ambiguous O0Il (a)"),
		s.muted.Render("Theme: " + m.theme.String()),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m model) viewMeter() string {
	filled := int(math.Round(math.Min(m.strength.Bits/meterFullBits, 1) * meterWidth))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", meterWidth-filled)
	style := m.styles.meter[m.strength.Category]
	return style.Render(bar) + " " + style.Render(fmt.Sprintf("%s (%.1f bits)", m.strength.Category, m.strength.Bits))
}

func (m model) viewConfetti() string {
	c := m.confetti
	grid := make([][]string, c.Height)
	for y := range grid {
		grid[y] = make([]string, c.Width)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}
	for _, p := range c.Particles {
		x, y := int(p.X), int(p.Y)
		if y < 0 || y >= c.Height || x < 0 || x >= c.Width {
			continue
		}
		grid[y][x] = m.confettiStyle(p).Render(string(p.Glyph))
	}

	lines := make([]string, len(grid))
	for y, row := range grid {
		lines[y] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}

func (m model) confettiStyle(p effect.Particle) lipgloss.Style {
	return m.styles.confetti[p.Color%len(m.styles.confetti)]
}

func (m model) viewHistory() string {
	s := m.styles
	entries := m.history.Entries()
	if len(entries) == 0 {
		return s.panel.Render(s.muted.Render("history is empty"))
	}

	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, s.title.Render(fmt.Sprintf("History (%d/%d)", len(entries), m.history.Cap())))
	for i, e := range entries {
		lines = append(lines, fmt.Sprintf("%2d. %s  %s",
			i+1, s.text.Render(e.Password), s.muted.Render(fmt.Sprintf("%s, %.1f bits", e.Strength, e.Bits))))
	}
	return s.panel.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
