package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/vaultpass/passgen/internal/crypto"
)

// Theme is the colour scheme of the terminal UI.
type Theme int

const (
	ThemeDark Theme = iota
	ThemeLight
)

func (t Theme) String() string {
	if t == ThemeLight {
		return "light"
	}
	return "dark"
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// ParseTheme accepts "dark" or "light"; anything else is dark.
func ParseTheme(s string) Theme {
	if s == "light" {
		return ThemeLight
	}
	return ThemeDark
}

type styles struct {
	title    lipgloss.Style
	text     lipgloss.Style
	muted    lipgloss.Style
	password lipgloss.Style
	banner   lipgloss.Style
	errLine  lipgloss.Style
	panel    lipgloss.Style
	meter    map[crypto.Category]lipgloss.Style
	confetti []lipgloss.Style
}

type palette struct {
	fg, muted, accent, border lipgloss.Color
}

var palettes = map[Theme]palette{
	ThemeDark:  {fg: "#E4E4E7", muted: "#71717A", accent: "#A78BFA", border: "#3F3F46"},
	ThemeLight: {fg: "#18181B", muted: "#71717A", accent: "#6D28D9", border: "#D4D4D8"},
}

var meterColors = map[crypto.Category]lipgloss.Color{
	crypto.VeryWeak:   "#DC2626",
	crypto.Weak:       "#EA580C",
	crypto.Moderate:   "#CA8A04",
	crypto.Strong:     "#65A30D",
	crypto.VeryStrong: "#16A34A",
}

var confettiColors = []lipgloss.Color{"#F43F5E", "#F59E0B", "#10B981", "#3B82F6", "#8B5CF6", "#EC4899"}

func newStyles(t Theme) styles {
	p := palettes[t]
	s := styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		text:     lipgloss.NewStyle().Foreground(p.fg),
		muted:    lipgloss.NewStyle().Foreground(p.muted),
		password: lipgloss.NewStyle().Bold(true).Foreground(p.fg).Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(p.accent),
		banner:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#B91C1C")).Padding(0, 1),
		errLine:  lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626")),
		panel:    lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(p.border).Padding(0, 1),
		meter:    make(map[crypto.Category]lipgloss.Style, len(meterColors)),
	}
	for c, col := range meterColors {
		s.meter[c] = lipgloss.NewStyle().Foreground(col)
	}
	for _, col := range confettiColors {
		s.confetti = append(s.confetti, lipgloss.NewStyle().Foreground(col))
	}
	return s
}
