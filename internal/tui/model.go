// Package tui is the interactive terminal front end of the generator.
package tui

import (
	"math/rand/v2"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/effect"
	"github.com/vaultpass/passgen/internal/history"
)

const (
	frameInterval  = 30 * time.Millisecond
	framesPerChar  = 2
	confettiHeight = 8
	confettiCount  = 40
	defaultWidth   = 60
)

type Config struct {
	Generator     *crypto.Generator
	Fingerprinter *crypto.Fingerprinter // optional; entries get no ID without it
	Options       crypto.GeneratorOptions
	HistorySize   int
	Theme         Theme

	// Rand drives the cosmetic effects only. Seeded from time when nil.
	Rand *rand.Rand
	Now  func() time.Time
}

type scrambleTickMsg struct{ gen int }
type confettiTickMsg struct{ gen int }

func scrambleTick(gen int) tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return scrambleTickMsg{gen: gen} })
}

func confettiTick(gen int) tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return confettiTickMsg{gen: gen} })
}

type model struct {
	cfg  Config
	opts crypto.GeneratorOptions

	// gen numbers generations; effects from older generations are ignored.
	gen      int
	password string
	strength crypto.Strength
	err      error

	scramble    effect.Scramble
	confetti    effect.Confetti
	hasScramble bool
	hasConfetti bool

	history     history.History
	showHistory bool
	theme       Theme
	styles      styles
	width       int
}

func NewModel(cfg Config) model {
	if cfg.Generator == nil {
		cfg.Generator = crypto.NewGenerator(nil)
	}
	if cfg.Options == (crypto.GeneratorOptions{}) {
		cfg.Options = crypto.DefaultOptions()
	}
	cfg.Options.Length = crypto.ClampLength(cfg.Options.Length)
	if cfg.Rand == nil {
		now := uint64(time.Now().UnixNano())
		cfg.Rand = rand.New(rand.NewPCG(now, now>>29))
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return model{
		cfg:     cfg,
		opts:    cfg.Options,
		history: history.New(cfg.HistorySize),
		theme:   cfg.Theme,
		styles:  newStyles(cfg.Theme),
		width:   defaultWidth,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg.String())

	case scrambleTickMsg:
		if !m.hasScramble || msg.gen != m.scramble.Gen || m.scramble.Done() {
			return m, nil
		}
		m.scramble = m.scramble.Tick(m.cfg.Rand)
		if m.scramble.Done() {
			return m, nil
		}
		return m, scrambleTick(m.gen)

	case confettiTickMsg:
		if !m.hasConfetti || msg.gen != m.confetti.Gen || m.confetti.Done() {
			return m, nil
		}
		m.confetti = m.confetti.Tick()
		if m.confetti.Done() {
			m.hasConfetti = false
			return m, nil
		}
		return m, confettiTick(m.gen)
	}
	return m, nil
}

func (m model) handleKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "enter", "g":
		return m.generate()
	case "+", "=":
		m.opts.Length = crypto.ClampLength(m.opts.Length + 1)
	case "-", "_":
		m.opts.Length = crypto.ClampLength(m.opts.Length - 1)
	case "u":
		m.opts.Uppercase = !m.opts.Uppercase
	case "l":
		m.opts.Lowercase = !m.opts.Lowercase
	case "d":
		m.opts.Numbers = !m.opts.Numbers
	case "s":
		m.opts.Symbols = !m.opts.Symbols
	case "a":
		m.opts.ExcludeAmbiguous = !m.opts.ExcludeAmbiguous
	case "t":
		m.theme = m.theme.Toggle()
		m.styles = newStyles(m.theme)
	case "h":
		m.showHistory = !m.showHistory
	case "x":
		m.history = m.history.Clear()
	}
	return m, nil
}

// generate builds a new password. On failure the previous password stays on screen.
func (m model) generate() (tea.Model, tea.Cmd) {
	pw, err := m.cfg.Generator.Generate(m.opts)
	if err != nil {
		m.err = err
		return m, nil
	}

	m.err = nil
	m.gen++
	m.password = pw
	m.strength = crypto.EstimateStrength(pw, m.opts.Pool())

	entry := history.Entry{
		Password:  pw,
		Length:    len([]rune(pw)),
		PoolSize:  m.opts.Pool().Distinct(),
		Bits:      m.strength.Bits,
		Strength:  m.strength.Category.String(),
		CreatedAt: m.cfg.Now(),
	}
	if m.cfg.Fingerprinter != nil {
		entry.ID = m.cfg.Fingerprinter.Fingerprint(pw)
	}
	m.history = m.history.Push(entry)

	m.scramble = effect.NewScramble(m.gen, pw, "", framesPerChar)
	m.hasScramble = true
	cmds := []tea.Cmd{scrambleTick(m.gen)}

	m.hasConfetti = false
	if m.strength.Category >= crypto.Strong {
		m.confetti = effect.NewConfetti(m.gen, m.width, confettiHeight, confettiCount, m.cfg.Rand)
		m.hasConfetti = true
		cmds = append(cmds, confettiTick(m.gen))
	}

	return m, tea.Batch(cmds...)
}

// Run starts the terminal UI and blocks until the user quits.
func Run(cfg Config) error {
	_, err := tea.NewProgram(NewModel(cfg), tea.WithAltScreen()).Run()
	return err
}
