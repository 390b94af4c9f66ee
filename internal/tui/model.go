package tui

import (
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/seqtools/seqtools/internal/alignment"
	"github.com/seqtools/seqtools/internal/keybinds"
	"github.com/seqtools/seqtools/internal/logger"
)

// Options configure a viewer session
type Options struct {
	TickInterval        time.Duration
	Dark                bool
	HighlightBackground bool

	// Keybinds defaults to keybinds.NewDefaultRegistry()
	Keybinds *keybinds.Registry

	// Clipboard receives copied records; defaults to the system clipboard
	Clipboard func(string) error
}

// DefaultOptions returns the startup settings used without a config file
func DefaultOptions() Options {
	return Options{
		TickInterval:        DefaultTickInterval,
		Dark:                true,
		HighlightBackground: true,
	}
}

// Model represents the viewer state
type Model struct {
	aln *alignment.Alignment

	keybinds *keybinds.Registry
	keys     keyMap
	help     help.Model

	ticker ticker
	now    func() time.Time
	copyFn func(string) error
	log    *slog.Logger

	width  int
	height int
	ready  bool // first WindowSizeMsg seen

	statusMsg    string
	statusExpiry time.Time

	cellCache map[cellKey]string
}

// New creates a viewer model for aln
func New(aln *alignment.Alignment, opts Options) *Model {
	registry := opts.Keybinds
	if registry == nil {
		registry = keybinds.NewDefaultRegistry()
	}
	copyFn := opts.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	m := &Model{
		aln:       aln,
		keybinds:  registry,
		keys:      newKeyMap(registry),
		help:      help.New(),
		now:       time.Now,
		copyFn:    copyFn,
		log:       logger.ComponentLogger("viewer"),
		cellCache: make(map[cellKey]string),
	}
	m.ticker = newTicker(opts.TickInterval, m.now())
	return m
}

// Init schedules the first redraw tick
func (m *Model) Init() tea.Cmd {
	now := m.now()
	m.ticker.reset(now)
	m.log.Debug("viewer started",
		"title", m.aln.Title(),
		"sequences", m.aln.NSeqs(),
		"max_len", m.aln.MaxLen(),
		"alphabet", m.aln.Alphabet().String())
	return m.ticker.schedule(now)
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)

	// Mouse events are captured so the terminal does not scroll, but unused
	case tea.MouseMsg:

	case tickMsg:
		cmd = m.handleTick(time.Time(msg))
	}

	return m, cmd
}

// View renders the viewer
func (m *Model) View() string {
	if !m.ready || m.width == 0 || m.height == 0 {
		return ""
	}
	return m.render()
}

// resize recomputes the layout and hands the sequence panel size to the alignment
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.ready = true

	l := ComputeLayout(width, height, false)
	m.aln.SetFrame(l.Sequences.Width, l.Sequences.Height)
	m.log.Debug("resized",
		"width", width,
		"height", height,
		"frame_width", l.Sequences.Width,
		"frame_height", l.Sequences.Height)
}

// handleTick resets the deadline and expires the status message
func (m *Model) handleTick(now time.Time) tea.Cmd {
	if !m.ticker.expired(now) {
		return m.ticker.schedule(now)
	}
	m.ticker.reset(now)
	if m.statusMsg != "" && !now.Before(m.statusExpiry) {
		m.statusMsg = ""
	}
	return m.ticker.schedule(now)
}

// setStatusMessage shows msg in the footer until StatusTimeout passes
func (m *Model) setStatusMessage(msg string) {
	m.statusMsg = msg
	m.statusExpiry = m.now().Add(StatusTimeout)
}
