package tui

import (
	stderrors "errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/seqtools/seqtools/internal/alignment"
	"github.com/seqtools/seqtools/internal/errors"
	"github.com/seqtools/seqtools/internal/logger"
)

// stdoutIsTerminal reports whether the viewer has a terminal to draw on
var stdoutIsTerminal = func() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// newSession builds the viewer model for one alignment
func newSession(ids, seqs []string, title string, opts Options) *Model {
	aln := alignment.New(ids, seqs, title, alignment.Options{
		Dark:                opts.Dark,
		HighlightBackground: opts.HighlightBackground,
	})
	return New(aln, opts)
}

// Run opens the viewer on ids/seqs and blocks until the user quits.
// The terminal is restored on every exit path.
func Run(ids, seqs []string, title string, opts Options) error {
	log := logger.ComponentLogger("viewer")

	if !stdoutIsTerminal() {
		return errors.SetupFailed("stdout is not a terminal", nil)
	}
	m := newSession(ids, seqs, title, opts)

	// Pass pointer since Update uses pointer receiver
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Error("viewer stopped", "error", err, "started", m.ready)
		return classifyRunError(err, m.ready)
	}

	return nil
}

// classifyRunError maps a Bubble Tea failure to a session error kind.
// Failures before the first window size message happened while entering
// raw mode or the alternate screen.
func classifyRunError(err error, started bool) error {
	switch {
	case stderrors.Is(err, tea.ErrProgramPanic):
		return errors.RenderFailed(err)
	case !started:
		return errors.SetupFailed("failed to initialize terminal", err)
	default:
		return errors.InputFailed(err)
	}
}
