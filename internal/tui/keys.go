package tui

import (
	"bytes"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/seqtools/seqtools/internal/fastx"
	"github.com/seqtools/seqtools/internal/keybinds"
)

// handleKeyPress maps a key to its action in the viewer context.
// Unbound keys are ignored.
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextViewer, msg.String())
	if !ok {
		return nil
	}
	return m.dispatch(action)
}

// dispatch applies one action to the model
func (m *Model) dispatch(action keybinds.Action) tea.Cmd {
	switch action {
	case keybinds.ActionQuit:
		m.log.Debug("quit requested")
		return tea.Quit

	case keybinds.ActionToggleDark:
		m.aln.ToggleDark()
	case keybinds.ActionToggleHelp:
		m.aln.ToggleHelp()
	case keybinds.ActionToggleHighlight:
		m.aln.ToggleHighlight()

	case keybinds.ActionScrollUp:
		m.aln.ScrollUp()
	case keybinds.ActionScrollDown:
		m.aln.ScrollDown()
	case keybinds.ActionScrollLeft:
		m.aln.ScrollLeft()
	case keybinds.ActionScrollRight:
		m.aln.ScrollRight()

	case keybinds.ActionScrollTop:
		m.aln.ScrollTop()
	case keybinds.ActionScrollBottom:
		m.aln.ScrollBottom()
	case keybinds.ActionScrollStart:
		m.aln.ScrollStart()
	case keybinds.ActionScrollEnd:
		m.aln.ScrollEnd()

	case keybinds.ActionCopyRecord:
		m.copyTopRecord()

	default:
		m.log.Debug("action has no handler", "action", string(action))
	}
	return nil
}

// copyTopRecord puts the first visible record on the clipboard as FASTA
func (m *Model) copyTopRecord() {
	first, last := m.aln.VisibleRows()
	if first >= last {
		m.setStatusMessage("nothing to copy")
		return
	}

	rec := &fastx.Record{ID: m.aln.IDs()[first], Seq: []byte(m.aln.Seqs()[first])}
	var buf bytes.Buffer
	w := fastx.NewWriter(&buf, fastx.FASTA, 0)
	err := w.Write(rec)
	if err == nil {
		err = w.Flush()
	}
	if err != nil {
		m.setStatusMessage(fmt.Sprintf("copy failed: %v", err))
		return
	}

	if err := m.copyFn(buf.String()); err != nil {
		m.log.Warn("clipboard write failed", "id", rec.Name(), "error", err)
		m.setStatusMessage(fmt.Sprintf("copy failed: %v", err))
		return
	}
	m.setStatusMessage("copied " + rec.Name())
}
