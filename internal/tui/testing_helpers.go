package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/seqtools/seqtools/internal/alignment"
)

// testClock is a settable time source for tick tests
type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time { return c.t }

func (c *testClock) advance(d time.Duration) time.Time {
	c.t = c.t.Add(d)
	return c.t
}

// CreateTestModel creates a sized Model over ids/seqs with a fake clock and clipboard
func CreateTestModel(t *testing.T, ids, seqs []string, width, height int) (*Model, *testClock, *[]string) {
	t.Helper()

	clock := &testClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	var copied []string

	opts := DefaultOptions()
	opts.Clipboard = func(s string) error {
		copied = append(copied, s)
		return nil
	}

	aln := alignment.New(ids, seqs, "test.fa", alignment.DefaultOptions())
	m := New(aln, opts)
	m.now = clock.now
	m.ticker = newTicker(opts.TickInterval, clock.now())
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})

	return m, clock, &copied
}

// sendKey feeds a key press through Update and returns the resulting command
func sendKey(m *Model, k string) tea.Cmd {
	var msg tea.KeyMsg
	switch k {
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	case "pgup":
		msg = tea.KeyMsg{Type: tea.KeyPgUp}
	case "pgdown":
		msg = tea.KeyMsg{Type: tea.KeyPgDown}
	case "home":
		msg = tea.KeyMsg{Type: tea.KeyHome}
	case "end":
		msg = tea.KeyMsg{Type: tea.KeyEnd}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	_, cmd := m.Update(msg)
	return cmd
}

// isQuit reports whether cmd produces tea.QuitMsg
func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

// AssertModelField is a generic helper for checking model field values
func AssertModelField[T comparable](t *testing.T, fieldName string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", fieldName, got, want)
	}
}
