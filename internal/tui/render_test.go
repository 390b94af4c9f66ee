package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"github.com/seqtools/seqtools/internal/errors"
)

func viewLines(t *testing.T, m *Model) []string {
	t.Helper()
	return strings.Split(xansi.Strip(m.View()), "\n")
}

func TestView_FrameShape(t *testing.T) {
	m, _, _ := CreateTestModel(t, scenarioIDs, scenarioSeqs, 80, 24)

	lines := viewLines(t, m)
	if len(lines) != 24 {
		t.Fatalf("View() has %d lines, want 24", len(lines))
	}
	for i, line := range lines {
		if w := xansi.StringWidth(line); w != 80 {
			t.Errorf("line %d width = %d, want 80: %q", i, w, line)
		}
	}
}

func TestView_Panels(t *testing.T) {
	ids := []string{"alpha", "a-very-long-identifier"}
	seqs := []string{"ACGTACGTACGTACGTACGTACGTA", "ACGT"}
	m, _, _ := CreateTestModel(t, ids, seqs, 80, 24)

	lines := viewLines(t, m)
	view := strings.Join(lines, "\n")

	for _, want := range []string{"File", "test.fa", "Id", "Sequence", "alpha", "ACGTACGTACGTACGTACGTACGTA", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	// ids are cut to the panel's inner width
	if !strings.Contains(view, "a-very-l") || strings.Contains(view, "a-very-long") {
		t.Error("long identifier not truncated to 8 cells")
	}

	// ruler row: "10" sits above position 10 of the sequence panel
	ruler := lines[4]
	if got := xansi.Cut(ruler, 11+10, 11+12); got != "10" {
		t.Errorf("ruler at column 21 = %q, want \"10\" (row %q)", got, ruler)
	}
	seqRow := lines[6]
	if got := xansi.Cut(seqRow, 11+1, 11+2); got != "A" {
		t.Errorf("first residue at column 12 = %q, want A (row %q)", got, seqRow)
	}
}

func TestView_ScrolledWindow(t *testing.T) {
	seqs := []string{"ACGTTGCA" + strings.Repeat("-", 100)}
	m, _, _ := CreateTestModel(t, []string{"x"}, seqs, 80, 24)

	for i := 0; i < 4; i++ {
		sendKey(m, "right")
	}
	lines := viewLines(t, m)
	if !strings.Contains(lines[6], "│TGCA---") {
		t.Errorf("scrolled row = %q, want it to start with TGCA", lines[6])
	}
}

func TestView_HelpOverlay(t *testing.T) {
	m, _, _ := CreateTestModel(t, scenarioIDs, scenarioSeqs, 120, 40)

	before := xansi.Strip(m.View())
	if strings.Contains(before, "Navigation:") {
		t.Fatal("help visible before toggle")
	}

	sendKey(m, "?")
	view := xansi.Strip(m.View())
	for _, want := range []string{"Help", "Navigation:", "Rendering:", "scroll up", "dark mode", "highlight mode"} {
		if !strings.Contains(view, want) {
			t.Errorf("help overlay missing %q", want)
		}
	}

	lines := strings.Split(view, "\n")
	l := ComputeLayout(120, 40, true)
	top := lines[l.Help.Y]
	if !strings.HasPrefix(xansi.Cut(top, l.Help.X, l.Help.X+l.Help.Width), "╭Help") {
		t.Errorf("overlay top border at (%d,%d) = %q", l.Help.X, l.Help.Y, top)
	}
}

func TestView_TinyTerminalDoesNotPanic(t *testing.T) {
	ids, seqs := manySeqs(5, 30)
	for _, size := range [][2]int{{1, 1}, {3, 3}, {12, 7}, {17, 9}, {20, 10}} {
		m, _, _ := CreateTestModel(t, ids, seqs, size[0], size[1])
		sendKey(m, "?")
		sendKey(m, "end")
		lines := viewLines(t, m)
		if len(lines) != size[1] {
			t.Errorf("%dx%d: %d lines", size[0], size[1], len(lines))
		}
	}
}

func TestView_StatusInFooter(t *testing.T) {
	m, _, _ := CreateTestModel(t, scenarioIDs, scenarioSeqs, 80, 24)
	sendKey(m, "y")

	footer := viewLines(t, m)[22]
	if !strings.Contains(footer, "copied Seq1") {
		t.Errorf("footer = %q, want status", footer)
	}
}

func TestRenderBox(t *testing.T) {
	chrome := lipgloss.NewStyle()
	lines := renderBox("Id", []string{"abc", "toolongvalue"}, 8, 4, chrome)

	want := []string{
		"╭Id────╮",
		"│abc   │",
		"│toolon│",
		"╰──────╯",
	}
	if len(lines) != len(want) {
		t.Fatalf("renderBox() = %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if got := xansi.Strip(lines[i]); got != want[i] {
			t.Errorf("line %d = %q, want %q", i, got, want[i])
		}
	}

	if got := renderBox("x", nil, 1, 5, chrome); len(got) != 5 {
		t.Errorf("renderBox too narrow: %d lines, want 5 blank lines", len(got))
	}
}

func TestOverlayAt(t *testing.T) {
	bg := []string{"..........", "..........", ".........."}
	overlayAt(bg, []string{"AB", "CDEF"}, 10, 3, 1, 3)

	want := []string{"..........", "...AB ....", "...CDE...."}
	for i := range want {
		if bg[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, bg[i], want[i])
		}
	}
}

func TestClassifyRunError(t *testing.T) {
	boom := fmt.Errorf("boom")

	tests := []struct {
		name    string
		err     error
		started bool
		want    errors.Kind
	}{
		{"panic while drawing", fmt.Errorf("render: %w", tea.ErrProgramPanic), true, errors.KindRender},
		{"failure before first frame", boom, false, errors.KindSetup},
		{"failure after start", boom, true, errors.KindInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyRunError(tt.err, tt.started)
			AssertModelField(t, "kind", errors.GetKind(err), tt.want)
		})
	}
}

func TestRun_WithoutTerminal(t *testing.T) {
	orig := stdoutIsTerminal
	stdoutIsTerminal = func() bool { return false }
	t.Cleanup(func() { stdoutIsTerminal = orig })

	err := Run([]string{"s1"}, []string{"ACGT"}, "t.fa", DefaultOptions())
	if err == nil {
		t.Fatal("Run() succeeded without a terminal")
	}
	AssertModelField(t, "kind", errors.GetKind(err), errors.KindSetup)
}

func TestNewSession(t *testing.T) {
	opts := DefaultOptions()
	opts.Dark = false

	m := newSession([]string{"s1", "s2"}, []string{"ACGT", "AC"}, "t.fa", opts)
	AssertModelField(t, "title", m.aln.Title(), "t.fa")
	AssertModelField(t, "nSeqs", m.aln.NSeqs(), 2)
	AssertModelField(t, "maxLen", m.aln.MaxLen(), 4)
	AssertModelField(t, "dark", m.aln.Dark(), false)
	AssertModelField(t, "highlight", m.aln.HighlightBackground(), opts.HighlightBackground)
}
