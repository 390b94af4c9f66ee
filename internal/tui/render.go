package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

var (
	colorBlack = lipgloss.Color("0")
	colorWhite = lipgloss.Color("7")
)

// chromeStyle colors borders, labels, ids, ruler and footer
func chromeStyle(dark bool) lipgloss.Style {
	if dark {
		return lipgloss.NewStyle().Foreground(colorWhite).Background(colorBlack)
	}
	return lipgloss.NewStyle().Foreground(colorBlack).Background(colorWhite)
}

// cellKey identifies a rendered residue in the cache
type cellKey struct {
	c         byte
	highlight bool
	dark      bool
}

// cell returns the styled glyph for residue c
func (m *Model) cell(c byte) string {
	k := cellKey{c: c, highlight: m.aln.HighlightBackground(), dark: m.aln.Dark()}
	if s, ok := m.cellCache[k]; ok {
		return s
	}

	color := m.aln.Alphabet().Colorize(c)
	var style lipgloss.Style
	if k.highlight {
		style = lipgloss.NewStyle().Background(color).Foreground(colorBlack)
	} else {
		style = chromeStyle(k.dark).Foreground(color)
	}
	s := style.Render(string(c))
	m.cellCache[k] = s
	return s
}

// renderBox draws a rounded box of width x height with title set into the
// top border. body lines are already styled and at most width-2 cells wide.
func renderBox(title string, body []string, width, height int, chrome lipgloss.Style) []string {
	if width < PanelBorderWidth || height < PanelBorderWidth {
		return blankCanvas(width, height)
	}

	b := lipgloss.RoundedBorder()
	innerW := width - PanelBorderWidth

	title = xansi.Truncate(title, innerW, "")
	top := b.TopLeft + title + strings.Repeat(b.Top, innerW-xansi.StringWidth(title)) + b.TopRight
	bottom := b.BottomLeft + strings.Repeat(b.Bottom, innerW) + b.BottomRight

	lines := make([]string, 0, height)
	lines = append(lines, chrome.Render(top))
	left, right := chrome.Render(b.Left), chrome.Render(b.Right)
	fill := chrome.Render(" ")
	for i := 0; i < height-PanelBorderWidth; i++ {
		content := ""
		if i < len(body) {
			content = body[i]
		}
		if n := xansi.StringWidth(content); n < innerW {
			content += strings.Repeat(fill, innerW-n)
		} else if n > innerW {
			content = xansi.Cut(content, 0, innerW)
		}
		lines = append(lines, left+content+right)
	}
	lines = append(lines, chrome.Render(bottom))
	return lines
}

func (m *Model) renderTitle(r Rect, chrome lipgloss.Style) []string {
	return renderBox("File", []string{chrome.Render(m.aln.Title())}, r.Width, r.Height, chrome)
}

func (m *Model) renderRuler(gutter, r Rect, chrome lipgloss.Style) (gutterLines, rulerLines []string) {
	gutterLines = []string{chrome.Render(strings.Repeat(" ", gutter.Width))}
	rulerLines = []string{chrome.Render(fitWidth(m.aln.RulerWindow(r.Width), r.Width))}
	return gutterLines, rulerLines
}

func (m *Model) renderIDs(r Rect, chrome lipgloss.Style) []string {
	first, last := m.aln.VisibleRows()
	ids := m.aln.IDs()
	innerW := max(0, r.Width-PanelBorderWidth)

	body := make([]string, 0, last-first)
	for i := first; i < last; i++ {
		body = append(body, chrome.Render(xansi.Truncate(ids[i], innerW, "")))
	}
	return renderBox("Id", body, r.Width, r.Height, chrome)
}

func (m *Model) renderSequences(r Rect, chrome lipgloss.Style) []string {
	first, last := m.aln.VisibleRows()

	body := make([]string, 0, last-first)
	var sb strings.Builder
	for i := first; i < last; i++ {
		sb.Reset()
		window := m.aln.Window(i)
		for j := 0; j < len(window); j++ {
			sb.WriteString(m.cell(window[j]))
		}
		body = append(body, sb.String())
	}
	return renderBox("Sequence", body, r.Width, r.Height, chrome)
}

// renderFooter puts the status message on the left and key hints on the right
func (m *Model) renderFooter(r Rect, chrome lipgloss.Style) []string {
	m.help.Width = r.Width
	hints := m.help.ShortHelpView(m.keys.ShortHelp())

	status := xansi.Truncate(m.statusMsg, StatusMaxWidth, "…")
	gap := r.Width - xansi.StringWidth(status) - xansi.StringWidth(hints)
	if gap < 1 {
		status, gap = "", r.Width-xansi.StringWidth(hints)
	}
	line := chrome.Render(status) + chrome.Render(strings.Repeat(" ", max(0, gap))) + hints
	return []string{fitWidth(line, r.Width)}
}

func (m *Model) renderHelp(r Rect, chrome lipgloss.Style) []string {
	h := m.help
	h.Width = max(0, r.Width-PanelBorderWidth)
	body := strings.Split(helpSections(h, m.keys), "\n")
	for i, line := range body {
		body[i] = chrome.Render(xansi.Truncate(line, h.Width, ""))
	}
	return renderBox("Help", body, r.Width, r.Height, chrome)
}

// render draws a full frame
func (m *Model) render() string {
	l := ComputeLayout(m.width, m.height, m.aln.HelpVisible())
	chrome := chromeStyle(m.aln.Dark())

	canvas := blankCanvas(m.width, m.height)
	place(canvas, m.width, l.Title, m.renderTitle(l.Title, chrome))
	gutter, ruler := m.renderRuler(l.RulerGutter, l.Ruler, chrome)
	place(canvas, m.width, l.RulerGutter, gutter)
	place(canvas, m.width, l.Ruler, ruler)
	place(canvas, m.width, l.IDs, m.renderIDs(l.IDs, chrome))
	place(canvas, m.width, l.Sequences, m.renderSequences(l.Sequences, chrome))
	place(canvas, m.width, l.Footer, m.renderFooter(l.Footer, chrome))

	if m.aln.HelpVisible() {
		place(canvas, m.width, l.Help, m.renderHelp(l.Help, chrome))
	}

	return strings.Join(canvas, "\n")
}
