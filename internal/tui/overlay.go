package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// blankCanvas returns h lines of w spaces
func blankCanvas(w, h int) []string {
	lines := make([]string, max(0, h))
	blank := strings.Repeat(" ", max(0, w))
	for i := range lines {
		lines[i] = blank
	}
	return lines
}

// overlayAt writes fgLines over bgLines starting at column x, row y.
// Each foreground line is padded or cut to fgW cells; background cells
// left and right of it are kept with their styling.
func overlayAt(bgLines []string, fgLines []string, w, x, y, fgW int) {
	if fgW <= 0 {
		return
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	for i := 0; i < len(fgLines) && y+i < len(bgLines); i++ {
		bgLine := bgLines[y+i]
		left := xansi.Cut(bgLine, 0, x)
		right := xansi.Cut(bgLine, x+fgW, w)

		bgLines[y+i] = left + fitWidth(fgLines[i], fgW) + right
	}
}

// place draws lines into the canvas at r
func place(canvas []string, width int, r Rect, lines []string) {
	if r.Empty() {
		return
	}
	if len(lines) > r.Height {
		lines = lines[:r.Height]
	}
	overlayAt(canvas, lines, width, r.X, r.Y, r.Width)
}

// fitWidth pads s with spaces or cuts it to exactly w cells
func fitWidth(s string, w int) string {
	n := xansi.StringWidth(s)
	switch {
	case n < w:
		return s + strings.Repeat(" ", w-n)
	case n > w:
		return xansi.Cut(s, 0, w)
	}
	return s
}
