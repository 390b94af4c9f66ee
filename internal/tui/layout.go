package tui

// Rect is a screen region in cells
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether r has no area
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Layout holds the panel rectangles for one frame
type Layout struct {
	Title       Rect
	RulerGutter Rect
	Ruler       Rect
	IDs         Rect
	Sequences   Rect
	Footer      Rect
	Help        Rect // zero unless help is visible
}

// ComputeLayout partitions a width x height viewport. Rows that do not
// fit get zero height; the body absorbs whatever the fixed rows leave.
func ComputeLayout(width, height int, helpVisible bool) Layout {
	full := Rect{Width: max(0, width), Height: max(0, height)}
	inner := shrink(full, LayoutMargin)

	rows := splitFixed(inner.Height, TitleHeight, RulerHeight, -1, FooterHeight)
	y := inner.Y
	rowRect := func(h int) Rect {
		r := Rect{X: inner.X, Y: y, Width: inner.Width, Height: h}
		y += h
		return r
	}
	title := rowRect(rows[0])
	ruler := rowRect(rows[1])
	body := rowRect(rows[2])
	footer := rowRect(rows[3])

	var l Layout
	l.Title = title
	l.RulerGutter, l.Ruler = splitColumns(ruler, IDPanelWidth)
	l.IDs, l.Sequences = splitColumns(body, IDPanelWidth)
	l.Footer = footer

	if helpVisible {
		l.Help = centeredRect(HelpWidthPercent, HelpHeightPercent, full)
	}
	return l
}

// shrink removes m cells from every side of r
func shrink(r Rect, m int) Rect {
	w := max(0, r.Width-2*m)
	h := max(0, r.Height-2*m)
	if w == 0 || h == 0 {
		return Rect{X: r.X, Y: r.Y}
	}
	return Rect{X: r.X + m, Y: r.Y + m, Width: w, Height: h}
}

// splitFixed hands out sizes in order. A negative entry is a fill slot that
// takes what the fixed entries leave; fixed entries are served first and
// truncated when space runs out.
func splitFixed(total int, sizes ...int) []int {
	out := make([]int, len(sizes))
	left := total
	fill := -1
	for i, s := range sizes {
		if s < 0 {
			fill = i
			continue
		}
		out[i] = min(s, left)
		left -= out[i]
	}
	if fill >= 0 {
		out[fill] = left
	}
	return out
}

// splitColumns cuts r into a left part of width w and the remainder
func splitColumns(r Rect, w int) (Rect, Rect) {
	w = min(w, r.Width)
	left := Rect{X: r.X, Y: r.Y, Width: w, Height: r.Height}
	right := Rect{X: r.X + w, Y: r.Y, Width: r.Width - w, Height: r.Height}
	return left, right
}

// splitPercent divides total into three parts of (100-p)/2, p and the rest
func splitPercent(total, p int) (before, middle int) {
	before = total * ((100 - p) / 2) / 100
	middle = total * p / 100
	return before, middle
}

// centeredRect returns a rectangle of percentX x percentY of r, centered
// through a vertical then a horizontal three-way split.
func centeredRect(percentX, percentY int, r Rect) Rect {
	top, height := splitPercent(r.Height, percentY)
	left, width := splitPercent(r.Width, percentX)
	return Rect{X: r.X + left, Y: r.Y + top, Width: width, Height: height}
}
