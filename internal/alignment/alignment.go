/*
Package alignment holds the state of one alignment viewing session.

An Alignment is built once from loaded identifiers and sequences. Its
content (ids, sequences, alphabet, ruler) never changes afterwards; only the
scroll offsets, the last observed frame and the display toggles move.

# Frame convention

SetFrame receives the outer size of the sequence panel, borders included.
The usable area is that size minus BorderWidth on each axis:

	usableWidth  = frameWidth  - BorderWidth
	usableHeight = frameHeight - BorderWidth

and the scroll bounds are

	maxX = max(0, maxLen - usableWidth)
	maxY = max(0, nSeqs  - usableHeight)

Every mutator leaves 0 <= x <= maxX and 0 <= y <= maxY.
*/
package alignment

// BorderWidth is the number of cells the sequence panel's border takes on each axis
const BorderWidth = 2

// Alignment is the viewer's model: immutable content plus scroll and toggle state
type Alignment struct {
	ids      []string
	seqs     []string
	title    string
	maxLen   int
	nSeqs    int
	alphabet Alphabet
	ruler    string

	yScroll int
	xScroll int

	frameWidth  int
	frameHeight int

	dark                bool
	helpVisible         bool
	highlightBackground bool
}

// Options are the initial toggle values
type Options struct {
	Dark                bool
	HighlightBackground bool
}

// DefaultOptions matches the viewer's startup look: dark chrome, colored backgrounds
func DefaultOptions() Options {
	return Options{Dark: true, HighlightBackground: true}
}

// New builds an Alignment. ids and seqs are index-aligned; if their lengths
// differ the extra entries of the longer slice are ignored.
func New(ids, seqs []string, title string, opts Options) *Alignment {
	n := min(len(ids), len(seqs))
	ids, seqs = ids[:n], seqs[:n]

	maxLen := 0
	for _, s := range seqs {
		maxLen = max(maxLen, len(s))
	}

	return &Alignment{
		ids:                 ids,
		seqs:                seqs,
		title:               title,
		maxLen:              maxLen,
		nSeqs:               n,
		alphabet:            Classify(seqs),
		ruler:               Ruler(maxLen),
		dark:                opts.Dark,
		highlightBackground: opts.HighlightBackground,
	}
}

func (a *Alignment) IDs() []string      { return a.ids }
func (a *Alignment) Seqs() []string     { return a.seqs }
func (a *Alignment) Title() string      { return a.title }
func (a *Alignment) MaxLen() int        { return a.maxLen }
func (a *Alignment) NSeqs() int         { return a.nSeqs }
func (a *Alignment) Alphabet() Alphabet { return a.alphabet }
func (a *Alignment) Ruler() string      { return a.ruler }

// Scroll returns the current (row, column) offsets
func (a *Alignment) Scroll() (y, x int) { return a.yScroll, a.xScroll }

// Frame returns the last observed outer size of the sequence panel
func (a *Alignment) Frame() (width, height int) { return a.frameWidth, a.frameHeight }

func (a *Alignment) Dark() bool                { return a.dark }
func (a *Alignment) HelpVisible() bool         { return a.helpVisible }
func (a *Alignment) HighlightBackground() bool { return a.highlightBackground }

// UsableWidth is the number of sequence columns visible in the panel
func (a *Alignment) UsableWidth() int {
	return max(0, a.frameWidth-BorderWidth)
}

// UsableHeight is the number of sequence rows visible in the panel
func (a *Alignment) UsableHeight() int {
	return max(0, a.frameHeight-BorderWidth)
}

// MaxXScroll is the largest valid column offset for the current frame
func (a *Alignment) MaxXScroll() int {
	return max(0, a.maxLen-a.UsableWidth())
}

// MaxYScroll is the largest valid row offset for the current frame
func (a *Alignment) MaxYScroll() int {
	return max(0, a.nSeqs-a.UsableHeight())
}

// SetFrame records the sequence panel size and re-clamps the offsets so a
// shrinking or growing terminal never leaves them out of range.
func (a *Alignment) SetFrame(width, height int) {
	a.frameWidth = max(0, width)
	a.frameHeight = max(0, height)
	a.xScroll = min(a.xScroll, a.MaxXScroll())
	a.yScroll = min(a.yScroll, a.MaxYScroll())
}

func (a *Alignment) ScrollUp() {
	a.yScroll = max(0, a.yScroll-1)
}

func (a *Alignment) ScrollDown() {
	if a.yScroll < a.MaxYScroll() {
		a.yScroll++
	}
}

func (a *Alignment) ScrollLeft() {
	a.xScroll = max(0, a.xScroll-1)
}

func (a *Alignment) ScrollRight() {
	if a.xScroll < a.MaxXScroll() {
		a.xScroll++
	}
}

func (a *Alignment) ScrollTop() {
	a.yScroll = 0
}

func (a *Alignment) ScrollBottom() {
	a.yScroll = a.MaxYScroll()
}

func (a *Alignment) ScrollStart() {
	a.xScroll = 0
}

func (a *Alignment) ScrollEnd() {
	a.xScroll = a.MaxXScroll()
}

func (a *Alignment) ToggleDark() {
	a.dark = !a.dark
}

func (a *Alignment) ToggleHelp() {
	a.helpVisible = !a.helpVisible
}

func (a *Alignment) ToggleHighlight() {
	a.highlightBackground = !a.highlightBackground
}

// VisibleRows returns the index range [first, last) of rows inside the frame
func (a *Alignment) VisibleRows() (first, last int) {
	first = a.yScroll
	last = min(a.nSeqs, a.yScroll+a.UsableHeight())
	return first, max(first, last)
}

// Window returns the part of row i that falls inside the frame's columns.
// Rows shorter than the column offset yield an empty string.
func (a *Alignment) Window(i int) string {
	if i < 0 || i >= a.nSeqs {
		return ""
	}
	seq := a.seqs[i]
	if a.xScroll >= len(seq) {
		return ""
	}
	end := min(len(seq), a.xScroll+a.UsableWidth())
	return seq[a.xScroll:end]
}

// RulerWindow returns the ruler segment aligned with the visible columns.
// The ruler's gutter column 0 lines up with the panel's left border.
func (a *Alignment) RulerWindow(width int) string {
	if a.xScroll >= len(a.ruler) || width <= 0 {
		return ""
	}
	end := min(len(a.ruler), a.xScroll+width)
	return a.ruler[a.xScroll:end]
}
