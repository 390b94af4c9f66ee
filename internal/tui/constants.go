package tui

import "time"

// UI Layout Constants
// These constants define spacing, margins, and dimensions for the viewer layout

const (
	// Outer margin around the whole screen
	LayoutMargin = 1

	// Row heights
	TitleHeight  = 3 // Bordered "File" box
	RulerHeight  = 1 // Position ruler
	FooterHeight = 1 // Status and key hints

	// Column widths
	IDPanelWidth = 10 // Identifier panel and ruler gutter

	// Panel borders
	PanelBorderWidth = 2 // One cell per side

	// Help overlay size, percent of the full viewport
	HelpWidthPercent  = 60
	HelpHeightPercent = 40
)

const (
	// DefaultTickInterval is the minimum redraw cadence when no key arrives
	DefaultTickInterval = 1000 * time.Millisecond

	// StatusTimeout is how long a status message stays in the footer
	StatusTimeout = 3 * time.Second

	// StatusMaxWidth truncates long status messages
	StatusMaxWidth = 60
)
