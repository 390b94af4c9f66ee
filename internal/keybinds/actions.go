package keybinds

// Action represents a viewer operation that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active
type Context string

const (
	ContextGlobal Context = "global" // Available everywhere
	ContextViewer Context = "viewer" // Alignment viewer
)

const (
	// Session
	ActionQuit Action = "quit"

	// Display toggles
	ActionToggleDark      Action = "toggle_dark"      // Swap chrome colors
	ActionToggleHelp      Action = "toggle_help"      // Show/hide help overlay
	ActionToggleHighlight Action = "toggle_highlight" // Residue color as background or glyph

	// Single-step scrolling
	ActionScrollUp    Action = "scroll_up"
	ActionScrollDown  Action = "scroll_down"
	ActionScrollLeft  Action = "scroll_left"
	ActionScrollRight Action = "scroll_right"

	// Jumps
	ActionScrollTop    Action = "scroll_top"    // First row
	ActionScrollBottom Action = "scroll_bottom" // Last row that still fills the frame
	ActionScrollStart  Action = "scroll_start"  // First column
	ActionScrollEnd    Action = "scroll_end"    // Last column that still fills the frame

	// Clipboard
	ActionCopyRecord Action = "copy_record" // Copy top visible record as FASTA
)

// AllActions lists every action in help order
var AllActions = []Action{
	ActionScrollUp,
	ActionScrollDown,
	ActionScrollLeft,
	ActionScrollRight,
	ActionScrollTop,
	ActionScrollBottom,
	ActionScrollStart,
	ActionScrollEnd,
	ActionToggleDark,
	ActionToggleHighlight,
	ActionToggleHelp,
	ActionCopyRecord,
	ActionQuit,
}

var actionDescriptions = map[Action]string{
	ActionQuit:            "quit",
	ActionToggleDark:      "dark mode",
	ActionToggleHelp:      "help",
	ActionToggleHighlight: "highlight mode",
	ActionScrollUp:        "scroll up",
	ActionScrollDown:      "scroll down",
	ActionScrollLeft:      "scroll left",
	ActionScrollRight:     "scroll right",
	ActionScrollTop:       "top",
	ActionScrollBottom:    "bottom",
	ActionScrollStart:     "line start",
	ActionScrollEnd:       "line end",
	ActionCopyRecord:      "copy record",
}

// Description returns the short label shown in help
func (a Action) Description() string {
	if d, ok := actionDescriptions[a]; ok {
		return d
	}
	return string(a)
}

// IsKnown reports whether a names a defined action
func (a Action) IsKnown() bool {
	_, ok := actionDescriptions[a]
	return ok
}
