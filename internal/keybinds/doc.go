/*
Package keybinds maps key presses to viewer actions.

# Contexts

Bindings live in a context. The viewer looks a key up in ContextViewer
first and falls back to ContextGlobal, so ctrl+c quits even if a user
configuration rebinds everything else.

# Default Bindings

	q, Q, ctrl+c   quit
	t, T           toggle dark mode
	h, H, ?        toggle help
	r, R           toggle highlight mode
	arrows         scroll one row or column
	pgup, pgdown   first row / last row
	home, end      first column / last column
	y              copy the top visible record

# Configuration

Overrides are read from ~/.seqtools/keybinds.json. Each section maps an
action to a comma-separated key list:

	{
	  "version": "1.0",
	  "viewer": {
	    "scroll_up": "up,k",
	    "scroll_down": "down,j",
	    "scroll_left": "left,h",
	    "toggle_help": "?"
	  }
	}

A configured action keeps only the keys listed for it. Key names follow
Bubble Tea's KeyMsg.String() ("up", "pgdown", "ctrl+c", "A").

# Validation

The validator rejects unknown actions, empty keys, one key claimed by two
actions in a section, and a configuration that leaves no way to quit. It
warns about rebinding ctrl+c and about viewer keys shadowing global ones.
*/
package keybinds
