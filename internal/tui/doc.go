/*
Package tui implements the interactive alignment viewer.

# Architecture

The viewer follows the Bubble Tea framework's Model-Update-View pattern:
  - Model: wraps an alignment.Alignment plus terminal size, status line and tick state
  - Update: applies key presses, resizes and ticks
  - View: renders the current state to the terminal

# Key Components

  - model.go: Model struct, Update loop, tick and status handling
  - keys.go: key lookup through keybinds.Registry and action dispatch
  - layout.go: panel rectangles and the centered help overlay
  - render.go: bordered panels, residue coloring, footer
  - overlay.go: splicing panels into the frame with ANSI-aware cuts
  - help.go: key hints for the footer and the help overlay
  - tick.go: redraw deadline

# Screen

	╭File──────────────────────────────────╮
	│aln.fasta                             │
	╰──────────────────────────────────────╯
	                   10        20
	╭Id──────╮╭Sequence────────────────────╮
	│seq1    ││ACGT-ACGTTACG-ACGTTA        │
	│seq2    ││ACGTTACG-ACGTAACGTTA        │
	╰────────╯╰────────────────────────────╯
	                     ? help • q quit

The sequence panel's outer size is the alignment's frame; the alignment
clamps its scroll offsets against it.

# Ticks

A tick is scheduled for the time left until the next deadline, so the
screen is redrawn at least once per interval even without input. Keys are
handled as they arrive and do not move the deadline.

# Threading Model

Bubble Tea calls Update and View from a single goroutine, so the model
holds no locks.
*/
package tui
