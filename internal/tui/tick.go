package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg fires when the redraw deadline passes
type tickMsg time.Time

// ticker tracks the next redraw deadline. Only the deadline is stored;
// the wait for each tick is recomputed from it so drift does not build up.
type ticker struct {
	interval time.Duration
	deadline time.Time
}

func newTicker(interval time.Duration, now time.Time) ticker {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return ticker{interval: interval, deadline: now.Add(interval)}
}

// remaining returns the time left until the deadline, never negative
func (t ticker) remaining(now time.Time) time.Duration {
	return max(0, t.deadline.Sub(now))
}

// expired reports whether the deadline has passed
func (t ticker) expired(now time.Time) bool {
	return !now.Before(t.deadline)
}

// reset moves the deadline one interval past now
func (t *ticker) reset(now time.Time) {
	t.deadline = now.Add(t.interval)
}

// schedule returns a command that delivers a tickMsg at the deadline
func (t ticker) schedule(now time.Time) tea.Cmd {
	return tea.Tick(t.remaining(now), func(at time.Time) tea.Msg {
		return tickMsg(at)
	})
}
