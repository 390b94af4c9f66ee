package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/seqtools/seqtools/internal/keybinds"
)

// keyLabels shortens Bubble Tea key names for display
var keyLabels = map[string]string{
	"up":    "↑",
	"down":  "↓",
	"left":  "←",
	"right": "→",
}

// keyMap is the help view's picture of the registry
type keyMap struct {
	bindings map[keybinds.Action]key.Binding
}

func newKeyMap(registry *keybinds.Registry) keyMap {
	km := keyMap{bindings: make(map[keybinds.Action]key.Binding, len(keybinds.AllActions))}
	for _, action := range keybinds.AllActions {
		keys := registry.GetBinding(keybinds.ContextViewer, action)
		labels := make([]string, 0, len(keys))
		for _, k := range keys {
			if l, ok := keyLabels[k]; ok {
				k = l
			}
			labels = append(labels, k)
		}
		// unbound actions have no keys, which key.Binding treats as disabled
		km.bindings[action] = key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(labels, "/"), action.Description()),
		)
	}
	return km
}

func (k keyMap) get(actions ...keybinds.Action) []key.Binding {
	out := make([]key.Binding, 0, len(actions))
	for _, a := range actions {
		out = append(out, k.bindings[a])
	}
	return out
}

// ShortHelp returns the footer hints
func (k keyMap) ShortHelp() []key.Binding {
	return k.get(keybinds.ActionToggleHelp, keybinds.ActionQuit)
}

// FullHelp returns every binding in columns
func (k keyMap) FullHelp() [][]key.Binding {
	return append(k.navigationHelp(), k.renderingHelp()...)
}

func (k keyMap) navigationHelp() [][]key.Binding {
	return [][]key.Binding{
		k.get(keybinds.ActionScrollUp, keybinds.ActionScrollDown, keybinds.ActionScrollLeft, keybinds.ActionScrollRight),
		k.get(keybinds.ActionScrollTop, keybinds.ActionScrollBottom, keybinds.ActionScrollStart, keybinds.ActionScrollEnd),
	}
}

func (k keyMap) renderingHelp() [][]key.Binding {
	return [][]key.Binding{
		k.get(keybinds.ActionToggleDark, keybinds.ActionToggleHighlight, keybinds.ActionToggleHelp),
		k.get(keybinds.ActionCopyRecord, keybinds.ActionQuit),
	}
}

// helpSections renders the overlay body: navigation keys then rendering keys
func helpSections(h help.Model, k keyMap) string {
	var b strings.Builder
	b.WriteString("Navigation:\n")
	b.WriteString(h.FullHelpView(k.navigationHelp()))
	b.WriteString("\nRendering:\n")
	b.WriteString(h.FullHelpView(k.renderingHelp()))
	return b.String()
}
