package keybinds

// defaultKeys lists the built-in keys per context and action, in the
// order they are shown in help.
var defaultKeys = map[Context][]struct {
	action Action
	keys   []string
}{
	ContextGlobal: {
		{ActionQuit, []string{"ctrl+c"}},
	},
	ContextViewer: {
		{ActionQuit, []string{"q", "Q"}},
		{ActionToggleDark, []string{"t", "T"}},
		{ActionToggleHelp, []string{"h", "H", "?"}},
		{ActionToggleHighlight, []string{"r", "R"}},
		{ActionScrollUp, []string{"up"}},
		{ActionScrollDown, []string{"down"}},
		{ActionScrollLeft, []string{"left"}},
		{ActionScrollRight, []string{"right"}},
		{ActionScrollTop, []string{"pgup"}},
		{ActionScrollBottom, []string{"pgdown"}},
		{ActionScrollStart, []string{"home"}},
		{ActionScrollEnd, []string{"end"}},
		{ActionCopyRecord, []string{"y"}},
	},
}

// NewDefaultRegistry returns the viewer's built-in key map
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for ctx, entries := range defaultKeys {
		for _, e := range entries {
			r.RegisterMultiple(ctx, e.keys, e.action)
		}
	}
	return r
}
