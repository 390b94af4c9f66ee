package keybinds

import (
	"reflect"
	"testing"
)

func TestDefaultRegistry_ViewerKeys(t *testing.T) {
	r := NewDefaultRegistry()

	tests := []struct {
		key  string
		want Action
	}{
		{"q", ActionQuit},
		{"Q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"t", ActionToggleDark},
		{"T", ActionToggleDark},
		{"h", ActionToggleHelp},
		{"H", ActionToggleHelp},
		{"?", ActionToggleHelp},
		{"r", ActionToggleHighlight},
		{"R", ActionToggleHighlight},
		{"up", ActionScrollUp},
		{"down", ActionScrollDown},
		{"left", ActionScrollLeft},
		{"right", ActionScrollRight},
		{"pgup", ActionScrollTop},
		{"pgdown", ActionScrollBottom},
		{"home", ActionScrollStart},
		{"end", ActionScrollEnd},
		{"y", ActionCopyRecord},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := r.Match(ContextViewer, tt.key)
			if !ok || got != tt.want {
				t.Errorf("Match(viewer, %q) = %q, %v; want %q", tt.key, got, ok, tt.want)
			}
		})
	}
}

func TestRegistry_UnboundKey(t *testing.T) {
	r := NewDefaultRegistry()
	for _, key := range []string{"x", "enter", "ctrl+z", ""} {
		if action, ok := r.Match(ContextViewer, key); ok {
			t.Errorf("Match(viewer, %q) = %q, want no match", key, action)
		}
	}
}

func TestRegistry_ContextOverridesGlobal(t *testing.T) {
	r := NewRegistry()
	r.Register(ContextGlobal, "x", ActionQuit)
	r.Register(ContextViewer, "x", ActionScrollUp)

	if got, _ := r.Match(ContextViewer, "x"); got != ActionScrollUp {
		t.Errorf("Match(viewer, x) = %q, want scroll_up", got)
	}
	if got, _ := r.Match(ContextGlobal, "x"); got != ActionQuit {
		t.Errorf("Match(global, x) = %q, want quit", got)
	}
}

func TestRegistry_GetBinding(t *testing.T) {
	r := NewDefaultRegistry()

	if got := r.GetBinding(ContextViewer, ActionToggleHelp); !reflect.DeepEqual(got, []string{"?", "H", "h"}) {
		t.Errorf("GetBinding(toggle_help) = %v", got)
	}
	if got := r.GetBinding(ContextViewer, ActionQuit); !reflect.DeepEqual(got, []string{"Q", "q"}) {
		t.Errorf("GetBinding(quit) = %v, want [Q q]", got)
	}

	r.Unbind(ContextViewer, ActionCopyRecord)
	if got := r.GetBinding(ContextViewer, ActionCopyRecord); len(got) != 0 {
		t.Errorf("GetBinding(copy_record) after Unbind = %v", got)
	}
}

func TestRegistry_GetBindingFallsBackToGlobal(t *testing.T) {
	r := NewRegistry()
	r.Register(ContextGlobal, "ctrl+c", ActionQuit)

	if got := r.GetBinding(ContextViewer, ActionQuit); !reflect.DeepEqual(got, []string{"ctrl+c"}) {
		t.Errorf("GetBinding(viewer, quit) = %v, want [ctrl+c]", got)
	}
}

func TestRegistry_ListBindings(t *testing.T) {
	r := NewRegistry()
	r.Register(ContextGlobal, "ctrl+c", ActionQuit)
	r.Register(ContextGlobal, "q", ActionQuit)
	r.Register(ContextViewer, "q", ActionScrollUp)

	got := r.ListBindings(ContextViewer)
	want := []Binding{
		{Key: "ctrl+c", Action: ActionQuit, Context: ContextGlobal},
		{Key: "q", Action: ActionScrollUp, Context: ContextViewer},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListBindings() = %v, want %v", got, want)
	}
}

func TestAction_Description(t *testing.T) {
	for _, action := range AllActions {
		if !action.IsKnown() {
			t.Errorf("%q listed in AllActions but unknown", action)
		}
		if action.Description() == "" {
			t.Errorf("%q has empty description", action)
		}
	}
	if Action("nope").IsKnown() {
		t.Error("unexpected known action nope")
	}
}
