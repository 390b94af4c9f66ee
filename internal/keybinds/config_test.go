package keybinds

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/seqtools/seqtools/internal/config"
	"github.com/seqtools/seqtools/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keybinds.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadOrDefault_Missing(t *testing.T) {
	r, err := LoadOrDefault(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if got, _ := r.Match(ContextViewer, "q"); got != ActionQuit {
		t.Errorf("q -> %q, want quit", got)
	}
}

func TestLoadOrDefault_Override(t *testing.T) {
	path := writeConfig(t, `{
		"version": "1.0",
		"viewer": {
			"scroll_up": "up, k",
			"scroll_down": "down,j",
			"scroll_left": "left,h",
			"toggle_help": "?"
		}
	}`)

	r, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}

	tests := []struct {
		key    string
		want   Action
		wantOK bool
	}{
		{"k", ActionScrollUp, true},
		{"up", ActionScrollUp, true},
		{"j", ActionScrollDown, true},
		{"h", ActionScrollLeft, true},
		{"?", ActionToggleHelp, true},
		{"H", "", false},
		{"q", ActionQuit, true},
	}
	for _, tt := range tests {
		got, ok := r.Match(ContextViewer, tt.key)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Match(%q) = %q, %v; want %q, %v", tt.key, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestLoadOrDefault_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"malformed json", `{"viewer": `, "unexpected end of JSON input"},
		{"unknown action", `{"viewer": {"fly": "f"}}`, "unknown action"},
		{"conflict", `{"viewer": {"scroll_up": "k", "scroll_down": "k"}}`, "bound to scroll_down, scroll_up"},
		{"no quit", `{"viewer": {"quit": ""}, "global": {"quit": ""}}`, "no key quits the viewer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadOrDefault(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("LoadOrDefault() succeeded, want error")
			}
			if !errors.Is(err, errors.KindConfig) {
				t.Errorf("error kind = %v, want KindConfig", errors.GetKind(err))
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestSaveConfig_ExportDefaultsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keybinds.json")
	if err := SaveConfig(ExportDefaults(), path); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if extra := info.Mode().Perm() &^ config.FilePermissions; extra != 0 {
		t.Errorf("file mode = %v, has bits %v beyond %o", info.Mode().Perm(), extra, config.FilePermissions)
	}

	r, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	def := NewDefaultRegistry()
	for _, ctx := range []Context{ContextGlobal, ContextViewer} {
		for _, action := range AllActions {
			if got, want := r.GetBinding(ctx, action), def.GetBinding(ctx, action); !reflect.DeepEqual(got, want) {
				t.Errorf("%s/%s = %v, want %v", ctx, action, got, want)
			}
		}
	}
}

func TestSplitKeys(t *testing.T) {
	got := SplitKeys(" up, ,k,")
	if strings.Join(got, "|") != "up|k" {
		t.Errorf("SplitKeys() = %v, want [up k]", got)
	}
}

func TestLoadConfig_Comments(t *testing.T) {
	path := writeConfig(t, `{
		// vim-style scrolling
		"version": "1.0",
		"viewer": {
			"scroll_down": "down,j", /* keep the arrow */
			"scroll_up": "up,k",
		},
	}`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Viewer["scroll_down"] != "down,j" || cfg.Viewer["scroll_up"] != "up,k" {
		t.Errorf("Viewer = %v", cfg.Viewer)
	}
}
