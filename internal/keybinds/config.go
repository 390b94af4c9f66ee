package keybinds

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/seqtools/seqtools/internal/config"
	"github.com/seqtools/seqtools/internal/errors"
)

// Config is the user's keybinding override file. Each section maps an
// action name to a comma-separated list of keys, e.g. "scroll_up": "up,k".
type Config struct {
	Version string            `json:"version"`
	Global  map[string]string `json:"global,omitempty"`
	Viewer  map[string]string `json:"viewer,omitempty"`
}

// LoadConfig reads an override file.
// Comments and trailing commas are allowed.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &cfg, nil
}

// SaveConfig writes config as indented JSON
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), config.FilePermissions)
}

// SplitKeys parses a comma-separated key list, dropping blanks
func SplitKeys(s string) []string {
	var keys []string
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

func (c *Config) sections() map[Context]map[string]string {
	return map[Context]map[string]string{
		ContextGlobal: c.Global,
		ContextViewer: c.Viewer,
	}
}

// ApplyConfig applies user configuration to a registry.
// A configured action loses its default keys in that context and gets
// exactly the configured ones.
func ApplyConfig(registry *Registry, cfg *Config) error {
	for context, section := range cfg.sections() {
		for actionStr, keyList := range section {
			action := Action(actionStr)
			if !action.IsKnown() {
				return fmt.Errorf("unknown action %q in context %q", actionStr, context)
			}
			registry.Unbind(context, action)
			registry.RegisterMultiple(context, SplitKeys(keyList), action)
		}
	}
	return nil
}

// LoadOrDefault returns the default registry with the override file at
// configPath applied. A missing file is not an error.
func LoadOrDefault(configPath string) (*Registry, error) {
	registry := NewDefaultRegistry()

	if configPath == "" {
		return registry, nil
	}
	if _, err := os.Stat(configPath); err != nil {
		// missing file: defaults
		return registry, nil
	}

	op := errors.Op("keybinds.LoadOrDefault")
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, errors.E(op, errors.KindConfig, "failed to load "+configPath, err)
	}

	result := NewValidator().ValidateConfig(cfg)
	if result.HasErrors() {
		return nil, errors.E(op, errors.KindConfig, "invalid "+configPath, fmt.Errorf("%s", strings.TrimSpace(result.String())))
	}

	if err := ApplyConfig(registry, cfg); err != nil {
		return nil, errors.E(op, errors.KindConfig, "failed to apply "+configPath, err)
	}

	return registry, nil
}

// ExportDefaults renders the built-in keys as an override file
func ExportDefaults() *Config {
	defaults := NewDefaultRegistry()
	section := func(ctx Context) map[string]string {
		out := make(map[string]string)
		for _, action := range AllActions {
			if keys := keysFor(defaults.bindings[ctx], action); len(keys) > 0 {
				out[string(action)] = strings.Join(keys, ",")
			}
		}
		return out
	}
	return &Config{Version: "1.0", Global: section(ContextGlobal), Viewer: section(ContextViewer)}
}
