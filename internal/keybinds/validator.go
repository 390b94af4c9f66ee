package keybinds

import (
	"fmt"
	"sort"
	"strings"
)

// IssueKind classifies a validation finding
type IssueKind string

const (
	IssueConflict IssueKind = "conflict"
	IssueInvalid  IssueKind = "invalid"
	IssueWarning  IssueKind = "warning"
)

// Issue is one finding about a registry or config file
type Issue struct {
	Kind    IssueKind
	Context Context
	Key     string
	Message string
}

func (i Issue) Error() string {
	return fmt.Sprintf("[%s] %s in context '%s': %s", i.Kind, i.Key, i.Context, i.Message)
}

// Report collects blocking errors and non-blocking warnings
type Report struct {
	Errors   []Issue
	Warnings []Issue
}

func (r *Report) fail(kind IssueKind, ctx Context, key, format string, args ...any) {
	r.Errors = append(r.Errors, Issue{Kind: kind, Context: ctx, Key: key, Message: fmt.Sprintf(format, args...)})
}

func (r *Report) warn(ctx Context, key, format string, args ...any) {
	r.Warnings = append(r.Warnings, Issue{Kind: IssueWarning, Context: ctx, Key: key, Message: fmt.Sprintf(format, args...)})
}

func (r *Report) merge(other *Report) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

func (r *Report) HasErrors() bool   { return len(r.Errors) > 0 }
func (r *Report) HasWarnings() bool { return len(r.Warnings) > 0 }

// String lists errors then warnings, one per line
func (r *Report) String() string {
	if !r.HasErrors() && !r.HasWarnings() {
		return "No issues found"
	}

	var sb strings.Builder
	section := func(title string, issues []Issue) {
		if len(issues) == 0 {
			return
		}
		fmt.Fprintf(&sb, "%s (%d):\n", title, len(issues))
		for _, issue := range issues {
			fmt.Fprintf(&sb, "  - %s\n", issue.Error())
		}
	}
	section("Errors", r.Errors)
	section("Warnings", r.Warnings)
	return sb.String()
}

// Validator checks registries and override files before the viewer uses them
type Validator struct {
	// reserved keys keep working however the rest is rebound
	reserved map[string]Action
}

// NewValidator creates a Validator with ctrl+c reserved for quitting
func NewValidator() *Validator {
	return &Validator{
		reserved: map[string]Action{"ctrl+c": ActionQuit},
	}
}

// ValidateRegistry checks an assembled registry
func (v *Validator) ValidateRegistry(registry *Registry) *Report {
	report := &Report{}
	for ctx, bindings := range registry.bindings {
		for key, action := range bindings {
			v.checkBinding(registry, report, ctx, key, action)
		}
	}
	if len(registry.GetBinding(ContextViewer, ActionQuit)) == 0 {
		report.fail(IssueInvalid, ContextViewer, "", "no key quits the viewer")
	}
	return report
}

// checkBinding reports malformed keys, rebound reserved keys and viewer
// keys that hide a global binding.
func (v *Validator) checkBinding(registry *Registry, report *Report, ctx Context, key string, action Action) {
	if err := ValidateKey(key); err != nil {
		report.fail(IssueInvalid, ctx, key, "%v", err)
	}
	if want, ok := v.reserved[key]; ok && action != want {
		report.warn(ctx, key, "reserved key rebound (may cause issues)")
	}
	if ctx == ContextGlobal {
		return
	}
	if global, ok := registry.bindings[ContextGlobal][key]; ok && global != action {
		report.warn(ctx, key, "shadows global binding (%s -> %s)", global, action)
	}
}

// ValidateConfig checks an override file on its own, then applied on top
// of the defaults.
func (v *Validator) ValidateConfig(config *Config) *Report {
	report := &Report{}
	sections := config.sections()

	for _, ctx := range []Context{ContextGlobal, ContextViewer} {
		claims := make(map[string][]string)
		for name, keyList := range sections[ctx] {
			if err := ValidateAction(name); err != nil {
				report.fail(IssueInvalid, ctx, "", "%v", err)
				continue
			}
			keys := SplitKeys(keyList)
			if len(keys) == 0 {
				report.warn(ctx, "", "action %s has no keys and will be unbound", name)
			}
			for _, key := range keys {
				claims[key] = append(claims[key], name)
			}
		}

		for key, names := range claims {
			if len(names) > 1 {
				sort.Strings(names)
				report.fail(IssueConflict, ctx, key, "bound to %s", strings.Join(names, ", "))
			}
		}
	}
	if report.HasErrors() {
		return report
	}

	registry := NewDefaultRegistry()
	if err := ApplyConfig(registry, config); err != nil {
		report.fail(IssueInvalid, "", "", "%v", err)
		return report
	}
	report.merge(v.ValidateRegistry(registry))
	return report
}

var bareModifiers = []string{"ctrl+", "alt+", "shift+", "super+"}

// ValidateKey rejects empty keys and modifiers with nothing after them
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}
	for _, mod := range bareModifiers {
		if key == mod {
			return fmt.Errorf("modifier without key: %s", key)
		}
	}
	return nil
}

// ValidateAction checks that actionStr names a known action
func ValidateAction(actionStr string) error {
	if actionStr == "" {
		return fmt.Errorf("action cannot be empty")
	}
	if !Action(actionStr).IsKnown() {
		return fmt.Errorf("unknown action %q", actionStr)
	}
	return nil
}
