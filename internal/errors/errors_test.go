package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindUnknown, "unknown error"},
		{KindSetup, "terminal setup error"},
		{KindRender, "render error"},
		{KindInput, "input error"},
		{KindIO, "I/O error"},
		{KindParse, "parse error"},
		{KindInvalid, "invalid"},
		{KindConfig, "configuration error"},
		{Kind(999), "unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("Kind.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "with op and context",
			err:      &Error{Op: "test.Op", Context: "some context", Err: errors.New("underlying error")},
			expected: "test.Op: some context: underlying error",
		},
		{
			name:     "with op only",
			err:      &Error{Op: "test.Op", Err: errors.New("underlying error")},
			expected: "test.Op: underlying error",
		},
		{
			name:     "context without op",
			err:      &Error{Context: "ctx", Err: errors.New("underlying error")},
			expected: "ctx: underlying error",
		},
		{
			name:     "without op",
			err:      &Error{Err: errors.New("underlying error")},
			expected: "underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestE(t *testing.T) {
	underlying := errors.New("boom")

	err := E(Op("fastx.Read"), KindParse, "record 3", underlying)
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("E() did not return *Error")
	}
	if e.Op != "fastx.Read" || e.Kind != KindParse || e.Context != "record 3" || e.Err != underlying {
		t.Errorf("E() = %+v", e)
	}

	// Context-only errors promote the context to the underlying error.
	err = E(Op("commands.Clip"), KindInvalid, "start must be positive")
	if err.Error() != "commands.Clip: start must be positive" {
		t.Errorf("E() message = %q", err.Error())
	}
}

func TestIs_GetKind(t *testing.T) {
	err := SetupFailed("stdout is not a terminal", errors.New("not a tty"))
	wrapped := fmt.Errorf("view: %w", err)

	if !Is(wrapped, KindSetup) {
		t.Error("Is(wrapped, KindSetup) = false, want true")
	}
	if Is(wrapped, KindRender) {
		t.Error("Is(wrapped, KindRender) = true, want false")
	}
	if got := GetKind(wrapped); got != KindSetup {
		t.Errorf("GetKind() = %v, want %v", got, KindSetup)
	}
	if got := GetKind(errors.New("plain")); got != KindUnknown {
		t.Errorf("GetKind(plain) = %v, want %v", got, KindUnknown)
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind Kind
	}{
		{"render", RenderFailed(errors.New("x")), KindRender},
		{"input", InputFailed(errors.New("x")), KindInput},
		{"open", OpenFailed("a.fa", errors.New("x")), KindIO},
		{"parse", ParseFailed(4, "missing '+' line"), KindParse},
		{"config", ConfigLoadFailed("c.yaml", errors.New("x")), KindConfig},
		{"invalid", Invalid("commands.Convert", "unknown format"), KindInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetKind(tt.err); got != tt.kind {
				t.Errorf("GetKind() = %v, want %v", got, tt.kind)
			}
		})
	}
}
