// Package errors provides structured error types for seqtools.
// Errors carry the operation that failed and a Kind that callers and the
// CLI use to decide how to report them.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.Function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindSetup
	KindRender
	KindInput
	KindIO
	KindParse
	KindInvalid
	KindConfig
)

func (k Kind) String() string {
	switch k {
	case KindSetup:
		return "terminal setup error"
	case KindRender:
		return "render error"
	case KindInput:
		return "input error"
	case KindIO:
		return "I/O error"
	case KindParse:
		return "parse error"
	case KindInvalid:
		return "invalid"
	case KindConfig:
		return "configuration error"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for seqtools.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		if e.Op != "" {
			return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
		}
		return fmt.Sprintf("%s: %s", e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
//
// With no underlying error the context string becomes the error itself.
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Terminal session errors

func SetupFailed(reason string, err error) error {
	return E(Op("tui.Run"), KindSetup, reason, err)
}

func RenderFailed(err error) error {
	return E(Op("tui.View"), KindRender, "failed to draw frame", err)
}

func InputFailed(err error) error {
	return E(Op("tui.Run"), KindInput, "failed to read terminal event", err)
}

// Sequence file errors

func OpenFailed(path string, err error) error {
	return E(Op("fastx.Open"), KindIO, fmt.Sprintf("failed to open %s", path), err)
}

func ParseFailed(line int, reason string) error {
	return E(Op("fastx.Read"), KindParse, fmt.Sprintf("line %d: %s", line, reason))
}

// Config errors

func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func Invalid(op Op, reason string) error {
	return E(op, KindInvalid, reason)
}
