package nfa

import (
	"errors"
	"fmt"
)

// Common NFA errors.
var (
	// ErrTooManyCaptures indicates a pattern registered more capture groups
	// than the configured limit (RESUBR by default).
	ErrTooManyCaptures = errors.New("nfa: too many capture groups")

	// ErrCompilation indicates a general NFA compilation failure, e.g. a
	// restriction's embedded regex failed to compile.
	ErrCompilation = errors.New("nfa: compilation failed")
)

// CompileError wraps a restriction regex's compilation failure with the
// offending pattern text.
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("nfa: failed to compile restriction %q: %v", e.Pattern, e.Err)
}

// Unwrap exposes both the general ErrCompilation sentinel and the
// underlying coregex error, so callers can match either with errors.Is.
func (e *CompileError) Unwrap() []error {
	return []error{ErrCompilation, e.Err}
}

// BuildError represents an error raised while assembling a Machine, such as
// the parser's capture-slot allocation exceeding the configured limit.
type BuildError struct {
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	return fmt.Sprintf("nfa: build error: %s: %v", e.Message, e.Err)
}

// Unwrap returns the underlying sentinel error, letting callers test for
// e.g. ErrTooManyCaptures with errors.Is.
func (e *BuildError) Unwrap() error {
	return e.Err
}
