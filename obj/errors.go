// SPDX-License-Identifier: MIT

package obj

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("obj: parse error")

	// ErrInvalidPath indicates a file path without a recognizable extension.
	ErrInvalidPath = errors.New("obj: path has no file extension")
)

// ParseError describes a malformed line. It matches ErrParse under errors.Is
// and unwraps to the underlying cause.
type ParseError struct {
	Line      int    // 1-based line number
	Directive string // "v", "f" or "g"
	Err       error
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("obj: line %d: %q directive: %v", e.Line, e.Directive, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error { return e.Err }

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }
