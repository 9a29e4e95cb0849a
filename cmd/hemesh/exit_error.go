// SPDX-License-Identifier: MIT

package main

import "fmt"

// Exit codes.
const (
	exitFailure = 1
	exitInvalid = 2 // the mesh loaded but failed verification
)

// ExitError signals a specific exit code without calling os.Exit in RunE handlers.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}
