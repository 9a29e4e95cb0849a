// SPDX-License-Identifier: MIT

package prepare

import "errors"

var (
	// ErrNoRegion indicates a patch that matches neither a volume control
	// nor any region.
	ErrNoRegion = errors.New("prepare: no region for patch")

	// ErrInvalidName indicates a patch or region name that cannot be used as
	// a file name: empty, "." or "..", or containing a path separator.
	ErrInvalidName = errors.New("prepare: name is not a valid file name")

	// ErrNoGeometry indicates a step that needs geometry ran before ImportGeometry.
	ErrNoGeometry = errors.New("prepare: no geometry imported")
)
