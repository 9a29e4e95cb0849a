// SPDX-License-Identifier: MIT

package surface

import (
	"github.com/katalvlaran/hemesh/halfedge"
	"github.com/katalvlaran/hemesh/obj"
)

// Errors callers may match with errors.Is.
var (
	ErrIndexOutOfRange = halfedge.ErrIndexOutOfRange
	ErrNonManifold     = halfedge.ErrNonManifold
	ErrParse           = obj.ErrParse
	ErrInvalidPath     = obj.ErrInvalidPath
)

// NonManifoldError is the typed build failure naming the offending edge.
type NonManifoldError = halfedge.NonManifoldError

// ParseError is the typed OBJ failure naming the offending line.
type ParseError = obj.ParseError
