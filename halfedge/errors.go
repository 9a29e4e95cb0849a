// SPDX-License-Identifier: MIT

package halfedge

import (
	"errors"
	"fmt"
)

// Sentinel errors for half-edge operations.
var (
	// ErrNonManifold is matched by every *NonManifoldError.
	ErrNonManifold = errors.New("halfedge: non-manifold edge")

	// ErrDegenerateFace indicates a face with a zero-length edge.
	ErrDegenerateFace = errors.New("halfedge: degenerate face")

	// ErrIndexOutOfRange indicates a handle outside the owning array.
	ErrIndexOutOfRange = errors.New("halfedge: index out of range")

	// ErrInvariant indicates a broken structural invariant.
	ErrInvariant = errors.New("halfedge: invariant violated")

	// ErrOptionViolation indicates an invalid WalkOption.
	ErrOptionViolation = errors.New("halfedge: invalid option supplied")
)

// NonManifoldError names an undirected edge shared by more half-edges than a
// manifold surface allows.
type NonManifoldError struct {
	P, Q  VertexID // edge endpoints, P < Q
	Count int      // number of half-edges on the edge
}

// Error implements error.
func (e *NonManifoldError) Error() string {
	return fmt.Sprintf("halfedge: non-manifold edge (%d, %d) shared by %d half-edges", e.P, e.Q, e.Count)
}

// Is reports whether target is ErrNonManifold.
func (e *NonManifoldError) Is(target error) bool { return target == ErrNonManifold }

func indexError(kind string, i, n int) error {
	return fmt.Errorf("halfedge: %s %d of %d: %w", kind, i, n, ErrIndexOutOfRange)
}

func invariantf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, args...))
}
