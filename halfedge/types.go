// SPDX-License-Identifier: MIT

package halfedge

import "github.com/katalvlaran/hemesh/geom"

// Handle types. Each is an index into the matching array of one Mesh.
type (
	VertexID   int
	HalfEdgeID int
	FaceID     int
	PatchID    int
)

const (
	// NoHalfEdge marks a missing twin, or a vertex without incident faces.
	NoHalfEdge HalfEdgeID = -1

	// NoPatch marks a face without a patch.
	NoPatch PatchID = -1
)

// Vertex is a position plus one outgoing half-edge (any will do).
type Vertex struct {
	Point    geom.Vec
	HalfEdge HalfEdgeID // NoHalfEdge for isolated vertices
}

// HalfEdge is one directed side of an edge, owned by exactly one face.
type HalfEdge struct {
	Origin VertexID
	Face   FaceID
	Next   HalfEdgeID
	Prev   HalfEdgeID
	Twin   HalfEdgeID // NoHalfEdge on the boundary
}

// HasTwin reports whether the half-edge is interior.
func (h HalfEdge) HasTwin() bool { return h.Twin != NoHalfEdge }

// Face references one half-edge of its loop and an optional patch.
type Face struct {
	HalfEdge HalfEdgeID
	Patch    PatchID
}

// HasPatch reports whether the face is assigned to a patch.
func (f Face) HasPatch() bool { return f.Patch != NoPatch }

// Patch is a named face group. Names need not be unique.
type Patch struct {
	Name string
}

// Edge is the query-only view of a half-edge: its endpoints and the distinct
// patches of the faces on either side.
type Edge struct {
	Origin      VertexID
	Destination VertexID
	Patches     []PatchID
}

// Mesh is the half-edge surface mesh. The zero value is an empty mesh.
type Mesh struct {
	vertices  []Vertex
	halfEdges []HalfEdge
	faces     []Face
	patches   []Patch
}

// edgeKey is an unordered vertex pair, lo <= hi.
type edgeKey struct {
	lo, hi VertexID
}

func keyOf(p, q VertexID) edgeKey {
	if p > q {
		p, q = q, p
	}

	return edgeKey{lo: p, hi: q}
}
