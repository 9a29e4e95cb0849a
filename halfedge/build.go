// SPDX-License-Identifier: MIT

package halfedge

import (
	"fmt"

	"github.com/katalvlaran/hemesh/iomesh"
)

// Build constructs a half-edge Mesh from the interchange model.
//
// Steps:
//  1. Validate references (vertex, patch, face length).
//  2. Reject faces with a zero-length edge (v[k] == v[k+1], cyclically).
//  3. Emit one half-edge per face corner, linked into a next/prev loop.
//  4. Group half-edges by unordered endpoint pair and link twins.
//
// Exactly two half-edges running the same direction over one edge still
// build: they are linked as twins and IsConsistent reports the winding
// conflict. Only three or more half-edges on an edge fail with a
// *NonManifoldError.
//
// The source mesh is not retained. Vertices keep their input order; each
// vertex's outgoing half-edge is the last one emitted from it.
func Build(src *iomesh.Mesh) (*Mesh, error) {
	if err := src.Validate(); err != nil {
		return nil, fmt.Errorf("halfedge: %w", err)
	}

	m := &Mesh{
		vertices:  make([]Vertex, len(src.Vertices)),
		halfEdges: make([]HalfEdge, 0, cornerCount(src)),
		faces:     make([]Face, 0, len(src.Faces)),
		patches:   make([]Patch, len(src.Patches)),
	}
	for i, p := range src.Vertices {
		m.vertices[i] = Vertex{Point: p, HalfEdge: NoHalfEdge}
	}
	for i, p := range src.Patches {
		m.patches[i] = Patch{Name: p.Name}
	}

	for fi, f := range src.Faces {
		n := len(f.Vertices)
		for k, v := range f.Vertices {
			if v == f.Vertices[(k+1)%n] {
				return nil, fmt.Errorf("halfedge: face %d repeats vertex %d: %w", fi, v, ErrDegenerateFace)
			}
		}
		m.addFace(f.Vertices, PatchID(f.Patch))
	}

	if err := m.linkTwins(); err != nil {
		return nil, err
	}

	return m, nil
}

func cornerCount(src *iomesh.Mesh) int {
	n := 0
	for _, f := range src.Faces {
		n += len(f.Vertices)
	}

	return n
}

// addFace appends a face loop without twin links.
func (m *Mesh) addFace(vs []int, patch PatchID) FaceID {
	fid := FaceID(len(m.faces))
	first := HalfEdgeID(len(m.halfEdges))
	n := len(vs)
	for k, v := range vs {
		h := first + HalfEdgeID(k)
		m.halfEdges = append(m.halfEdges, HalfEdge{
			Origin: VertexID(v),
			Face:   fid,
			Next:   first + HalfEdgeID((k+1)%n),
			Prev:   first + HalfEdgeID((k+n-1)%n),
			Twin:   NoHalfEdge,
		})
		m.vertices[v].HalfEdge = h
	}
	m.faces = append(m.faces, Face{HalfEdge: first, Patch: patch})

	return fid
}

// linkTwins pairs half-edges by unordered endpoints. Groups are resolved in
// order of first appearance so the reported non-manifold edge is stable.
func (m *Mesh) linkTwins() error {
	groups := make(map[edgeKey][]HalfEdgeID, len(m.halfEdges)/2+1)
	order := make([]edgeKey, 0, len(m.halfEdges)/2+1)
	for h := range m.halfEdges {
		id := HalfEdgeID(h)
		k := keyOf(m.halfEdges[h].Origin, m.dest(id))
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], id)
	}

	for _, k := range order {
		hs := groups[k]
		switch len(hs) {
		case 1:
			// boundary
		case 2:
			// same-direction pairs are twinned too; IsConsistent reports them
			a, b := hs[0], hs[1]
			m.halfEdges[a].Twin = b
			m.halfEdges[b].Twin = a
		default:
			return &NonManifoldError{P: k.lo, Q: k.hi, Count: len(hs)}
		}
	}

	return nil
}
