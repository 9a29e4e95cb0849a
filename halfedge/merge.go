// SPDX-License-Identifier: MIT

package halfedge

// Merge appends other's vertices, half-edges, faces and patches to m,
// shifting every handle by the matching array length of m. No twins are
// created across the seam, even when positions coincide. Merging a mesh
// into itself duplicates it.
func (m *Mesh) Merge(other *Mesh) {
	// snapshot before appending; other may be m
	ov, oh, of, op := other.vertices, other.halfEdges, other.faces, other.patches
	vOff := VertexID(len(m.vertices))
	hOff := HalfEdgeID(len(m.halfEdges))
	fOff := FaceID(len(m.faces))
	pOff := PatchID(len(m.patches))

	for _, v := range ov {
		if v.HalfEdge != NoHalfEdge {
			v.HalfEdge += hOff
		}
		m.vertices = append(m.vertices, v)
	}
	for _, he := range oh {
		he.Origin += vOff
		he.Face += fOff
		he.Next += hOff
		he.Prev += hOff
		if he.Twin != NoHalfEdge {
			he.Twin += hOff
		}
		m.halfEdges = append(m.halfEdges, he)
	}
	for _, f := range of {
		f.HalfEdge += hOff
		if f.Patch != NoPatch {
			f.Patch += pOff
		}
		m.faces = append(m.faces, f)
	}
	m.patches = append(m.patches, op...)
}

// Clone returns a deep copy of m.
func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		vertices:  append([]Vertex(nil), m.vertices...),
		halfEdges: append([]HalfEdge(nil), m.halfEdges...),
		faces:     append([]Face(nil), m.faces...),
		patches:   append([]Patch(nil), m.patches...),
	}
}
