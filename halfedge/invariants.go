// SPDX-License-Identifier: MIT

package halfedge

// CheckInvariants verifies the structural invariants of m and returns the
// first violation, wrapping ErrInvariant. A mesh produced by Build, Orient,
// Merge or the Extract methods always passes.
//
// Checked:
//   - next(prev(h)) == h and prev(next(h)) == h, both within h's face
//   - twin(twin(h)) == h, and twins share the same unordered endpoints
//   - each face loop closes, has at least 3 half-edges, and starts at a
//     half-edge owned by the face
//   - a vertex's stored half-edge leaves that vertex
//   - face patches are NoPatch or in range
func (m *Mesh) CheckInvariants() error {
	nh := HalfEdgeID(len(m.halfEdges))
	inRange := func(h HalfEdgeID) bool { return h >= 0 && h < nh }

	for i, he := range m.halfEdges {
		h := HalfEdgeID(i)
		if !inRange(he.Next) || !inRange(he.Prev) {
			return invariantf("half-edge %d links out of range", h)
		}
		if he.Face < 0 || int(he.Face) >= len(m.faces) {
			return invariantf("half-edge %d face %d out of range", h, he.Face)
		}
		if he.Origin < 0 || int(he.Origin) >= len(m.vertices) {
			return invariantf("half-edge %d origin %d out of range", h, he.Origin)
		}
		if m.halfEdges[he.Next].Prev != h || m.halfEdges[he.Prev].Next != h {
			return invariantf("half-edge %d next/prev mismatch", h)
		}
		if m.halfEdges[he.Next].Face != he.Face {
			return invariantf("half-edge %d leaves face %d", h, he.Face)
		}
		if he.Twin == NoHalfEdge {
			continue
		}
		if !inRange(he.Twin) || m.halfEdges[he.Twin].Twin != h {
			return invariantf("half-edge %d twin %d not reciprocal", h, he.Twin)
		}
		if keyOf(he.Origin, m.dest(h)) != keyOf(m.halfEdges[he.Twin].Origin, m.dest(he.Twin)) {
			return invariantf("half-edge %d and twin %d join different vertices", h, he.Twin)
		}
	}

	for i, f := range m.faces {
		if !inRange(f.HalfEdge) || m.halfEdges[f.HalfEdge].Face != FaceID(i) {
			return invariantf("face %d start half-edge %d not owned", i, f.HalfEdge)
		}
		n := 1
		for h := m.halfEdges[f.HalfEdge].Next; h != f.HalfEdge; h = m.halfEdges[h].Next {
			if n++; HalfEdgeID(n) > nh {
				return invariantf("face %d loop does not close", i)
			}
		}
		if n < 3 {
			return invariantf("face %d has %d half-edges", i, n)
		}
		if f.Patch != NoPatch && (f.Patch < 0 || int(f.Patch) >= len(m.patches)) {
			return invariantf("face %d patch %d out of range", i, f.Patch)
		}
	}

	for i, v := range m.vertices {
		if v.HalfEdge == NoHalfEdge {
			continue
		}
		if !inRange(v.HalfEdge) || m.halfEdges[v.HalfEdge].Origin != VertexID(i) {
			return invariantf("vertex %d half-edge %d does not leave it", i, v.HalfEdge)
		}
	}

	return nil
}
