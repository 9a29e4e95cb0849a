// SPDX-License-Identifier: MIT

package halfedge

// Orient makes the winding consistent inside every connected component and
// returns the number of faces flipped.
//
// Components are seeded in ascending face order and the seed's winding is
// kept. Crossing from a visited face over h into an unvisited neighbor, the
// neighbor is flipped when twin(h) runs in the same direction as h. Edges
// already flipped this way never need revisiting: after the flip the pair
// runs opposite.
//
// On a non-orientable surface (a Möbius strip, say) the walk still
// terminates; some twin pair stays same-direction and IsConsistent remains
// false. Complexity: O(F + H).
func (m *Mesh) Orient() int {
	flipped := 0
	w := newWalker(m, DefaultWalkOptions())
	w.cross = func(h, t HalfEdgeID) {
		if m.halfEdges[h].Origin == m.halfEdges[t].Origin {
			m.flipFace(m.halfEdges[t].Face)
			flipped++
		}
	}
	for f := range m.faces {
		if !w.visited[f] {
			_, _ = w.run(FaceID(f))
		}
	}

	return flipped
}

// FlipFace reverses the winding of one face in place. Twin links are kept;
// the pairs on f's edges change consistency accordingly.
func (m *Mesh) FlipFace(f FaceID) error {
	if err := m.checkFace(f); err != nil {
		return err
	}
	m.flipFace(f)

	return nil
}

// flipFace reverses f: each half-edge takes its successor's origin, then next
// and prev swap. Every vertex on the loop is re-pointed at a half-edge that
// now leaves it.
func (m *Mesh) flipFace(f FaceID) {
	loop := m.faceLoop(f)
	origins := make([]VertexID, len(loop))
	for i, h := range loop {
		origins[i] = m.dest(h)
	}
	for i, h := range loop {
		he := &m.halfEdges[h]
		he.Origin = origins[i]
		he.Next, he.Prev = he.Prev, he.Next
		m.vertices[he.Origin].HalfEdge = h
	}
}
