// SPDX-License-Identifier: MIT

package halfedge

import "github.com/katalvlaran/hemesh/geom"

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.vertices) }

// HalfEdgeCount returns the number of half-edges.
func (m *Mesh) HalfEdgeCount() int { return len(m.halfEdges) }

// FaceCount returns the number of faces.
func (m *Mesh) FaceCount() int { return len(m.faces) }

// PatchCount returns the number of patches.
func (m *Mesh) PatchCount() int { return len(m.patches) }

// UndirectedEdgeCount returns the number of undirected edges: twin pairs count once,
// boundary half-edges count alone.
func (m *Mesh) UndirectedEdgeCount() int {
	n := 0
	for h, he := range m.halfEdges {
		if he.Twin == NoHalfEdge || HalfEdgeID(h) < he.Twin {
			n++
		}
	}

	return n
}

// Vertex returns the vertex record for v.
func (m *Mesh) Vertex(v VertexID) (Vertex, error) {
	if err := m.checkVertex(v); err != nil {
		return Vertex{}, err
	}

	return m.vertices[v], nil
}

// HalfEdge returns the half-edge record for h.
func (m *Mesh) HalfEdge(h HalfEdgeID) (HalfEdge, error) {
	if err := m.checkHalfEdge(h); err != nil {
		return HalfEdge{}, err
	}

	return m.halfEdges[h], nil
}

// Face returns the face record for f.
func (m *Mesh) Face(f FaceID) (Face, error) {
	if err := m.checkFace(f); err != nil {
		return Face{}, err
	}

	return m.faces[f], nil
}

// Patch returns the patch record for p.
func (m *Mesh) Patch(p PatchID) (Patch, error) {
	if p < 0 || int(p) >= len(m.patches) {
		return Patch{}, indexError("patch", int(p), len(m.patches))
	}

	return m.patches[p], nil
}

// Patches returns a copy of the patch list.
func (m *Mesh) Patches() []Patch {
	out := make([]Patch, len(m.patches))
	copy(out, m.patches)

	return out
}

// Points returns a copy of all vertex positions in vertex order.
func (m *Mesh) Points() []geom.Vec {
	out := make([]geom.Vec, len(m.vertices))
	for i, v := range m.vertices {
		out[i] = v.Point
	}

	return out
}

// Destination returns the origin of h's next half-edge.
func (m *Mesh) Destination(h HalfEdgeID) (VertexID, error) {
	if err := m.checkHalfEdge(h); err != nil {
		return 0, err
	}

	return m.dest(h), nil
}

// FaceHalfEdges returns f's half-edges in loop order, starting at its stored one.
func (m *Mesh) FaceHalfEdges(f FaceID) ([]HalfEdgeID, error) {
	if err := m.checkFace(f); err != nil {
		return nil, err
	}

	return m.faceLoop(f), nil
}

// FaceVertices returns f's vertices in loop order.
func (m *Mesh) FaceVertices(f FaceID) ([]VertexID, error) {
	if err := m.checkFace(f); err != nil {
		return nil, err
	}

	return m.faceVertices(f), nil
}

// FaceNormal returns the unit Newell normal of f, or the zero vector when f
// has no area.
func (m *Mesh) FaceNormal(f FaceID) (geom.Vec, error) {
	if err := m.checkFace(f); err != nil {
		return geom.Vec{}, err
	}

	return m.faceNormal(f), nil
}

// Edge returns the query view of h. Patches lists the patch of h's face and
// the patch of its twin's face, without duplicates, skipping NoPatch.
func (m *Mesh) Edge(h HalfEdgeID) (Edge, error) {
	if err := m.checkHalfEdge(h); err != nil {
		return Edge{}, err
	}

	return m.edge(h), nil
}

// IsClosed reports whether every half-edge has a twin.
func (m *Mesh) IsClosed() bool {
	for _, he := range m.halfEdges {
		if he.Twin == NoHalfEdge {
			return false
		}
	}

	return true
}

// IsConsistent reports whether every twin pair runs in opposite directions.
func (m *Mesh) IsConsistent() bool {
	for _, he := range m.halfEdges {
		if he.Twin != NoHalfEdge && m.halfEdges[he.Twin].Origin == he.Origin {
			return false
		}
	}

	return true
}

// AABB returns the bounding box of all vertex positions.
func (m *Mesh) AABB() geom.AABB {
	return geom.Bounds(m.Points())
}

// BoundaryHalfEdges returns every half-edge without a twin, ascending.
func (m *Mesh) BoundaryHalfEdges() []HalfEdgeID {
	var out []HalfEdgeID
	for h, he := range m.halfEdges {
		if he.Twin == NoHalfEdge {
			out = append(out, HalfEdgeID(h))
		}
	}

	return out
}

func (m *Mesh) dest(h HalfEdgeID) VertexID {
	return m.halfEdges[m.halfEdges[h].Next].Origin
}

func (m *Mesh) faceLoop(f FaceID) []HalfEdgeID {
	start := m.faces[f].HalfEdge
	out := []HalfEdgeID{start}
	for h := m.halfEdges[start].Next; h != start; h = m.halfEdges[h].Next {
		out = append(out, h)
	}

	return out
}

func (m *Mesh) faceVertices(f FaceID) []VertexID {
	loop := m.faceLoop(f)
	out := make([]VertexID, len(loop))
	for i, h := range loop {
		out[i] = m.halfEdges[h].Origin
	}

	return out
}

func (m *Mesh) facePoints(f FaceID) []geom.Vec {
	loop := m.faceLoop(f)
	out := make([]geom.Vec, len(loop))
	for i, h := range loop {
		out[i] = m.vertices[m.halfEdges[h].Origin].Point
	}

	return out
}

func (m *Mesh) faceNormal(f FaceID) geom.Vec {
	return geom.UnitPolygonNormal(m.facePoints(f))
}

func (m *Mesh) edge(h HalfEdgeID) Edge {
	he := m.halfEdges[h]
	e := Edge{Origin: he.Origin, Destination: m.dest(h)}
	if p := m.faces[he.Face].Patch; p != NoPatch {
		e.Patches = append(e.Patches, p)
	}
	if he.Twin != NoHalfEdge {
		p := m.faces[m.halfEdges[he.Twin].Face].Patch
		if p != NoPatch && (len(e.Patches) == 0 || e.Patches[0] != p) {
			e.Patches = append(e.Patches, p)
		}
	}

	return e
}

func (m *Mesh) checkVertex(v VertexID) error {
	if v < 0 || int(v) >= len(m.vertices) {
		return indexError("vertex", int(v), len(m.vertices))
	}

	return nil
}

func (m *Mesh) checkHalfEdge(h HalfEdgeID) error {
	if h < 0 || int(h) >= len(m.halfEdges) {
		return indexError("half-edge", int(h), len(m.halfEdges))
	}

	return nil
}

func (m *Mesh) checkFace(f FaceID) error {
	if f < 0 || int(f) >= len(m.faces) {
		return indexError("face", int(f), len(m.faces))
	}

	return nil
}
