// SPDX-License-Identifier: MIT

package halfedge

import "github.com/katalvlaran/hemesh/geom"

// FeatureHalfEdges returns one half-edge per interior edge whose adjacent face
// normals differ by more than angle (radians). The lower index of each twin
// pair represents the edge; results ascend. Boundary edges and edges next to
// a zero-area face are never features.
func (m *Mesh) FeatureHalfEdges(angle float64) []HalfEdgeID {
	normals := m.faceNormals()
	var out []HalfEdgeID
	for h, he := range m.halfEdges {
		id := HalfEdgeID(h)
		if he.Twin == NoHalfEdge || he.Twin < id {
			continue
		}
		if m.isFeature(normals, id, angle) {
			out = append(out, id)
		}
	}

	return out
}

// FeatureEdges is FeatureHalfEdges mapped through Edge.
func (m *Mesh) FeatureEdges(angle float64) []Edge {
	hs := m.FeatureHalfEdges(angle)
	out := make([]Edge, len(hs))
	for i, h := range hs {
		out[i] = m.edge(h)
	}

	return out
}

func (m *Mesh) isFeature(normals []geom.Vec, h HalfEdgeID, angle float64) bool {
	t := m.halfEdges[h].Twin
	if t == NoHalfEdge {
		return false
	}
	n1 := normals[m.halfEdges[h].Face]
	n2 := normals[m.halfEdges[t].Face]
	if n1 == (geom.Vec{}) || n2 == (geom.Vec{}) {
		return false
	}

	return geom.Angle(n1, n2) > angle
}
