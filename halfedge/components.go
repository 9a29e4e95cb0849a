// SPDX-License-Identifier: MIT

package halfedge

import "github.com/katalvlaran/hemesh/geom"

// Components partitions the faces into maximal sets connected through twin
// links. Components appear in order of their lowest face; faces within a
// component appear in discovery order. Complexity: O(F + H).
func (m *Mesh) Components() [][]FaceID {
	return m.sweep(DefaultWalkOptions())
}

// ComponentOf returns the component containing f, in discovery order from f.
func (m *Mesh) ComponentOf(f FaceID) ([]FaceID, error) {
	if err := m.checkFace(f); err != nil {
		return nil, err
	}

	return newWalker(m, DefaultWalkOptions()).run(f)
}

// FeatureRegions partitions the faces like Components, but never crosses an
// edge whose dihedral angle exceeds angle (radians). Each region is a
// smooth piece of the surface bounded by feature edges or the boundary.
func (m *Mesh) FeatureRegions(angle float64) [][]FaceID {
	normals := m.faceNormals()
	o := DefaultWalkOptions()
	o.FilterCrossing = func(h HalfEdgeID) bool {
		return !m.isFeature(normals, h, angle)
	}

	return m.sweep(o)
}

// sweep seeds a walk from every unvisited face in ascending order.
func (m *Mesh) sweep(o WalkOptions) [][]FaceID {
	var out [][]FaceID
	w := newWalker(m, o)
	for f := range m.faces {
		if w.visited[f] {
			continue
		}
		comp, _ := w.run(FaceID(f))
		out = append(out, comp)
	}

	return out
}

func (m *Mesh) faceNormals() []geom.Vec {
	out := make([]geom.Vec, len(m.faces))
	for f := range m.faces {
		out[f] = m.faceNormal(FaceID(f))
	}

	return out
}
