// SPDX-License-Identifier: MIT

package halfedge

import (
	"github.com/katalvlaran/hemesh/iomesh"
)

// ExtractFaces builds an independent mesh from the listed faces.
//
// Vertices are compacted in order of first appearance; patches referenced by
// kept faces are copied by value in order of first appearance. A face listed
// twice is kept once. The new mesh is rebuilt from scratch, so twins exist
// only between kept faces. Any out-of-range id fails the whole call with
// ErrIndexOutOfRange.
func (m *Mesh) ExtractFaces(ids []FaceID) (*Mesh, error) {
	for _, f := range ids {
		if err := m.checkFace(f); err != nil {
			return nil, err
		}
	}

	out := iomesh.New()
	seen := make([]bool, len(m.faces))
	vmap := make(map[VertexID]int)
	pmap := make(map[PatchID]int)
	for _, f := range ids {
		if seen[f] {
			continue
		}
		seen[f] = true

		vs := m.faceVertices(f)
		refs := make([]int, len(vs))
		for i, v := range vs {
			idx, ok := vmap[v]
			if !ok {
				idx = out.AddVertex(m.vertices[v].Point)
				vmap[v] = idx
			}
			refs[i] = idx
		}

		patch := iomesh.NoPatch
		if p := m.faces[f].Patch; p != NoPatch {
			idx, ok := pmap[p]
			if !ok {
				idx = out.AddPatch(m.patches[p].Name)
				pmap[p] = idx
			}
			patch = idx
		}
		out.AddFace(refs, patch)
	}

	return Build(out)
}

// ExtractPatches extracts every face whose patch name is in names, in
// ascending face order. Unknown names select nothing.
func (m *Mesh) ExtractPatches(names []string) (*Mesh, error) {
	return m.ExtractFaces(m.FacesInPatches(names))
}

// FacesInPatches lists, ascending, the faces whose patch name is in names.
func (m *Mesh) FacesInPatches(names []string) []FaceID {
	want := make(map[string]struct{}, len(names))
	for _, n := range names {
		want[n] = struct{}{}
	}
	var ids []FaceID
	for f, face := range m.faces {
		if face.Patch == NoPatch {
			continue
		}
		if _, ok := want[m.patches[face.Patch].Name]; ok {
			ids = append(ids, FaceID(f))
		}
	}

	return ids
}

// ToIOMesh exports m as an interchange mesh. Every vertex and patch is kept,
// in order; faces list their vertices in loop order.
func (m *Mesh) ToIOMesh() *iomesh.Mesh {
	out := &iomesh.Mesh{
		Vertices: m.Points(),
		Faces:    make([]iomesh.Face, len(m.faces)),
		Patches:  make([]iomesh.Patch, len(m.patches)),
	}
	for i, p := range m.patches {
		out.Patches[i] = iomesh.Patch{Name: p.Name}
	}
	for f, face := range m.faces {
		vs := m.faceVertices(FaceID(f))
		refs := make([]int, len(vs))
		for i, v := range vs {
			refs[i] = int(v)
		}
		out.Faces[f] = iomesh.Face{Vertices: refs, Patch: int(face.Patch)}
	}

	return out
}
