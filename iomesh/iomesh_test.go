// SPDX-License-Identifier: MIT

package iomesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hemesh/geom"
	"github.com/katalvlaran/hemesh/iomesh"
)

func TestMesh_AddAndLatestPatch(t *testing.T) {
	m := iomesh.New()
	assert.Equal(t, iomesh.NoPatch, m.LatestPatch())

	for _, p := range []geom.Vec{geom.V(0, 0, 0), geom.V(1, 0, 0), geom.V(0, 1, 0)} {
		m.AddVertex(p)
	}
	m.AddFace([]int{0, 1, 2}, m.LatestPatch())
	assert.Equal(t, 0, m.AddPatch("inlet"))
	assert.Equal(t, 0, m.LatestPatch())
	m.AddFace([]int{2, 1, 0}, m.LatestPatch())

	assert.Equal(t, 3, m.VertexCount())
	assert.Equal(t, 2, m.FaceCount())
	assert.Equal(t, 1, m.PatchCount())
	assert.False(t, m.Faces[0].HasPatch())
	assert.True(t, m.Faces[1].HasPatch())
	require.NoError(t, m.Validate())
}

func TestMesh_AddFaceCopies(t *testing.T) {
	m := iomesh.New()
	vs := []int{0, 1, 2}
	m.AddFace(vs, iomesh.NoPatch)
	vs[0] = 9
	assert.Equal(t, []int{0, 1, 2}, m.Faces[0].Vertices)
}

func TestMesh_Validate(t *testing.T) {
	tests := []struct {
		name string
		face iomesh.Face
		want error
	}{
		{"short", iomesh.Face{Vertices: []int{0, 1}, Patch: iomesh.NoPatch}, iomesh.ErrShortFace},
		{"vertex", iomesh.Face{Vertices: []int{0, 1, 3}, Patch: iomesh.NoPatch}, iomesh.ErrVertexIndex},
		{"negative vertex", iomesh.Face{Vertices: []int{-1, 1, 2}, Patch: iomesh.NoPatch}, iomesh.ErrVertexIndex},
		{"patch", iomesh.Face{Vertices: []int{0, 1, 2}, Patch: 4}, iomesh.ErrPatchIndex},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := &iomesh.Mesh{
				Vertices: []geom.Vec{geom.V(0, 0, 0), geom.V(1, 0, 0), geom.V(0, 1, 0)},
				Faces:    []iomesh.Face{tc.face},
			}
			assert.ErrorIs(t, m.Validate(), tc.want)
		})
	}
}
