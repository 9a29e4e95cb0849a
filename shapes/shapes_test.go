// SPDX-License-Identifier: MIT

package shapes_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hemesh/geom"
	"github.com/katalvlaran/hemesh/iomesh"
	"github.com/katalvlaran/hemesh/shapes"
)

// outward reports whether every face normal points away from center.
func outward(m *iomesh.Mesh, center geom.Vec) bool {
	for _, f := range m.Faces {
		pts := make([]geom.Vec, len(f.Vertices))
		for i, v := range f.Vertices {
			pts[i] = m.Vertices[v]
		}
		n := geom.PolygonNormal(pts)
		if n.Dot(pts[0].Sub(center)) <= 0 {
			return false
		}
	}
	return true
}

func TestSolids_CountsAndWinding(t *testing.T) {
	tests := []struct {
		name     string
		mesh     *iomesh.Mesh
		vertices int
		faces    int
		center   geom.Vec
	}{
		{"tetrahedron", shapes.Tetrahedron(), 4, 4, geom.V(0.25, 0.25, 0.25)},
		{"cube", shapes.Cube(), 8, 6, geom.V(0.5, 0.5, 0.5)},
		{"cube triangulated", shapes.Cube(shapes.WithTriangulate()), 8, 12, geom.V(0.5, 0.5, 0.5)},
		{"octahedron", shapes.Octahedron(), 6, 8, geom.V(0, 0, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, tc.mesh.Validate())
			assert.Equal(t, tc.vertices, tc.mesh.VertexCount())
			assert.Equal(t, tc.faces, tc.mesh.FaceCount())
			assert.Zero(t, tc.mesh.PatchCount())
			assert.True(t, outward(tc.mesh, tc.center))
		})
	}
}

func TestOptions_ScaleOffset(t *testing.T) {
	m := shapes.Cube(shapes.WithScale(2), shapes.WithOffset(geom.V(-1, -1, -1)))
	box := geom.Bounds(m.Vertices)
	assert.Equal(t, geom.V(-1, -1, -1), box.Min())
	assert.Equal(t, geom.V(1, 1, 1), box.Max())
	assert.True(t, outward(m, geom.V(0, 0, 0)))
}

func TestOptions_Patches(t *testing.T) {
	m := shapes.Cube(shapes.WithPatchPerFace(), shapes.WithTriangulate())
	require.Equal(t, 6, m.PatchCount())
	assert.Equal(t, "face_5", m.Patches[5].Name)
	assert.Equal(t, 2, m.Faces[4].Patch)
	assert.Equal(t, 2, m.Faces[5].Patch)

	m = shapes.Octahedron(shapes.WithPatch("shell"))
	require.Equal(t, 1, m.PatchCount())
	for _, f := range m.Faces {
		assert.Equal(t, 0, f.Patch)
	}
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { shapes.WithScale(0) })
	assert.Panics(t, func() { shapes.WithScale(math.NaN()) })
	assert.Panics(t, func() { shapes.WithPatch("") })
	assert.Panics(t, func() { shapes.WithWeldTolerance(-1) })
	assert.Panics(t, func() { shapes.FlipFaces(shapes.Cube(), nil, 1) })
}

func TestTriangleFan(t *testing.T) {
	m, err := shapes.TriangleFan(6)
	require.NoError(t, err)
	assert.Equal(t, 7, m.VertexCount())
	assert.Equal(t, 6, m.FaceCount())
	assert.Equal(t, []int{0, 6, 1}, m.Faces[5].Vertices)
	for _, f := range m.Faces {
		n := geom.Triangle{P: m.Vertices[f.Vertices[0]], Q: m.Vertices[f.Vertices[1]], R: m.Vertices[f.Vertices[2]]}.Normal()
		assert.Greater(t, n.Z, 0.0)
	}

	_, err = shapes.TriangleFan(2)
	assert.ErrorIs(t, err, shapes.ErrTooFewSegments)
}

func TestFlipFaces(t *testing.T) {
	m := shapes.Cube()
	assert.Zero(t, shapes.FlipFaces(m, rand.New(rand.NewSource(1)), 0))
	assert.Equal(t, []int{0, 2, 3, 1}, m.Faces[0].Vertices)

	assert.Equal(t, 6, shapes.FlipFaces(m, rand.New(rand.NewSource(1)), 1))
	assert.Equal(t, []int{1, 3, 2, 0}, m.Faces[0].Vertices)
	assert.False(t, outward(m, geom.V(0.5, 0.5, 0.5)))
}

func TestPrimitive(t *testing.T) {
	for _, name := range []string{shapes.SolidSphere, shapes.SolidBox, shapes.SolidCylinder} {
		s, err := shapes.Primitive(name)
		require.NoError(t, err, name)
		assert.NotNil(t, s)
	}
	_, err := shapes.Primitive("torus")
	assert.Error(t, err)
}

func TestFromSDF_Sphere(t *testing.T) {
	s, err := shapes.Primitive(shapes.SolidSphere)
	require.NoError(t, err)

	m, err := shapes.FromSDF(s, 10, shapes.WithPatch("ball"))
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	assert.Greater(t, m.FaceCount(), 0)
	// welding shares corners between triangles
	assert.Less(t, m.VertexCount(), 3*m.FaceCount())
	assert.Equal(t, 1, m.PatchCount())

	for _, f := range m.Faces {
		require.Len(t, f.Vertices, 3)
		assert.NotEqual(t, f.Vertices[0], f.Vertices[1])
		assert.NotEqual(t, f.Vertices[1], f.Vertices[2])
		assert.NotEqual(t, f.Vertices[2], f.Vertices[0])
	}
	for _, p := range m.Vertices {
		assert.InDelta(t, 1.0, p.Length(), 0.25)
	}
}

func TestFromSDF_Errors(t *testing.T) {
	_, err := shapes.FromSDF(nil, 10)
	assert.Error(t, err)

	s, err := shapes.Primitive(shapes.SolidBox)
	require.NoError(t, err)
	_, err = shapes.FromSDF(s, 0)
	assert.ErrorIs(t, err, shapes.ErrTooFewSegments)
}
