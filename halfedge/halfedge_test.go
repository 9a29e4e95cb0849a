// SPDX-License-Identifier: MIT

package halfedge_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hemesh/geom"
	"github.com/katalvlaran/hemesh/halfedge"
	"github.com/katalvlaran/hemesh/iomesh"
	"github.com/katalvlaran/hemesh/shapes"
)

func build(t *testing.T, src *iomesh.Mesh) *halfedge.Mesh {
	t.Helper()
	m, err := halfedge.Build(src)
	require.NoError(t, err)
	require.NoError(t, m.CheckInvariants())
	return m
}

// soup builds an iomesh with n placeholder vertices and the given triangles.
func soup(n int, faces ...[]int) *iomesh.Mesh {
	m := iomesh.New()
	for i := 0; i < n; i++ {
		m.AddVertex(geom.V(float64(i), float64(i*i%7), float64(i%3)))
	}
	for _, f := range faces {
		m.AddFace(f, iomesh.NoPatch)
	}
	return m
}

// facePoints lists every face's positions in loop order.
func facePoints(t *testing.T, m *halfedge.Mesh) [][]geom.Vec {
	t.Helper()
	out := make([][]geom.Vec, m.FaceCount())
	for f := range out {
		vs, err := m.FaceVertices(halfedge.FaceID(f))
		require.NoError(t, err)
		for _, v := range vs {
			rec, err := m.Vertex(v)
			require.NoError(t, err)
			out[f] = append(out[f], rec.Point)
		}
	}
	return out
}

func TestBuild_Tetrahedron(t *testing.T) {
	m := build(t, shapes.Tetrahedron())

	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, 4, m.FaceCount())
	assert.Equal(t, 12, m.HalfEdgeCount())
	assert.Equal(t, 6, m.UndirectedEdgeCount())
	assert.True(t, m.IsClosed())
	assert.True(t, m.IsConsistent())
	assert.Empty(t, m.BoundaryHalfEdges())

	for h := 0; h < m.HalfEdgeCount(); h++ {
		he, err := m.HalfEdge(halfedge.HalfEdgeID(h))
		require.NoError(t, err)
		require.True(t, he.HasTwin())
		tw, err := m.HalfEdge(he.Twin)
		require.NoError(t, err)
		assert.Equal(t, halfedge.HalfEdgeID(h), tw.Twin)

		dst, err := m.Destination(halfedge.HalfEdgeID(h))
		require.NoError(t, err)
		assert.Equal(t, dst, tw.Origin)
	}
}

func TestBuild_OpenSquare(t *testing.T) {
	m := build(t, shapes.FlatQuad())

	assert.False(t, m.IsClosed())
	assert.True(t, m.IsConsistent())
	assert.Equal(t, 5, m.UndirectedEdgeCount())
	assert.Len(t, m.BoundaryHalfEdges(), 4)
}

func TestBuild_SameWoundPairIsInconsistent(t *testing.T) {
	m := build(t, soup(4, []int{0, 1, 2}, []int{0, 1, 3}))

	assert.False(t, m.IsConsistent())
	assert.False(t, m.IsClosed())
	assert.Len(t, m.BoundaryHalfEdges(), 4)

	assert.Equal(t, 1, m.Orient())
	assert.True(t, m.IsConsistent())
	require.NoError(t, m.CheckInvariants())

	vs, err := m.FaceVertices(1)
	require.NoError(t, err)
	assert.Equal(t, []halfedge.VertexID{1, 0, 3}, vs)
}

func TestBuild_NonManifold(t *testing.T) {
	src := soup(5, []int{0, 1, 2}, []int{1, 0, 3}, []int{0, 1, 4})
	m, err := halfedge.Build(src)
	assert.Nil(t, m)
	require.ErrorIs(t, err, halfedge.ErrNonManifold)

	var nm *halfedge.NonManifoldError
	require.True(t, errors.As(err, &nm))
	assert.Equal(t, halfedge.VertexID(0), nm.P)
	assert.Equal(t, halfedge.VertexID(1), nm.Q)
	assert.Equal(t, 3, nm.Count)
}

func TestBuild_InputErrors(t *testing.T) {
	withPatch := soup(3)
	withPatch.AddFace([]int{0, 1, 2}, 4)

	tests := []struct {
		name string
		src  *iomesh.Mesh
		want error
	}{
		{"vertex index", soup(3, []int{0, 1, 3}), iomesh.ErrVertexIndex},
		{"negative vertex", soup(3, []int{0, -1, 2}), iomesh.ErrVertexIndex},
		{"short face", soup(3, []int{0, 1}), iomesh.ErrShortFace},
		{"patch index", withPatch, iomesh.ErrPatchIndex},
		{"repeated corner", soup(3, []int{0, 1, 1}), halfedge.ErrDegenerateFace},
		{"wrapped corner", soup(3, []int{0, 1, 2, 0}), halfedge.ErrDegenerateFace},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := halfedge.Build(tc.src)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuild_EmptyAndIsolated(t *testing.T) {
	m := build(t, iomesh.New())
	assert.Zero(t, m.FaceCount())
	assert.True(t, m.IsClosed())
	assert.True(t, m.IsConsistent())
	assert.Empty(t, m.Components())
	assert.Equal(t, geom.AABB{}, m.AABB())

	src := shapes.Tetrahedron()
	iso := src.AddVertex(geom.V(5, 5, 5))
	m = build(t, src)
	v, err := m.Vertex(halfedge.VertexID(iso))
	require.NoError(t, err)
	assert.Equal(t, halfedge.NoHalfEdge, v.HalfEdge)
	assert.Equal(t, geom.V(2.5, 2.5, 2.5), m.AABB().Center)
}

func TestAccessors_OutOfRange(t *testing.T) {
	m := build(t, shapes.Tetrahedron())

	_, err := m.Vertex(-1)
	assert.ErrorIs(t, err, halfedge.ErrIndexOutOfRange)
	_, err = m.Face(4)
	assert.ErrorIs(t, err, halfedge.ErrIndexOutOfRange)
	_, err = m.HalfEdge(12)
	assert.ErrorIs(t, err, halfedge.ErrIndexOutOfRange)
	_, err = m.Patch(0)
	assert.ErrorIs(t, err, halfedge.ErrIndexOutOfRange)
	_, err = m.Edge(-3)
	assert.ErrorIs(t, err, halfedge.ErrIndexOutOfRange)
	_, err = m.FaceNormal(9)
	assert.ErrorIs(t, err, halfedge.ErrIndexOutOfRange)
	assert.ErrorIs(t, m.FlipFace(9), halfedge.ErrIndexOutOfRange)
}

func TestFaceNormal(t *testing.T) {
	m := build(t, shapes.Cube())
	n, err := m.FaceNormal(0)
	require.NoError(t, err)
	assert.Equal(t, geom.V(0, 0, -1), n)

	n, err = m.FaceNormal(5)
	require.NoError(t, err)
	assert.Equal(t, geom.V(1, 0, 0), n)
}

func TestEdge_Patches(t *testing.T) {
	// per-face patches: the shared diagonal carries both
	m := build(t, shapes.FlatQuad(shapes.WithPatchPerFace()))
	for h := 0; h < m.HalfEdgeCount(); h++ {
		e, err := m.Edge(halfedge.HalfEdgeID(h))
		require.NoError(t, err)
		he, _ := m.HalfEdge(halfedge.HalfEdgeID(h))
		if he.HasTwin() {
			assert.Len(t, e.Patches, 2)
			assert.Equal(t, halfedge.PatchID(he.Face), e.Patches[0])
		} else {
			assert.Equal(t, []halfedge.PatchID{halfedge.PatchID(he.Face)}, e.Patches)
		}
	}

	// one shared patch is listed once
	m = build(t, shapes.FlatQuad(shapes.WithPatch("lid")))
	for h := 0; h < m.HalfEdgeCount(); h++ {
		e, err := m.Edge(halfedge.HalfEdgeID(h))
		require.NoError(t, err)
		assert.Equal(t, []halfedge.PatchID{0}, e.Patches)
	}

	// no patches at all
	m = build(t, shapes.FlatQuad())
	e, err := m.Edge(0)
	require.NoError(t, err)
	assert.Empty(t, e.Patches)
	assert.Equal(t, halfedge.VertexID(0), e.Origin)
	assert.Equal(t, halfedge.VertexID(1), e.Destination)
}

func TestOrient_AlreadyConsistent(t *testing.T) {
	m := build(t, shapes.Octahedron())
	assert.Zero(t, m.Orient())
	assert.True(t, m.IsConsistent())
}

func TestOrient_RandomFlips(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		src := shapes.Cube(shapes.WithTriangulate())
		flipped := shapes.FlipFaces(src, rand.New(rand.NewSource(seed)), 0.5)
		m := build(t, src)
		if flipped > 0 && flipped < m.FaceCount() {
			assert.False(t, m.IsConsistent(), "seed %d", seed)
		}

		n := m.Orient()
		assert.True(t, n == flipped || n == m.FaceCount()-flipped, "seed %d: flipped %d, oriented %d", seed, flipped, n)
		assert.True(t, m.IsConsistent(), "seed %d", seed)
		assert.True(t, m.IsClosed())
		require.NoError(t, m.CheckInvariants())

		// all normals agree with face 0: all outward or all inward
		center := geom.V(0.5, 0.5, 0.5)
		sign := func(f int) float64 {
			pts := facePoints(t, m)[f]
			n, _ := m.FaceNormal(halfedge.FaceID(f))
			return math.Copysign(1, n.Dot(geom.Triangle{P: pts[0], Q: pts[1], R: pts[2]}.Center().Sub(center)))
		}
		want := sign(0)
		for f := 1; f < m.FaceCount(); f++ {
			assert.Equal(t, want, sign(f), "seed %d face %d", seed, f)
		}
	}
}

func TestOrient_Deterministic(t *testing.T) {
	src := shapes.Octahedron()
	shapes.FlipFaces(src, rand.New(rand.NewSource(7)), 0.5)
	a := build(t, src)
	b := a.Clone()

	assert.Equal(t, a.Orient(), b.Orient())
	assert.Equal(t, a.ToIOMesh(), b.ToIOMesh())
}

func TestOrient_Mobius(t *testing.T) {
	const n = 6
	src := iomesh.New()
	for i := 0; i < 2*n; i++ {
		src.AddVertex(geom.V(float64(i), 0, 0))
	}
	top := func(i int) int { return i }
	bot := func(i int) int { return n + i }
	for i := 0; i+1 < n; i++ {
		src.AddFace([]int{top(i), top(i + 1), bot(i + 1), bot(i)}, iomesh.NoPatch)
	}
	// the closing quad joins the ends with a half twist
	src.AddFace([]int{top(n - 1), bot(0), top(0), bot(n - 1)}, iomesh.NoPatch)

	m := build(t, src)
	assert.Len(t, m.Components(), 1)
	m.Orient()
	assert.False(t, m.IsConsistent())
	require.NoError(t, m.CheckInvariants())
}

func TestFlipFace(t *testing.T) {
	m := build(t, shapes.Tetrahedron())
	require.NoError(t, m.FlipFace(2))
	assert.False(t, m.IsConsistent())
	require.NoError(t, m.CheckInvariants())
	assert.Equal(t, 1, m.Orient())
	assert.True(t, m.IsConsistent())
}

func TestComponents_TwoFans(t *testing.T) {
	fan, err := shapes.TriangleFan(5)
	require.NoError(t, err)
	m := build(t, fan)
	other := build(t, fan)
	m.Merge(other)

	comps := m.Components()
	require.Len(t, comps, 2)
	assert.Len(t, comps[0], 5)
	assert.Len(t, comps[1], 5)
	assert.Equal(t, halfedge.FaceID(0), comps[0][0])
	assert.Equal(t, halfedge.FaceID(5), comps[1][0])

	seen := map[halfedge.FaceID]bool{}
	for _, c := range comps {
		for _, f := range c {
			assert.False(t, seen[f])
			seen[f] = true
		}
	}
	assert.Len(t, seen, m.FaceCount())

	c, err := m.ComponentOf(7)
	require.NoError(t, err)
	assert.Len(t, c, 5)
	assert.Equal(t, halfedge.FaceID(7), c[0])
	_, err = m.ComponentOf(10)
	assert.ErrorIs(t, err, halfedge.ErrIndexOutOfRange)
}

func TestFeatureEdges_FlatQuad(t *testing.T) {
	m := build(t, shapes.FlatQuad())
	assert.Empty(t, m.FeatureEdges(0))
	assert.Empty(t, m.FeatureEdges(0.1))
}

func TestFeatureEdges_Cube(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  *iomesh.Mesh
	}{
		{"quads", shapes.Cube()},
		{"triangles", shapes.Cube(shapes.WithTriangulate())},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := build(t, tc.src)
			below := m.FeatureEdges(math.Pi/2 - 1e-6)
			assert.Len(t, below, 12)
			assert.Empty(t, m.FeatureEdges(math.Pi/2+1e-6))

			hs := m.FeatureHalfEdges(math.Pi/2 - 1e-6)
			require.Len(t, hs, 12)
			for i := 1; i < len(hs); i++ {
				assert.Less(t, hs[i-1], hs[i])
			}
			for _, h := range hs {
				he, _ := m.HalfEdge(h)
				assert.Less(t, h, he.Twin)
			}
		})
	}
}

func TestFeatureEdges_PatchesAndRegions(t *testing.T) {
	m := build(t, shapes.Cube(shapes.WithTriangulate(), shapes.WithPatchPerFace()))
	for _, e := range m.FeatureEdges(math.Pi / 4) {
		require.Len(t, e.Patches, 2)
		assert.NotEqual(t, e.Patches[0], e.Patches[1])
	}

	regions := m.FeatureRegions(math.Pi / 4)
	require.Len(t, regions, 6)
	for _, r := range regions {
		assert.Len(t, r, 2)
	}
	assert.Len(t, m.FeatureRegions(math.Pi), 1)
}

func TestFeatureEdges_Tetrahedron(t *testing.T) {
	m := build(t, shapes.Tetrahedron())
	assert.Len(t, m.FeatureEdges(0.5), 6)
}

func TestMerge_Self(t *testing.T) {
	m := build(t, shapes.Tetrahedron(shapes.WithPatch("shell")))
	m.Merge(m)

	assert.Equal(t, 8, m.VertexCount())
	assert.Equal(t, 8, m.FaceCount())
	assert.Equal(t, 24, m.HalfEdgeCount())
	assert.Equal(t, 2, m.PatchCount())
	assert.True(t, m.IsClosed())
	assert.Len(t, m.Components(), 2)
	require.NoError(t, m.CheckInvariants())

	f, err := m.Face(6)
	require.NoError(t, err)
	assert.Equal(t, halfedge.PatchID(1), f.Patch)
}

func TestMerge_NoSeamTwins(t *testing.T) {
	// two squares sharing an edge geometrically stay separate
	m := build(t, shapes.FlatQuad())
	m.Merge(build(t, shapes.FlatQuad(shapes.WithOffset(geom.V(1, 0, 0)))))
	assert.Len(t, m.Components(), 2)
	assert.Len(t, m.BoundaryHalfEdges(), 8)
}

func TestMergeThenExtract_Isomorphic(t *testing.T) {
	base := build(t, shapes.Octahedron(shapes.WithPatchPerFace()))
	m := build(t, shapes.Cube())
	offset := m.FaceCount()
	m.Merge(base)

	ids := make([]halfedge.FaceID, base.FaceCount())
	for i := range ids {
		ids[i] = halfedge.FaceID(offset + i)
	}
	got, err := m.ExtractFaces(ids)
	require.NoError(t, err)
	require.NoError(t, got.CheckInvariants())

	assert.Equal(t, base.VertexCount(), got.VertexCount())
	assert.Equal(t, base.FaceCount(), got.FaceCount())
	assert.Equal(t, base.HalfEdgeCount(), got.HalfEdgeCount())
	assert.Equal(t, base.Patches(), got.Patches())
	assert.Equal(t, base.IsClosed(), got.IsClosed())
	assert.Equal(t, base.IsConsistent(), got.IsConsistent())
	assert.Equal(t, facePoints(t, base), facePoints(t, got))
}

func TestExtractFaces(t *testing.T) {
	m := build(t, shapes.Cube(shapes.WithPatchPerFace()))

	got, err := m.ExtractFaces([]halfedge.FaceID{3, 1, 3})
	require.NoError(t, err)
	assert.Equal(t, 2, got.FaceCount())
	assert.Equal(t, 6, got.VertexCount())
	assert.Equal(t, []halfedge.Patch{{Name: "face_3"}, {Name: "face_1"}}, got.Patches())
	assert.False(t, got.IsClosed())

	_, err = m.ExtractFaces([]halfedge.FaceID{0, 6})
	assert.ErrorIs(t, err, halfedge.ErrIndexOutOfRange)

	empty, err := m.ExtractFaces(nil)
	require.NoError(t, err)
	assert.Zero(t, empty.FaceCount())
}

func TestExtractPatches(t *testing.T) {
	m := build(t, shapes.Cube(shapes.WithPatchPerFace(), shapes.WithTriangulate()))

	got, err := m.ExtractPatches([]string{"face_4", "face_0", "missing"})
	require.NoError(t, err)
	assert.Equal(t, 4, got.FaceCount())
	// ascending face order puts face_0 first
	assert.Equal(t, []halfedge.Patch{{Name: "face_0"}, {Name: "face_4"}}, got.Patches())
	assert.Equal(t, []halfedge.FaceID{0, 1, 8, 9}, m.FacesInPatches([]string{"face_4", "face_0"}))

	none, err := m.ExtractPatches([]string{"nope"})
	require.NoError(t, err)
	assert.Zero(t, none.FaceCount())
}

func TestToIOMesh_RoundTrip(t *testing.T) {
	src := shapes.Octahedron(shapes.WithPatch("all"))
	m := build(t, src)
	assert.Equal(t, src, m.ToIOMesh())

	again := build(t, m.ToIOMesh())
	assert.Equal(t, m.HalfEdgeCount(), again.HalfEdgeCount())
	assert.True(t, again.IsConsistent())
}

func TestClone_Independent(t *testing.T) {
	m := build(t, shapes.Tetrahedron())
	c := m.Clone()
	require.NoError(t, c.FlipFace(0))
	assert.True(t, m.IsConsistent())
	assert.False(t, c.IsConsistent())
}

func TestWalk(t *testing.T) {
	m := build(t, shapes.Octahedron())

	res, err := m.Walk(0, halfedge.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []halfedge.FaceID{0, 4, 1, 2}, res.Order)
	assert.Equal(t, 1, res.Depth[4])

	path, err := res.PathTo(4)
	require.NoError(t, err)
	assert.Equal(t, []halfedge.FaceID{0, 4}, path)
	_, err = res.PathTo(7)
	assert.Error(t, err)

	full, err := m.Walk(0)
	require.NoError(t, err)
	assert.Len(t, full.Order, 8)

	var enq []halfedge.FaceID
	stop := errors.New("stop")
	_, err = m.Walk(0,
		halfedge.WithOnEnqueue(func(f halfedge.FaceID, _ int) { enq = append(enq, f) }),
		halfedge.WithOnVisit(func(f halfedge.FaceID, _ int) error {
			if f == 4 {
				return stop
			}
			return nil
		}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []halfedge.FaceID{0, 4, 1, 2}, enq[:4])

	_, err = m.Walk(0, halfedge.WithMaxDepth(-1))
	assert.ErrorIs(t, err, halfedge.ErrOptionViolation)
	_, err = m.Walk(8)
	assert.ErrorIs(t, err, halfedge.ErrIndexOutOfRange)

	blocked, err := m.Walk(0, halfedge.WithFilterCrossing(func(halfedge.HalfEdgeID) bool { return false }))
	require.NoError(t, err)
	assert.Equal(t, []halfedge.FaceID{0}, blocked.Order)
}
