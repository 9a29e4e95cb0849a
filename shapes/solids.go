// SPDX-License-Identifier: MIT
// Package: hemesh/shapes
//
// solids.go: canonical closed solids and open patches.
//
// Every face list below winds counter-clockwise seen from outside, so the
// Newell normals point away from the solid.

package shapes

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/hemesh/geom"
	"github.com/katalvlaran/hemesh/iomesh"
)

// ErrTooFewSegments indicates a fan with fewer than three triangles.
var ErrTooFewSegments = errors.New("shapes: too few segments")

var (
	tetraPoints = []geom.Vec{
		geom.V(0, 0, 0), geom.V(1, 0, 0), geom.V(0, 1, 0), geom.V(0, 0, 1),
	}
	tetraFaces = [][]int{{0, 2, 1}, {0, 1, 3}, {0, 3, 2}, {1, 2, 3}}

	// corner i has x = bit 0, y = bit 1, z = bit 2
	cubePoints = []geom.Vec{
		geom.V(0, 0, 0), geom.V(1, 0, 0), geom.V(0, 1, 0), geom.V(1, 1, 0),
		geom.V(0, 0, 1), geom.V(1, 0, 1), geom.V(0, 1, 1), geom.V(1, 1, 1),
	}
	cubeFaces = [][]int{
		{0, 2, 3, 1}, // z = 0
		{4, 5, 7, 6}, // z = 1
		{0, 1, 5, 4}, // y = 0
		{2, 6, 7, 3}, // y = 1
		{0, 4, 6, 2}, // x = 0
		{1, 3, 7, 5}, // x = 1
	}

	// +x, -x, +y, -y, +z, -z
	octaPoints = []geom.Vec{
		geom.V(1, 0, 0), geom.V(-1, 0, 0),
		geom.V(0, 1, 0), geom.V(0, -1, 0),
		geom.V(0, 0, 1), geom.V(0, 0, -1),
	}
	octaFaces = [][]int{
		{0, 2, 4}, {2, 1, 4}, {3, 0, 4}, {1, 3, 4},
		{2, 0, 5}, {1, 2, 5}, {0, 3, 5}, {3, 1, 5},
	}

	quadPoints = []geom.Vec{
		geom.V(0, 0, 0), geom.V(1, 0, 0), geom.V(1, 1, 0), geom.V(0, 1, 0),
	}
	quadFaces = [][]int{{0, 1, 2}, {0, 2, 3}}
)

// Tetrahedron returns the corner tetrahedron (origin plus unit axes):
// 4 vertices, 4 triangles, 6 edges.
func Tetrahedron(opts ...Option) *iomesh.Mesh {
	return newConfig(opts...).assemble(tetraPoints, tetraFaces)
}

// Cube returns the unit cube [0,1]^3 with 6 quads, or 12 triangles under
// WithTriangulate.
func Cube(opts ...Option) *iomesh.Mesh {
	return newConfig(opts...).assemble(cubePoints, cubeFaces)
}

// Octahedron returns the regular octahedron with vertices on the unit axes.
func Octahedron(opts ...Option) *iomesh.Mesh {
	return newConfig(opts...).assemble(octaPoints, octaFaces)
}

// FlatQuad returns the unit square in the z = 0 plane split into two
// triangles that share the diagonal (0,0)-(1,1).
func FlatQuad(opts ...Option) *iomesh.Mesh {
	return newConfig(opts...).assemble(quadPoints, quadFaces)
}

// TriangleFan returns a unit disc in the z = 0 plane: a center vertex (index
// 0) and n rim vertices joined by n triangles. n must be at least 3.
func TriangleFan(n int, opts ...Option) (*iomesh.Mesh, error) {
	if n < 3 {
		return nil, fmt.Errorf("shapes: TriangleFan(%d): %w", n, ErrTooFewSegments)
	}
	points := make([]geom.Vec, 0, n+1)
	points = append(points, geom.V(0, 0, 0))
	for k := 0; k < n; k++ {
		a := 2 * math.Pi * float64(k) / float64(n)
		points = append(points, geom.V(math.Cos(a), math.Sin(a), 0))
	}
	faces := make([][]int, n)
	for k := 0; k < n; k++ {
		faces[k] = []int{0, k + 1, (k+1)%n + 1}
	}

	return newConfig(opts...).assemble(points, faces), nil
}

// FlipFaces reverses each face's vertex order with probability p, drawing
// from rng in face order, and returns how many faces were reversed.
// Panics on a nil rng.
func FlipFaces(m *iomesh.Mesh, rng *rand.Rand, p float64) int {
	if rng == nil {
		panic("shapes: FlipFaces(nil rng)")
	}
	n := 0
	for i := range m.Faces {
		if rng.Float64() >= p {
			continue
		}
		vs := m.Faces[i].Vertices
		for a, b := 0, len(vs)-1; a < b; a, b = a+1, b-1 {
			vs[a], vs[b] = vs[b], vs[a]
		}
		n++
	}

	return n
}
