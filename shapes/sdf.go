// SPDX-License-Identifier: MIT
// Package: hemesh/shapes
//
// sdf.go: marching-cubes tessellation of sdfx solids.

package shapes

import (
	"errors"
	"fmt"
	"math"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"

	"github.com/katalvlaran/hemesh/geom"
	"github.com/katalvlaran/hemesh/iomesh"
)

// ErrEmptySurface indicates the tessellation produced no usable triangle.
var ErrEmptySurface = errors.New("shapes: tessellation produced no triangles")

// Solid names accepted by Primitive.
const (
	SolidSphere   = "sphere"
	SolidBox      = "box"
	SolidCylinder = "cylinder"
)

// Primitive returns a unit-sized sdfx solid by name: a sphere of radius 1,
// a box with edge 2 and rounded corners, or a cylinder of height 2 and radius 1.
func Primitive(name string) (sdf.SDF3, error) {
	switch name {
	case SolidSphere:
		return sdf.Sphere3D(1)
	case SolidBox:
		return sdf.Box3D(geom.V(2, 2, 2), 0.1)
	case SolidCylinder:
		return sdf.Cylinder3D(2, 1, 0.1)
	default:
		return nil, fmt.Errorf("shapes: unknown solid %q", name)
	}
}

// FromSDF tessellates s on a uniform grid with cells cells along the longest
// bounding box axis. Corners closer than the weld tolerance share a vertex;
// triangles that collapse after welding are dropped.
func FromSDF(s sdf.SDF3, cells int, opts ...Option) (*iomesh.Mesh, error) {
	if s == nil {
		return nil, errors.New("shapes: nil solid")
	}
	if cells < 1 {
		return nil, fmt.Errorf("shapes: FromSDF cells %d: %w", cells, ErrTooFewSegments)
	}
	cfg := newConfig(opts...)

	renderer := render.NewMarchingCubesUniform(cells)
	triangles := render.ToTriangles(s, renderer)

	bb := s.BoundingBox()
	tol := bb.Max.Sub(bb.Min).Length() * cfg.weldTol
	w := newWelder(tol)

	var faces [][]int
	for _, tri := range triangles {
		a, b, c := w.index(tri[0]), w.index(tri[1]), w.index(tri[2])
		if a == b || b == c || c == a {
			continue
		}
		faces = append(faces, []int{a, b, c})
	}
	if len(faces) == 0 {
		return nil, ErrEmptySurface
	}

	return cfg.assemble(w.points, faces), nil
}

const minWeldTol = 1e-12

// welder snaps points to a grid of cell size tol and hands out one index per
// occupied grid cell.
type welder struct {
	tol    float64
	points []geom.Vec
	ids    map[[3]int64]int
}

func newWelder(tol float64) *welder {
	if !(tol > 0) {
		tol = minWeldTol
	}

	return &welder{tol: tol, ids: make(map[[3]int64]int)}
}

func (w *welder) index(p geom.Vec) int {
	k := [3]int64{
		int64(math.Round(p.X / w.tol)),
		int64(math.Round(p.Y / w.tol)),
		int64(math.Round(p.Z / w.tol)),
	}
	if i, ok := w.ids[k]; ok {
		return i
	}
	w.points = append(w.points, p)
	w.ids[k] = len(w.points) - 1

	return len(w.points) - 1
}
