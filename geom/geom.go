// SPDX-License-Identifier: MIT

// Package geom holds the small value types the mesh engine leans on:
// a 3-vector (sdfx v3.Vec), axis-aligned boxes, triangles and polygon normals.
//
// Everything here is a plain value; no type carries invariants beyond arithmetic.
package geom

import (
	"math"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Vec is a three-dimensional Cartesian vector.
type Vec = v3.Vec

// V builds a Vec from its components.
func V(x, y, z float64) Vec {
	return Vec{X: x, Y: y, Z: z}
}

// AABB is an axis-aligned bounding box stored as center and half extents.
type AABB struct {
	Center   Vec
	HalfSize Vec
}

// NewAABB constructs an AABB from its center and halfsize.
func NewAABB(center, halfsize Vec) AABB {
	return AABB{Center: center, HalfSize: halfsize}
}

// FromBounds constructs an AABB from its min/max corners.
func FromBounds(min, max Vec) AABB {
	return AABB{
		Center:   min.Add(max).MulScalar(0.5),
		HalfSize: max.Sub(min).MulScalar(0.5),
	}
}

// Bounds reduces points to the enclosing AABB. An empty input yields the zero box.
// Complexity: O(n).
func Bounds(points []Vec) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo = lo.Min(p)
		hi = hi.Max(p)
	}

	return FromBounds(lo, hi)
}

// Min returns the minimum corner.
func (b AABB) Min() Vec { return b.Center.Sub(b.HalfSize) }

// Max returns the maximum corner.
func (b AABB) Max() Vec { return b.Center.Add(b.HalfSize) }

// Size returns the full extents of the box.
func (b AABB) Size() Vec { return b.HalfSize.MulScalar(2) }

// Box3 converts to the sdfx min/max box representation.
func (b AABB) Box3() sdf.Box3 {
	return sdf.Box3{Min: b.Min(), Max: b.Max()}
}

// FromBox3 converts an sdfx box.
func FromBox3(b sdf.Box3) AABB {
	return FromBounds(b.Min, b.Max)
}

// Triangle is a triangle in Cartesian space.
type Triangle struct {
	P, Q, R Vec
}

// Center returns the centroid.
func (t Triangle) Center() Vec {
	return t.P.Add(t.Q).Add(t.R).DivScalar(3)
}

// Normal returns the (unnormalized) normal (Q-P)x(R-P).
func (t Triangle) Normal() Vec {
	return t.Q.Sub(t.P).Cross(t.R.Sub(t.P))
}

// UnitNormal returns the unit normal, or the zero vector for a degenerate triangle.
func (t Triangle) UnitNormal() Vec {
	return unit(t.Normal())
}

// Area returns the triangle area.
func (t Triangle) Area() float64 {
	return t.Normal().Length() * 0.5
}

// AABB returns the bounding box of the three corners.
func (t Triangle) AABB() AABB {
	return Bounds([]Vec{t.P, t.Q, t.R})
}

// PolygonNormal computes the Newell normal of a planar or near-planar polygon.
// The length of the result is twice the projected polygon area.
func PolygonNormal(points []Vec) Vec {
	var n Vec
	for i, p := range points {
		q := points[(i+1)%len(points)]
		n.X += (p.Y - q.Y) * (p.Z + q.Z)
		n.Y += (p.Z - q.Z) * (p.X + q.X)
		n.Z += (p.X - q.X) * (p.Y + q.Y)
	}

	return n
}

// UnitPolygonNormal returns the unit Newell normal, or the zero vector when
// the polygon has no area.
func UnitPolygonNormal(points []Vec) Vec {
	return unit(PolygonNormal(points))
}

// Angle returns the angle in radians between two unit vectors, clamping the
// dot product into [-1, 1] first.
func Angle(a, b Vec) float64 {
	return math.Acos(math.Max(-1, math.Min(1, a.Dot(b))))
}

func unit(v Vec) Vec {
	l := v.Length()
	if l == 0 || math.IsNaN(l) {
		return Vec{}
	}

	return v.DivScalar(l)
}
