// SPDX-License-Identifier: MIT

package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/hemesh/geom"
)

func TestAABB_FromBounds(t *testing.T) {
	b := geom.FromBounds(geom.V(0, 0, 0), geom.V(1, 1, 1))
	assert.Equal(t, geom.V(0.5, 0.5, 0.5), b.Center)
	assert.Equal(t, geom.V(0.5, 0.5, 0.5), b.HalfSize)
}

func TestAABB_MinMax(t *testing.T) {
	b := geom.NewAABB(geom.V(0, 0, 0), geom.V(1, 1, 1))
	assert.Equal(t, geom.V(-1, -1, -1), b.Min())
	assert.Equal(t, geom.V(1, 1, 1), b.Max())
	assert.Equal(t, geom.V(2, 2, 2), b.Size())

	box := b.Box3()
	assert.Equal(t, b, geom.FromBox3(box))
}

func TestBounds(t *testing.T) {
	assert.Equal(t, geom.AABB{}, geom.Bounds(nil))

	b := geom.Bounds([]geom.Vec{geom.V(1, -2, 3), geom.V(-1, 4, 0), geom.V(0, 0, 5)})
	assert.Equal(t, geom.V(-1, -2, 0), b.Min())
	assert.Equal(t, geom.V(1, 4, 5), b.Max())
}

func TestTriangle(t *testing.T) {
	tri := geom.Triangle{P: geom.V(0, 0, 0), Q: geom.V(1, 0, 0), R: geom.V(0, 1, 0)}
	assert.Equal(t, geom.V(0, 0, 1), tri.Normal())
	assert.Equal(t, geom.V(0, 0, 1), tri.UnitNormal())
	assert.InDelta(t, 0.5, tri.Area(), 1e-12)
	assert.InDelta(t, 1.0/3, tri.Center().X, 1e-12)
	assert.Equal(t, geom.V(1, 1, 0), tri.AABB().Max())

	flat := geom.Triangle{P: geom.V(0, 0, 0), Q: geom.V(1, 0, 0), R: geom.V(2, 0, 0)}
	assert.Equal(t, geom.Vec{}, flat.UnitNormal())
}

func TestPolygonNormal_Quad(t *testing.T) {
	quad := []geom.Vec{geom.V(0, 0, 0), geom.V(2, 0, 0), geom.V(2, 2, 0), geom.V(0, 2, 0)}
	n := geom.PolygonNormal(quad)
	assert.InDelta(t, 8.0, n.Z, 1e-12) // twice the area
	assert.Equal(t, geom.V(0, 0, 1), geom.UnitPolygonNormal(quad))
}

func TestAngle(t *testing.T) {
	x, y := geom.V(1, 0, 0), geom.V(0, 1, 0)
	assert.InDelta(t, math.Pi/2, geom.Angle(x, y), 1e-12)
	assert.InDelta(t, 0, geom.Angle(x, x), 1e-12)
	// dot slightly outside [-1, 1] from rounding must not yield NaN
	assert.InDelta(t, 0, geom.Angle(geom.V(1.0000000001, 0, 0), x), 1e-6)
}
