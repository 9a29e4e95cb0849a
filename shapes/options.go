// SPDX-License-Identifier: MIT
// Package: hemesh/shapes
//
// options.go: functional options shared by every constructor.

package shapes

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hemesh/geom"
	"github.com/katalvlaran/hemesh/iomesh"
)

// Option customizes a constructor.
type Option func(*config)

type config struct {
	scale        float64
	offset       geom.Vec
	triangulate  bool
	patchPerFace bool
	patch        string
	weldTol      float64
}

const (
	defaultScale   = 1.0
	defaultWeldTol = 1e-9 // relative to the solid's bounding box diagonal
)

func newConfig(opts ...Option) config {
	cfg := config{scale: defaultScale, weldTol: defaultWeldTol}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithScale multiplies every position by s. Panics unless s > 0.
func WithScale(s float64) Option {
	if !(s > 0) || math.IsInf(s, 0) {
		panic(fmt.Sprintf("shapes: WithScale(%v)", s))
	}
	return func(c *config) {
		c.scale = s
	}
}

// WithOffset translates every position by d, after scaling.
func WithOffset(d geom.Vec) Option {
	return func(c *config) {
		c.offset = d
	}
}

// WithTriangulate splits polygonal faces into triangle fans from their first corner.
func WithTriangulate() Option {
	return func(c *config) {
		c.triangulate = true
	}
}

// WithPatchPerFace puts each face into its own patch, named "face_<i>".
func WithPatchPerFace() Option {
	return func(c *config) {
		c.patchPerFace = true
	}
}

// WithPatch puts every face into a single patch. Panics on an empty name.
func WithPatch(name string) Option {
	if name == "" {
		panic("shapes: WithPatch(\"\")")
	}
	return func(c *config) {
		c.patch = name
	}
}

// WithWeldTolerance sets the FromSDF weld distance as a fraction of the
// bounding box diagonal. Panics unless tol > 0.
func WithWeldTolerance(tol float64) Option {
	if !(tol > 0) {
		panic(fmt.Sprintf("shapes: WithWeldTolerance(%v)", tol))
	}
	return func(c *config) {
		c.weldTol = tol
	}
}

// assemble turns canonical points and faces into an iomesh.Mesh under cfg.
// Split triangles of one source face share its patch.
func (c config) assemble(points []geom.Vec, faces [][]int) *iomesh.Mesh {
	m := iomesh.New()
	for _, p := range points {
		m.AddVertex(p.MulScalar(c.scale).Add(c.offset))
	}

	shared := iomesh.NoPatch
	if c.patch != "" {
		shared = m.AddPatch(c.patch)
	}
	for i, f := range faces {
		patch := shared
		if c.patchPerFace {
			patch = m.AddPatch(fmt.Sprintf("face_%d", i))
		}
		if !c.triangulate || len(f) == 3 {
			m.AddFace(f, patch)
			continue
		}
		for k := 1; k+1 < len(f); k++ {
			m.AddFace([]int{f[0], f[k], f[k+1]}, patch)
		}
	}

	return m
}
