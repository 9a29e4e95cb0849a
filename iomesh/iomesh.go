// SPDX-License-Identifier: MIT

// Package iomesh defines the flat interchange model used between the OBJ
// codec and the half-edge builder.
//
// A Mesh is an order-preserving list of vertex positions, polygonal faces
// (0-based vertex references plus an optional patch) and named patches.
// Nothing here checks topology; that is the builder's job.
package iomesh

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hemesh/geom"
)

// NoPatch marks a face that belongs to no patch.
const NoPatch = -1

// Sentinel errors reported by Validate.
var (
	// ErrVertexIndex indicates a face references a vertex outside the vertex list.
	ErrVertexIndex = errors.New("iomesh: vertex index out of range")

	// ErrPatchIndex indicates a face references a patch outside the patch list.
	ErrPatchIndex = errors.New("iomesh: patch index out of range")

	// ErrShortFace indicates a face with fewer than three vertex references.
	ErrShortFace = errors.New("iomesh: face needs at least three vertices")
)

// Face is a polygon given by its vertex references.
type Face struct {
	Vertices []int
	Patch    int // NoPatch when unassigned
}

// HasPatch reports whether the face is assigned to a patch.
func (f Face) HasPatch() bool { return f.Patch != NoPatch }

// Patch is a named face group.
type Patch struct {
	Name string
}

// Mesh is the interchange container.
type Mesh struct {
	Vertices []geom.Vec
	Faces    []Face
	Patches  []Patch
}

// New returns an empty Mesh.
func New() *Mesh {
	return &Mesh{}
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(p geom.Vec) int {
	m.Vertices = append(m.Vertices, p)
	return len(m.Vertices) - 1
}

// AddFace appends a face and returns its index. The vertex slice is copied.
func (m *Mesh) AddFace(vertices []int, patch int) int {
	vs := make([]int, len(vertices))
	copy(vs, vertices)
	m.Faces = append(m.Faces, Face{Vertices: vs, Patch: patch})
	return len(m.Faces) - 1
}

// AddPatch appends a patch and returns its index.
func (m *Mesh) AddPatch(name string) int {
	m.Patches = append(m.Patches, Patch{Name: name})
	return len(m.Patches) - 1
}

// LatestPatch returns the most recently added patch, or NoPatch.
func (m *Mesh) LatestPatch() int {
	return len(m.Patches) - 1
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Vertices) }

// FaceCount returns the number of faces.
func (m *Mesh) FaceCount() int { return len(m.Faces) }

// PatchCount returns the number of patches.
func (m *Mesh) PatchCount() int { return len(m.Patches) }

// Validate checks every face for length and reference ranges.
// It returns the first problem found, wrapped with the face index.
func (m *Mesh) Validate() error {
	for i, f := range m.Faces {
		if len(f.Vertices) < 3 {
			return fmt.Errorf("face %d has %d vertices: %w", i, len(f.Vertices), ErrShortFace)
		}
		for _, v := range f.Vertices {
			if v < 0 || v >= len(m.Vertices) {
				return fmt.Errorf("face %d references vertex %d of %d: %w", i, v, len(m.Vertices), ErrVertexIndex)
			}
		}
		if f.Patch != NoPatch && (f.Patch < 0 || f.Patch >= len(m.Patches)) {
			return fmt.Errorf("face %d references patch %d of %d: %w", i, f.Patch, len(m.Patches), ErrPatchIndex)
		}
	}

	return nil
}
