// SPDX-License-Identifier: MIT
// Package: hemesh/shapes

// Package shapes builds deterministic surface meshes for tests, examples and
// the CLI generate command.
//
// What:
//   - Closed solids with outward (counter-clockwise seen from outside) winding:
//     Tetrahedron, Cube (quads, or triangles with WithTriangulate), Octahedron.
//   - Open patches: FlatQuad (two coplanar triangles) and TriangleFan (a disc).
//   - FlipFaces reverses a random subset of face windings, for orientation tests.
//   - FromSDF tessellates any sdfx solid with uniform marching cubes and welds
//     coincident corners into shared vertices.
//
// Determinism:
//   - Vertex and face order are fixed per shape; options only transform
//     positions or attach patches.
//   - FlipFaces consumes the supplied *rand.Rand only.
//
// Options:
//   - Option constructors panic on meaningless input (non-positive scale,
//     empty patch name). Constructors themselves return errors instead.
//
// All results are *iomesh.Mesh values; hand them to halfedge.Build or
// surface.FromIOMesh.
package shapes
