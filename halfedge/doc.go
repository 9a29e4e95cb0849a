// SPDX-License-Identifier: MIT

// Package halfedge provides an index-based half-edge surface mesh and the
// topological algorithms that run over it.
//
// What
//
//   - Build turns an *iomesh.Mesh (vertex positions, polygon faces, patches)
//     into a navigable half-edge structure. Each face owns one half-edge per
//     boundary edge, linked next/prev into a closed loop; half-edges of the same
//     undirected edge are linked as twins.
//   - Queries: IsClosed, IsConsistent, AABB, indexed accessors and navigation.
//   - Algorithms: Orient (consistent winding per connected component),
//     Components (face connectivity through twins), FeatureEdges (dihedral
//     creases), Merge (append another mesh) and ExtractFaces/ExtractPatches
//     (independent sub-mesh).
//   - Walk exposes the underlying face-adjacency breadth-first traversal with
//     hooks, a depth limit and a crossing filter.
//
// Handles
//
//	VertexID, HalfEdgeID, FaceID and PatchID are plain indices into arrays
//	owned by one Mesh. They are meaningless against any other Mesh: Merge and
//	the Extract methods always produce a fresh handle space.
//
// Manifold rules
//
//	Twins are resolved per unordered vertex pair:
//	  1 half-edge            → boundary (no twin)
//	  2 half-edges, opposite → twins, consistent winding
//	  2 half-edges, same dir → twins, but the pair is a winding conflict and
//	                           IsConsistent reports false until Orient fixes it
//	  3 or more              → *NonManifoldError, no mesh is returned
//
// Determinism
//
//	Traversals seed from faces in ascending index order and expand each face's
//	neighbors in loop order, starting from the face's stored half-edge. The
//	same input always produces the same components, flips and results.
//
// Complexity (V vertices, H half-edges, F faces)
//
//   - Build:          O(V + H) expected (hash grouping of edge keys).
//   - Orient:         O(F + H).
//   - Components:     O(F + H).
//   - FeatureEdges:   O(F + H).
//   - Merge:          O(V' + H' + F' + P') of the appended mesh.
//   - ExtractFaces:   O(k) in the size of the kept faces, plus a rebuild.
//
// Concurrency
//
//	A Mesh is not synchronized. Orient and Merge mutate in place and need
//	exclusive access; all other methods only read and may run concurrently
//	with each other. The surface package wraps a Mesh with a RWMutex.
//
// Errors
//
//   - ErrNonManifold      (via *NonManifoldError) from Build.
//   - ErrDegenerateFace   from Build: a face repeats a vertex consecutively.
//   - iomesh.ErrShortFace, iomesh.ErrVertexIndex, iomesh.ErrPatchIndex from Build.
//   - ErrIndexOutOfRange  from accessors and ExtractFaces.
//   - ErrInvariant        from CheckInvariants.
//   - ErrOptionViolation  from Walk with an invalid option.
package halfedge
