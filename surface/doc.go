// SPDX-License-Identifier: MIT

// Package surface is the externally visible face of the mesh engine: a
// goroutine-safe wrapper around halfedge.Mesh that speaks plain ints and
// file paths.
//
// Every operation delegates to the halfedge package; surface owns no
// topology logic of its own. What it adds:
//
//   - Locking: a sync.RWMutex per Mesh. Queries share the read lock; Orient
//     and Merge take the write lock, so an in-place winding flip never
//     interleaves with a reader.
//   - I/O: FromOBJ / ExportOBJ (with transparent .gz), Decode / Encode on
//     streams, ExportEdgesOBJ for feature lines.
//   - Int handles: accessors take and return int indices. Edges are indexed
//     by half-edge, so EdgeCount equals the half-edge count and each interior
//     edge is visible once per direction.
//   - Logging: WithLogger injects a charmbracelet/log Logger that receives
//     debug events; by default nothing is logged.
//
// Errors from the lower layers are re-exported as ErrIndexOutOfRange,
// ErrNonManifold, ErrParse and ErrInvalidPath so callers can branch with
// errors.Is without importing every package.
package surface
