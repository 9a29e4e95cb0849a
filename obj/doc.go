// SPDX-License-Identifier: MIT

// Package obj reads and writes the Wavefront-style OBJ text format used to
// exchange surface meshes.
//
// What:
//
//   - Decode parses a stream into an *iomesh.Mesh, recognizing three directives:
//     "v x y z" (vertex), "f i1 i2 ... in" (face, n ≥ 3) and "g name" (patch).
//     Every other line, comments included, is skipped.
//   - Face references are 1-based in the file and 0-based in memory. Only the
//     first slash-delimited token of a reference is used ("7/3/2" → vertex 7).
//     Negative references count back from the last vertex read so far.
//   - A face belongs to the most recently opened patch, or to none when no "g"
//     line has been seen yet.
//   - Encode writes vertices in order, then unassigned faces, then each patch as
//     a "g name" line followed by its faces.
//   - EncodeEdges writes feature-edge polylines as "l i j" lines.
//
// Files:
//
//   - ReadFile / WriteFile require a path with an extension. A ".gz" suffix
//     (any case) transparently gzip-decompresses on read and compresses on write.
//
// Errors:
//
//   - ErrParse (via *ParseError): malformed number in a "v" line, bad or zero
//     face reference, face with fewer than three references, "g" without a name.
//   - ErrInvalidPath: the path has no extension.
//   - I/O errors from the filesystem are returned wrapped; errors.Is against
//     fs.ErrNotExist and friends keeps working.
package obj
