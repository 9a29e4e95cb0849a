// SPDX-License-Identifier: MIT

// Package prepare lays out a case directory for a snappyHexMesh run from a
// job file: it imports and merges the geometry, sorts every patch into a
// region or a refinement volume, and writes the per-region surfaces, the
// per-volume surfaces and the feature edge sets the mesher consumes.
//
// Layout under the working directory after Setup:
//
//	0.orig/
//	system/
//	constant/triSurface/<region>.obj.gz
//	constant/triSurface/controls/<patch>.obj.gz
//	constant/triSurface/features/edges_<level>.obj
//	report.toml
//
// Setup checks the context between steps; a canceled run leaves whatever
// the finished steps wrote.
package prepare
