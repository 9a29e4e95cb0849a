// SPDX-License-Identifier: MIT

// Package hemesh is a half-edge surface mesh engine: load polygon soups from
// Wavefront OBJ, build a twin-linked half-edge structure, and answer the
// topology questions a mesher asks before it runs.
//
// What is in the box?
//
//	• Topology: manifold checks, boundary detection, consistent winding (Orient)
//	• Structure: connected components, feature edges by dihedral angle
//	• Editing: merge meshes, extract faces or named patches into new meshes
//	• I/O: OBJ read/write with transparent gzip, feature lines as OBJ "l" elements
//	• Fixtures: platonic solids and SDF tessellation for tests and demos
//
// Packages:
//
//	geom/               Vec, AABB and the vector helpers everything else uses
//	iomesh/             flat interchange model between the codec and the builder
//	obj/                OBJ decoder and encoder, .gz aware
//	halfedge/           arena half-edge mesh: Build, queries, Orient, Components, features
//	surface/            goroutine-safe facade with int handles and file I/O
//	shapes/             deterministic reference solids and sdfx tessellation
//	internal/config/    job file loading (YAML/TOML via viper)
//	internal/prepare/   snappyHexMesh case preparation from a job file
//	cmd/hemesh/         command line front end
//
// Quick example:
//
//	m, err := surface.FromOBJ("body.obj.gz")
//	if err != nil {
//		return err
//	}
//	m.Orient()
//	edges := m.FeatureHalfEdges(30 * math.Pi / 180)
//	return m.ExportEdgesOBJ("edges.obj", edges)
//
//	go install github.com/katalvlaran/hemesh/cmd/hemesh@latest
package hemesh
