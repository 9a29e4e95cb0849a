// SPDX-License-Identifier: MIT

// Package config loads the job file that drives the prepare pipeline.
//
// A job file is YAML or TOML (chosen by extension) and names the input
// geometry, the fluid or porous regions the geometry is split into, and the
// mesh refinement controls applied per patch. Every key may be overridden
// from the environment with the HEMESH_ prefix, dots replaced by
// underscores (HEMESH_MESH_BASE_SIZE overrides mesh.base_size).
//
// Patterns in match fields are regular expressions anchored at the start of
// the patch name, so "wall" matches "wall_left" but not "inner_wall".
//
// Surface controls resolve last-match-wins over mesh.surfaces, with every
// unset field inherited from mesh.defaults. Volume controls resolve the
// same way over mesh.volumes and have no fallback.
package config
