// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
)

// Validate checks every rule a decoded job file must satisfy and reports all
// violations at once. Each one matches ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...)))
	}

	if len(c.Geometry) == 0 {
		fail("geometry: at least one file is required")
	}

	if len(c.Regions) == 0 {
		fail("regions: at least one region is required")
	}
	for i, r := range c.Regions {
		if r.Name == "" {
			fail("regions[%d].name is required", i)
		}
		if r.Type != RegionFluid && r.Type != RegionPorous {
			fail("regions[%d].type %q is not %q or %q", i, r.Type, RegionFluid, RegionPorous)
		}
		if r.Match.IsZero() {
			fail("regions[%d].match is required", i)
		}
		if len(r.LocationInMesh) != 3 {
			fail("regions[%d].location_in_mesh needs 3 coordinates, got %d", i, len(r.LocationInMesh))
		}
	}

	m := &c.Mesh
	if !(m.BaseSize > 0) {
		fail("mesh.base_size must be > 0, got %v", m.BaseSize)
	}
	if m.BufferCells < 0 {
		fail("mesh.buffer_cells must be >= 0, got %d", m.BufferCells)
	}
	if m.FeatureAngle < 0 {
		fail("mesh.feature_angle must be >= 0, got %v", m.FeatureAngle)
	}
	checkLevel(fail, "mesh.curvature_level", m.CurvatureLevel)
	checkLevel(fail, "mesh.proximity_level", m.ProximityLevel)
	if m.ProximityCells != nil && *m.ProximityCells < 1 {
		fail("mesh.proximity_cells must be >= 1, got %d", *m.ProximityCells)
	}

	d := m.Defaults
	checkLevel(fail, "mesh.defaults.target_level", &d.TargetLevel)
	checkLevel(fail, "mesh.defaults.curvature_level", &d.CurvatureLevel)
	checkLevel(fail, "mesh.defaults.feature_level", &d.FeatureLevel)
	checkLayers(fail, "mesh.defaults", &d.NLayers, d.FirstLayerHeight, d.LayerGrowthRate)
	checkControl(fail, "mesh.defaults", d.Control())

	for i, s := range m.Surfaces {
		at := fmt.Sprintf("mesh.surfaces[%d]", i)
		if s.Match.IsZero() {
			fail("%s.match is required", at)
		}
		checkLevel(fail, at+".target_level", s.TargetLevel)
		checkLevel(fail, at+".curvature_level", s.CurvatureLevel)
		checkLevel(fail, at+".feature_level", s.FeatureLevel)
		checkLayers(fail, at, s.NLayers, s.FirstLayerHeight, s.LayerGrowthRate)
		checkControl(fail, at, s.resolve(d))
	}

	for i, vol := range m.Volumes {
		if vol.Match.IsZero() {
			fail("mesh.volumes[%d].match is required", i)
		}
		checkLevel(fail, fmt.Sprintf("mesh.volumes[%d].level", i), &vol.Level)
	}

	return errors.Join(errs...)
}

type failFunc func(format string, args ...any)

func checkLevel(fail failFunc, key string, level *int) {
	if level != nil && *level < 0 {
		fail("%s must be >= 0, got %d", key, *level)
	}
}

func checkLayers(fail failFunc, at string, n *int, height, rate *float64) {
	if n != nil && *n < 0 {
		fail("%s.n_layers must be >= 0, got %d", at, *n)
	}
	if height != nil && !(*height > 0) {
		fail("%s.first_layer_height must be > 0, got %v", at, *height)
	}
	if rate != nil && !(*rate >= 1) {
		fail("%s.layer_growth_rate must be >= 1, got %v", at, *rate)
	}
}

// checkControl applies the layer rules to a resolved control.
func checkControl(fail failFunc, at string, c Control) {
	if c.NLayers <= 0 {
		return
	}
	if c.FirstLayerHeight == 0 {
		fail("%s: first_layer_height must be specified if n_layers > 0", at)
	}
	if c.LayerGrowthRate == 0 {
		fail("%s: layer_growth_rate must be specified if n_layers > 0", at)
	}
}
