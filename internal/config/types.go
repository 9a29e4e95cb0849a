// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"regexp"

	"github.com/katalvlaran/hemesh/geom"
)

// RegionType classifies a region of the computational domain.
type RegionType string

// Region types.
const (
	RegionFluid  RegionType = "fluid"
	RegionPorous RegionType = "porous"
)

// Config is a decoded job file.
type Config struct {
	// WorkingDirectory is where geometry is read from and output is written
	// to. Defaults to the directory holding the job file.
	WorkingDirectory string   `mapstructure:"working_directory"`
	Geometry         []string `mapstructure:"geometry"`
	Regions          []Region `mapstructure:"regions"`
	Mesh             Mesh     `mapstructure:"mesh"`
}

// Region claims the patches its pattern matches.
type Region struct {
	Name           string     `mapstructure:"name"`
	Type           RegionType `mapstructure:"type"`
	Match          Pattern    `mapstructure:"match"`
	LocationInMesh []float64  `mapstructure:"location_in_mesh"`
}

// Location returns LocationInMesh as a point. Valid only after Validate.
func (r Region) Location() geom.Vec {
	return geom.V(r.LocationInMesh[0], r.LocationInMesh[1], r.LocationInMesh[2])
}

// Mesh holds the refinement controls.
type Mesh struct {
	BaseSize       float64 `mapstructure:"base_size"`
	BufferCells    int     `mapstructure:"buffer_cells"`
	FeatureAngle   float64 `mapstructure:"feature_angle"` // degrees
	CurvatureLevel *int    `mapstructure:"curvature_level"`
	ProximityCells *int    `mapstructure:"proximity_cells"`
	ProximityLevel *int    `mapstructure:"proximity_level"`

	Defaults Defaults  `mapstructure:"defaults"`
	Surfaces []Surface `mapstructure:"surfaces"`
	Volumes  []Volume  `mapstructure:"volumes"`
}

// Defaults is the surface control applied where no surface entry overrides it.
type Defaults struct {
	TargetLevel      int      `mapstructure:"target_level"`
	CurvatureLevel   int      `mapstructure:"curvature_level"`
	FeatureLevel     int      `mapstructure:"feature_level"`
	NLayers          int      `mapstructure:"n_layers"`
	FirstLayerHeight *float64 `mapstructure:"first_layer_height"`
	LayerGrowthRate  *float64 `mapstructure:"layer_growth_rate"`
}

// Surface overrides Defaults for the patches its pattern matches.
// A nil field inherits the default.
type Surface struct {
	Match            Pattern  `mapstructure:"match"`
	TargetLevel      *int     `mapstructure:"target_level"`
	CurvatureLevel   *int     `mapstructure:"curvature_level"`
	FeatureLevel     *int     `mapstructure:"feature_level"`
	NLayers          *int     `mapstructure:"n_layers"`
	FirstLayerHeight *float64 `mapstructure:"first_layer_height"`
	LayerGrowthRate  *float64 `mapstructure:"layer_growth_rate"`
}

// Volume turns the patches its pattern matches into a refinement volume.
type Volume struct {
	Match Pattern `mapstructure:"match"`
	Level int     `mapstructure:"level"`
}

// Control is a fully resolved surface control. FirstLayerHeight and
// LayerGrowthRate are zero when unset.
type Control struct {
	TargetLevel      int     `toml:"target_level"`
	CurvatureLevel   int     `toml:"curvature_level"`
	FeatureLevel     int     `toml:"feature_level"`
	NLayers          int     `toml:"n_layers"`
	FirstLayerHeight float64 `toml:"first_layer_height,omitempty"`
	LayerGrowthRate  float64 `toml:"layer_growth_rate,omitempty"`
}

// Pattern is a regular expression anchored at the start of the subject.
type Pattern struct {
	expr string
	re   *regexp.Regexp
}

// MustPattern compiles expr and panics on error.
func MustPattern(expr string) Pattern {
	var p Pattern
	if err := p.UnmarshalText([]byte(expr)); err != nil {
		panic(err)
	}
	return p
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Pattern) UnmarshalText(text []byte) error {
	re, err := regexp.Compile(`^(?:` + string(text) + `)`)
	if err != nil {
		return fmt.Errorf("%w: pattern %q: %w", ErrInvalidConfig, text, err)
	}
	p.expr, p.re = string(text), re

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Pattern) MarshalText() ([]byte, error) { return []byte(p.expr), nil }

// String returns the pattern as written.
func (p Pattern) String() string { return p.expr }

// IsZero reports whether no pattern was set.
func (p Pattern) IsZero() bool { return p.re == nil }

// Match reports whether name starts with a match of the pattern.
// The zero Pattern matches nothing.
func (p Pattern) Match(name string) bool {
	return p.re != nil && p.re.MatchString(name)
}
