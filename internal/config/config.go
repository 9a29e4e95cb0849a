// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "HEMESH"

var (
	// ErrInvalidConfig indicates a job file that decodes but breaks a rule.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrUnsupportedFormat indicates a job file extension other than
	// .yaml, .yml or .toml.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")
)

var formats = map[string]string{
	".yaml": "yaml",
	".yml":  "yaml",
	".toml": "toml",
}

// Load reads, decodes and validates the job file at path.
func Load(ctx context.Context, path string) (*Config, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	format, ok := formats[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %q: %w", path, err)
	}
	dir := filepath.Dir(abs)

	v := viper.New()
	v.SetConfigFile(abs)
	v.SetConfigType(format)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set defaults
	v.SetDefault("working_directory", dir)
	v.SetDefault("geometry", []string{})
	v.SetDefault("regions", []any{})
	v.SetDefault("mesh.buffer_cells", 0)
	v.SetDefault("mesh.defaults.n_layers", 0)
	v.SetDefault("mesh.surfaces", []any{})
	v.SetDefault("mesh.volumes", []any{})

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}

	var cfg Config
	hooks := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, hooks); err != nil {
		if errors.Is(err, ErrInvalidConfig) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if !filepath.IsAbs(cfg.WorkingDirectory) {
		cfg.WorkingDirectory = filepath.Join(dir, cfg.WorkingDirectory)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// GeometryPaths returns the geometry files resolved against WorkingDirectory.
func (c *Config) GeometryPaths() []string {
	out := make([]string, len(c.Geometry))
	for i, p := range c.Geometry {
		if filepath.IsAbs(p) {
			out[i] = p
			continue
		}
		out[i] = filepath.Join(c.WorkingDirectory, p)
	}

	return out
}

// RegionFor returns the first region whose pattern matches patch.
func (c *Config) RegionFor(patch string) (Region, bool) {
	for _, r := range c.Regions {
		if r.Match.Match(patch) {
			return r, true
		}
	}

	return Region{}, false
}

// Control returns the defaults as a resolved control.
func (d Defaults) Control() Control {
	return Control{
		TargetLevel:      d.TargetLevel,
		CurvatureLevel:   d.CurvatureLevel,
		FeatureLevel:     d.FeatureLevel,
		NLayers:          d.NLayers,
		FirstLayerHeight: deref(d.FirstLayerHeight),
		LayerGrowthRate:  deref(d.LayerGrowthRate),
	}
}

// resolve fills the unset fields of s from d.
func (s Surface) resolve(d Defaults) Control {
	c := d.Control()
	if s.TargetLevel != nil {
		c.TargetLevel = *s.TargetLevel
	}
	if s.CurvatureLevel != nil {
		c.CurvatureLevel = *s.CurvatureLevel
	}
	if s.FeatureLevel != nil {
		c.FeatureLevel = *s.FeatureLevel
	}
	if s.NLayers != nil {
		c.NLayers = *s.NLayers
	}
	if s.FirstLayerHeight != nil {
		c.FirstLayerHeight = *s.FirstLayerHeight
	}
	if s.LayerGrowthRate != nil {
		c.LayerGrowthRate = *s.LayerGrowthRate
	}

	return c
}

// SurfaceControl resolves the control for patch: the last matching surface
// entry over the defaults, or the defaults alone.
func (m *Mesh) SurfaceControl(patch string) Control {
	for i := len(m.Surfaces) - 1; i >= 0; i-- {
		if m.Surfaces[i].Match.Match(patch) {
			return m.Surfaces[i].resolve(m.Defaults)
		}
	}

	return m.Defaults.Control()
}

// VolumeControl returns the last volume entry matching patch.
func (m *Mesh) VolumeControl(patch string) (Volume, bool) {
	for i := len(m.Volumes) - 1; i >= 0; i-- {
		if m.Volumes[i].Match.Match(patch) {
			return m.Volumes[i], true
		}
	}

	return Volume{}, false
}

// ProximityEnabled reports whether both proximity settings are set and non-zero.
func (m *Mesh) ProximityEnabled() bool {
	return deref(m.ProximityCells) != 0 && deref(m.ProximityLevel) != 0
}

func deref[T int | float64](p *T) T {
	if p == nil {
		return 0
	}
	return *p
}
