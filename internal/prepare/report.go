// SPDX-License-Identifier: MIT

package prepare

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/hemesh/internal/config"
	"github.com/katalvlaran/hemesh/surface"
)

// Report records what a run produced. File paths are relative to the
// working directory.
type Report struct {
	FeatureAngle float64         `toml:"feature_angle"`
	Geometry     surface.Summary `toml:"geometry"`
	Regions      []RegionReport  `toml:"regions"`
	Controls     []ControlReport `toml:"controls"`
	Features     []FeatureReport `toml:"features"`
}

// RegionReport describes one region surface.
type RegionReport struct {
	Name     string          `toml:"name"`
	Type     string          `toml:"type"`
	Patches  []string        `toml:"patches"`
	Faces    int             `toml:"faces"`
	File     string          `toml:"file"`
	Location [3]float64      `toml:"location_in_mesh"`
	Surfaces []SurfaceReport `toml:"surfaces"`
}

// SurfaceReport is the resolved surface control of one patch.
type SurfaceReport struct {
	Patch   string         `toml:"patch"`
	Control config.Control `toml:"control"`
}

// ControlReport describes one refinement volume surface.
type ControlReport struct {
	Patch string `toml:"patch"`
	Level int    `toml:"level"`
	Faces int    `toml:"faces"`
	File  string `toml:"file"`
}

// FeatureReport describes one feature edge file.
type FeatureReport struct {
	Level int    `toml:"level"`
	Edges int    `toml:"edges"`
	File  string `toml:"file"`
}

// WriteReport writes the report as TOML to ReportFile.
func (b *Backend) WriteReport() error {
	b.report.FeatureAngle = b.cfg.Mesh.FeatureAngle
	data, err := toml.Marshal(b.report)
	if err != nil {
		return fmt.Errorf("prepare: encode report: %w", err)
	}
	if err := os.WriteFile(b.path(ReportFile), data, 0o644); err != nil {
		return fmt.Errorf("prepare: write report: %w", err)
	}
	b.logger.Info("wrote report", "file", ReportFile)

	return nil
}

// ReadReport decodes a report written by WriteReport.
func ReadReport(path string) (Report, error) {
	var r Report
	data, err := os.ReadFile(path)
	if err != nil {
		return r, fmt.Errorf("prepare: read report: %w", err)
	}
	if err := toml.Unmarshal(data, &r); err != nil {
		return r, fmt.Errorf("prepare: decode report: %w", err)
	}

	return r, nil
}
