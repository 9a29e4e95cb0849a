// SPDX-License-Identifier: MIT

package prepare

import (
	"context"
	"fmt"
	"io"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/hemesh/internal/config"
	"github.com/katalvlaran/hemesh/surface"
)

// Case directory layout, relative to the working directory.
const (
	DirInitial  = "0.orig"
	DirConstant = "constant"
	DirSystem   = "system"
	DirSurfaces = "constant/triSurface"
	DirControls = "constant/triSurface/controls"
	DirFeatures = "constant/triSurface/features"
	ReportFile  = "report.toml"
)

// Backend runs the preparation steps for one job.
type Backend struct {
	cfg    *config.Config
	logger *log.Logger

	geometry *surface.Mesh
	controls []volumeControl // patch order
	regions  []regionPatches // first-assignment order
	report   Report
}

type volumeControl struct {
	patch  string
	volume config.Volume
}

type regionPatches struct {
	region  config.Region
	patches []string
}

// New returns a Backend for cfg. cfg must have passed Validate.
func New(cfg *config.Config, opts ...Option) *Backend {
	b := &Backend{cfg: cfg, logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Geometry returns the merged input geometry, nil before ImportGeometry.
func (b *Backend) Geometry() *surface.Mesh { return b.geometry }

// Report returns what the steps run so far have recorded.
func (b *Backend) Report() Report { return b.report }

// Setup runs every step in order.
func (b *Backend) Setup(ctx context.Context) error {
	steps := []struct {
		name string
		run  func() error
	}{
		{"clean", b.Clean},
		{"import geometry", b.ImportGeometry},
		{"assign geometry", b.AssignGeometry},
		{"check geometry", b.CheckGeometry},
		{"write geometry", b.WriteGeometry},
		{"write features", b.WriteFeatures},
		{"write report", b.WriteReport},
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("prepare: %s: %w", step.name, err)
		}
		b.logger.Info(step.name)
		if err := step.run(); err != nil {
			return err
		}
	}

	return nil
}

func (b *Backend) path(rel string) string {
	return filepath.Join(b.cfg.WorkingDirectory, rel)
}

// Clean removes any earlier output and recreates the case directories.
func (b *Backend) Clean() error {
	for _, dir := range []string{DirInitial, DirConstant, DirSystem} {
		if err := os.RemoveAll(b.path(dir)); err != nil {
			return fmt.Errorf("prepare: clean: %w", err)
		}
	}
	for _, dir := range []string{DirInitial, DirControls, DirFeatures, DirSystem} {
		if err := os.MkdirAll(b.path(dir), 0o755); err != nil {
			return fmt.Errorf("prepare: clean: %w", err)
		}
	}

	return nil
}

// ImportGeometry reads every geometry file and merges them in order.
func (b *Backend) ImportGeometry() error {
	b.geometry = nil
	for _, path := range b.cfg.GeometryPaths() {
		m, err := surface.FromOBJ(path, surface.WithLogger(b.logger))
		if err != nil {
			return fmt.Errorf("prepare: import %s: %w", path, err)
		}
		b.logger.Debug("imported", "path", path, "faces", m.FaceCount(), "patches", m.PatchCount())

		if b.geometry == nil {
			b.geometry = m
			continue
		}
		b.geometry.Merge(m)
	}
	if b.geometry == nil {
		return ErrNoGeometry
	}
	b.report.Geometry = b.geometry.Summary()

	return nil
}

// AssignGeometry sends each patch to the last volume control matching it,
// or else to the first region matching it. Patches sharing a name (from
// merged inputs) are assigned once and written together.
func (b *Backend) AssignGeometry() error {
	if b.geometry == nil {
		return ErrNoGeometry
	}
	b.controls = b.controls[:0]
	b.regions = b.regions[:0]

	for _, name := range b.geometry.Patches() {
		if vol, ok := b.cfg.Mesh.VolumeControl(name); ok {
			if slices.ContainsFunc(b.controls, func(c volumeControl) bool { return c.patch == name }) {
				continue
			}
			if err := checkFileName(name); err != nil {
				return err
			}
			b.controls = append(b.controls, volumeControl{patch: name, volume: vol})
			b.logger.Debug("assigned", "patch", name, "volume", vol.Match.String(), "level", vol.Level)
			continue
		}

		region, ok := b.cfg.RegionFor(name)
		if !ok {
			return fmt.Errorf("%w: %q", ErrNoRegion, name)
		}
		i := slices.IndexFunc(b.regions, func(r regionPatches) bool { return r.region.Name == region.Name })
		if i < 0 {
			if err := checkFileName(region.Name); err != nil {
				return err
			}
			b.regions = append(b.regions, regionPatches{region: region})
			i = len(b.regions) - 1
		}
		if slices.Contains(b.regions[i].patches, name) {
			continue
		}
		b.regions[i].patches = append(b.regions[i].patches, name)
		b.logger.Debug("assigned", "patch", name, "region", region.Name)
	}

	return nil
}

// checkFileName rejects names that would escape their output directory.
func checkFileName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	return nil
}

// CheckGeometry warns about geometry the mesher is likely to reject.
func (b *Backend) CheckGeometry() error {
	if b.geometry == nil {
		return ErrNoGeometry
	}
	sum := b.geometry.Summary()
	if !sum.Closed {
		b.logger.Warn("geometry has open boundaries")
	}
	if !sum.Consistent {
		b.logger.Warn("geometry winding is inconsistent")
	}
	if err := b.geometry.CheckInvariants(); err != nil {
		return fmt.Errorf("prepare: check geometry: %w", err)
	}

	return nil
}

// WriteGeometry writes one surface per volume control and one per region.
func (b *Backend) WriteGeometry() error {
	if b.geometry == nil {
		return ErrNoGeometry
	}
	b.report.Controls = b.report.Controls[:0]
	b.report.Regions = b.report.Regions[:0]

	for _, c := range b.controls {
		rel := filepath.Join(DirControls, c.patch+".obj.gz")
		faces, err := b.writePatches(rel, []string{c.patch})
		if err != nil {
			return err
		}
		b.report.Controls = append(b.report.Controls, ControlReport{
			Patch: c.patch, Level: c.volume.Level, Faces: faces, File: rel,
		})
	}

	for _, r := range b.regions {
		rel := filepath.Join(DirSurfaces, r.region.Name+".obj.gz")
		faces, err := b.writePatches(rel, r.patches)
		if err != nil {
			return err
		}
		report := RegionReport{
			Name:     r.region.Name,
			Type:     string(r.region.Type),
			Patches:  r.patches,
			Faces:    faces,
			File:     rel,
			Location: [3]float64(r.region.LocationInMesh),
		}
		for _, p := range r.patches {
			report.Surfaces = append(report.Surfaces, SurfaceReport{Patch: p, Control: b.cfg.Mesh.SurfaceControl(p)})
		}
		b.report.Regions = append(b.report.Regions, report)
	}

	return nil
}

func (b *Backend) writePatches(rel string, patches []string) (int, error) {
	m, err := b.geometry.ExtractPatches(patches)
	if err != nil {
		return 0, fmt.Errorf("prepare: extract %v: %w", patches, err)
	}
	if err := m.ExportOBJ(b.path(rel)); err != nil {
		return 0, fmt.Errorf("prepare: write %s: %w", rel, err)
	}
	b.logger.Debug("wrote", "file", rel, "faces", m.FaceCount())

	return m.FaceCount(), nil
}

// WriteFeatures writes the feature edges grouped by refinement level. An
// edge takes the highest feature level among the surface controls of its
// patches; edges touching only volume controls are left out.
func (b *Backend) WriteFeatures() error {
	if b.geometry == nil {
		return ErrNoGeometry
	}
	angle := b.cfg.Mesh.FeatureAngle * math.Pi / 180
	names := b.geometry.Patches()
	isVolume := make([]bool, len(names))
	for i, name := range names {
		_, isVolume[i] = b.cfg.Mesh.VolumeControl(name)
	}

	byLevel := make(map[int][]int)
	for _, h := range b.geometry.FeatureHalfEdges(angle) {
		e, err := b.geometry.Edge(h)
		if err != nil {
			return fmt.Errorf("prepare: features: %w", err)
		}
		level := -1
		for _, p := range e.Patches {
			if isVolume[p] {
				continue
			}
			level = max(level, b.cfg.Mesh.SurfaceControl(names[p]).FeatureLevel)
		}
		if level >= 0 {
			byLevel[level] = append(byLevel[level], h)
		}
	}

	b.report.Features = b.report.Features[:0]
	for _, level := range slices.Sorted(maps.Keys(byLevel)) {
		rel := filepath.Join(DirFeatures, fmt.Sprintf("edges_%02d.obj", level))
		if err := b.geometry.ExportEdgesOBJ(b.path(rel), byLevel[level]); err != nil {
			return fmt.Errorf("prepare: write %s: %w", rel, err)
		}
		b.report.Features = append(b.report.Features, FeatureReport{Level: level, Edges: len(byLevel[level]), File: rel})
		b.logger.Debug("wrote", "file", rel, "edges", len(byLevel[level]))
	}

	return nil
}
