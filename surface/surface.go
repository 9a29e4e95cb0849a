// SPDX-License-Identifier: MIT

package surface

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/hemesh/geom"
	"github.com/katalvlaran/hemesh/halfedge"
	"github.com/katalvlaran/hemesh/iomesh"
	"github.com/katalvlaran/hemesh/obj"
)

// Mesh is a goroutine-safe surface mesh.
type Mesh struct {
	mu     sync.RWMutex // guards m
	m      *halfedge.Mesh
	logger *log.Logger
}

// Face is the flat view of one face: its vertex indices in loop order and
// its patch index, -1 when unassigned.
type Face = iomesh.Face

// Edge is the query view of one half-edge.
type Edge = halfedge.Edge

// Summary bundles the headline figures of a mesh.
type Summary struct {
	Vertices   int        `toml:"vertices"`
	Faces      int        `toml:"faces"`
	Edges      int        `toml:"edges"`
	Patches    int        `toml:"patches"`
	Closed     bool       `toml:"closed"`
	Consistent bool       `toml:"consistent"`
	Components int        `toml:"components"`
	Min        [3]float64 `toml:"min"`
	Max        [3]float64 `toml:"max"`
}

// New returns an empty Mesh.
func New(opts ...Option) *Mesh {
	return wrap(&halfedge.Mesh{}, opts...)
}

func wrap(m *halfedge.Mesh, opts ...Option) *Mesh {
	s := &Mesh{m: m, logger: discardLogger()}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// derive wraps a result mesh with the receiver's logger.
func (s *Mesh) derive(m *halfedge.Mesh) *Mesh {
	return &Mesh{m: m, logger: s.logger}
}

// FromIOMesh builds a Mesh from the interchange model.
func FromIOMesh(src *iomesh.Mesh, opts ...Option) (*Mesh, error) {
	m, err := halfedge.Build(src)
	if err != nil {
		return nil, err
	}
	s := wrap(m, opts...)
	s.logger.Debug("built mesh", "vertices", m.VertexCount(), "faces", m.FaceCount(), "patches", m.PatchCount())

	return s, nil
}

// FromOBJ reads an OBJ file (gzip when the name ends in .gz) and builds a Mesh.
func FromOBJ(path string, opts ...Option) (*Mesh, error) {
	src, err := obj.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := FromIOMesh(src, opts...)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("imported", "path", path)

	return s, nil
}

// Decode reads OBJ text from r and builds a Mesh.
func Decode(r io.Reader, opts ...Option) (*Mesh, error) {
	src, err := obj.Decode(r)
	if err != nil {
		return nil, err
	}

	return FromIOMesh(src, opts...)
}

// ExportOBJ writes the mesh as OBJ to path (gzip when the name ends in .gz).
func (s *Mesh) ExportOBJ(path string) error {
	s.mu.RLock()
	src := s.m.ToIOMesh()
	s.mu.RUnlock()

	if err := obj.WriteFile(path, src); err != nil {
		return err
	}
	s.logger.Debug("exported", "path", path, "faces", len(src.Faces))

	return nil
}

// Encode writes the mesh as OBJ text to w.
func (s *Mesh) Encode(w io.Writer) error {
	s.mu.RLock()
	src := s.m.ToIOMesh()
	s.mu.RUnlock()

	return obj.Encode(w, src)
}

// ExportEdgesOBJ writes the listed half-edges as OBJ line elements.
func (s *Mesh) ExportEdgesOBJ(path string, halfEdges []int) error {
	s.mu.RLock()
	points := s.m.Points()
	pairs := make([][2]int, len(halfEdges))
	for i, h := range halfEdges {
		e, err := s.m.Edge(halfedge.HalfEdgeID(h))
		if err != nil {
			s.mu.RUnlock()
			return err
		}
		pairs[i] = [2]int{int(e.Origin), int(e.Destination)}
	}
	s.mu.RUnlock()

	return obj.WriteEdgesFile(path, points, pairs)
}

// VertexCount returns the number of vertices.
func (s *Mesh) VertexCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.VertexCount()
}

// FaceCount returns the number of faces.
func (s *Mesh) FaceCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.FaceCount()
}

// EdgeCount returns the number of half-edges.
func (s *Mesh) EdgeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.HalfEdgeCount()
}

// PatchCount returns the number of patches.
func (s *Mesh) PatchCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.PatchCount()
}

// Vertex returns the position of vertex i.
func (s *Mesh) Vertex(i int) (geom.Vec, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, err := s.m.Vertex(halfedge.VertexID(i))
	return v.Point, err
}

// Face returns face i.
func (s *Mesh) Face(i int) (Face, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.face(halfedge.FaceID(i))
}

func (s *Mesh) face(f halfedge.FaceID) (Face, error) {
	rec, err := s.m.Face(f)
	if err != nil {
		return Face{}, err
	}
	vs, _ := s.m.FaceVertices(f)
	out := Face{Vertices: make([]int, len(vs)), Patch: int(rec.Patch)}
	for k, v := range vs {
		out.Vertices[k] = int(v)
	}

	return out, nil
}

// Edge returns the edge view of half-edge i. A boundary edge lists only its
// own face's patch.
func (s *Mesh) Edge(i int) (Edge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Edge(halfedge.HalfEdgeID(i))
}

// Patch returns the name of patch i.
func (s *Mesh) Patch(i int) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, err := s.m.Patch(halfedge.PatchID(i))
	return p.Name, err
}

// Vertices returns all vertex positions.
func (s *Mesh) Vertices() []geom.Vec {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Points()
}

// Faces returns every face.
func (s *Mesh) Faces() []Face {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Face, s.m.FaceCount())
	for f := range out {
		out[f], _ = s.face(halfedge.FaceID(f))
	}

	return out
}

// Edges returns the edge view of every half-edge.
func (s *Mesh) Edges() []Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Edge, s.m.HalfEdgeCount())
	for h := range out {
		out[h], _ = s.m.Edge(halfedge.HalfEdgeID(h))
	}

	return out
}

// Patches returns every patch name in order.
func (s *Mesh) Patches() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ps := s.m.Patches()
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name
	}

	return out
}

// AABB returns the bounding box of all vertices.
func (s *Mesh) AABB() geom.AABB {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.AABB()
}

// IsClosed reports whether the surface has no boundary.
func (s *Mesh) IsClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.IsClosed()
}

// IsConsistent reports whether adjacent faces agree on winding.
func (s *Mesh) IsConsistent() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.IsConsistent()
}

// Orient makes winding consistent per component and returns the number of
// faces flipped.
func (s *Mesh) Orient() int {
	s.mu.Lock()
	n := s.m.Orient()
	s.mu.Unlock()

	s.logger.Debug("oriented", "flipped", n)
	return n
}

// Merge appends a snapshot of other. Merging a mesh into itself duplicates it.
func (s *Mesh) Merge(other *Mesh) {
	if other == s {
		s.mu.Lock()
		s.m.Merge(s.m)
		s.mu.Unlock()
		s.logger.Debug("merged self")
		return
	}

	// the two locks are never held together
	other.mu.RLock()
	snap := other.m.Clone()
	other.mu.RUnlock()

	s.mu.Lock()
	s.m.Merge(snap)
	s.mu.Unlock()
	s.logger.Debug("merged", "faces", snap.FaceCount(), "patches", snap.PatchCount())
}

// ExtractFaces returns a new Mesh made of the listed faces.
func (s *Mesh) ExtractFaces(ids []int) (*Mesh, error) {
	fs := make([]halfedge.FaceID, len(ids))
	for i, id := range ids {
		fs[i] = halfedge.FaceID(id)
	}
	s.mu.RLock()
	m, err := s.m.ExtractFaces(fs)
	s.mu.RUnlock()
	if err != nil {
		return nil, err
	}
	s.logger.Debug("extracted faces", "requested", len(ids), "faces", m.FaceCount())

	return s.derive(m), nil
}

// ExtractPatches returns a new Mesh made of the faces in the named patches.
func (s *Mesh) ExtractPatches(names []string) (*Mesh, error) {
	s.mu.RLock()
	m, err := s.m.ExtractPatches(names)
	s.mu.RUnlock()
	if err != nil {
		return nil, err
	}
	s.logger.Debug("extracted patches", "patches", names, "faces", m.FaceCount())

	return s.derive(m), nil
}

// Components returns the connected face sets.
func (s *Mesh) Components() [][]int {
	s.mu.RLock()
	comps := s.m.Components()
	s.mu.RUnlock()

	return faceLists(comps)
}

// FeatureRegions returns the face sets bounded by feature edges.
func (s *Mesh) FeatureRegions(angle float64) [][]int {
	s.mu.RLock()
	regions := s.m.FeatureRegions(angle)
	s.mu.RUnlock()

	return faceLists(regions)
}

// FeatureEdges returns the edges whose dihedral angle exceeds angle (radians).
func (s *Mesh) FeatureEdges(angle float64) []Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.FeatureEdges(angle)
}

// FeatureHalfEdges returns the half-edge indices behind FeatureEdges.
func (s *Mesh) FeatureHalfEdges(angle float64) []int {
	s.mu.RLock()
	hs := s.m.FeatureHalfEdges(angle)
	s.mu.RUnlock()

	out := make([]int, len(hs))
	for i, h := range hs {
		out[i] = int(h)
	}

	return out
}

// Summary reports counts, flags, component count and bounds in one read.
func (s *Mesh) Summary() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	box := s.m.AABB()
	lo, hi := box.Min(), box.Max()

	return Summary{
		Vertices:   s.m.VertexCount(),
		Faces:      s.m.FaceCount(),
		Edges:      s.m.HalfEdgeCount(),
		Patches:    s.m.PatchCount(),
		Closed:     s.m.IsClosed(),
		Consistent: s.m.IsConsistent(),
		Components: len(s.m.Components()),
		Min:        [3]float64{lo.X, lo.Y, lo.Z},
		Max:        [3]float64{hi.X, hi.Y, hi.Z},
	}
}

// CheckInvariants verifies the structural invariants of the mesh.
func (s *Mesh) CheckInvariants() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.CheckInvariants()
}

// Snapshot returns an independent copy of the underlying half-edge mesh.
func (s *Mesh) Snapshot() *halfedge.Mesh {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Clone()
}

func faceLists(in [][]halfedge.FaceID) [][]int {
	out := make([][]int, len(in))
	for i, c := range in {
		out[i] = make([]int, len(c))
		for k, f := range c {
			out[i][k] = int(f)
		}
	}

	return out
}
