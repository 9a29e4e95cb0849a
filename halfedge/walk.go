// SPDX-License-Identifier: MIT

package halfedge

import (
	"context"
	"fmt"
)

// WalkOption configures Walk via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type WalkOption func(*WalkOptions)

// WalkOptions holds parameters and callbacks for a face walk.
type WalkOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a face is discovered, with its depth.
	OnEnqueue func(f FaceID, depth int)

	// OnVisit is called when a face is dequeued. A non-nil error aborts the walk.
	OnVisit func(f FaceID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterCrossing can block the crossing over half-edge h (into twin(h)'s
	// face) by returning false.
	FilterCrossing func(h HalfEdgeID) bool

	err error
}

// DefaultWalkOptions returns options with no depth limit, no filtering and
// no-op hooks.
func DefaultWalkOptions() WalkOptions {
	return WalkOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(FaceID, int) {},
		OnVisit:        func(FaceID, int) error { return nil },
		FilterCrossing: func(HalfEdgeID) bool { return true },
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) WalkOption {
	return func(o *WalkOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a discovery callback.
func WithOnEnqueue(fn func(f FaceID, depth int)) WalkOption {
	return func(o *WalkOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a visit callback; an error from it stops the walk.
func WithOnVisit(fn func(f FaceID, depth int) error) WalkOption {
	return func(o *WalkOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the walk depth.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) WalkOption {
	return func(o *WalkOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterCrossing skips crossings for which fn returns false.
func WithFilterCrossing(fn func(h HalfEdgeID) bool) WalkOption {
	return func(o *WalkOptions) {
		if fn != nil {
			o.FilterCrossing = fn
		}
	}
}

// WalkResult holds the outcome of a face walk.
//   - Order: faces in visit sequence.
//   - Depth: crossings from the seed.
//   - Parent: predecessor face in the walk tree.
//   - Via: half-edge of the parent face that was crossed.
type WalkResult struct {
	Order  []FaceID
	Depth  map[FaceID]int
	Parent map[FaceID]FaceID
	Via    map[FaceID]HalfEdgeID
}

// PathTo reconstructs the face path from the seed to dest.
func (r *WalkResult) PathTo(dest FaceID) ([]FaceID, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("halfedge: no path to face %d", dest)
	}
	path := []FaceID{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Walk runs a breadth-first traversal over the faces reachable from seed
// through twin links. Neighbors are expanded in loop order from each face's
// stored half-edge.
func (m *Mesh) Walk(seed FaceID, opts ...WalkOption) (*WalkResult, error) {
	o := DefaultWalkOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := m.checkFace(seed); err != nil {
		return nil, err
	}

	w := newWalker(m, o)
	w.res = &WalkResult{
		Depth:  map[FaceID]int{},
		Parent: map[FaceID]FaceID{},
		Via:    map[FaceID]HalfEdgeID{},
	}
	order, err := w.run(seed)
	w.res.Order = order

	return w.res, err
}

type queueItem struct {
	face  FaceID
	depth int
}

// walker is the mutable traversal state. visited persists across run calls
// so one walker can sweep every component.
type walker struct {
	mesh    *Mesh
	opts    WalkOptions
	visited []bool
	queue   []queueItem
	res     *WalkResult // nil when only the order is needed

	// cross runs for each admitted crossing, before the neighbor is enqueued.
	cross func(h, twin HalfEdgeID)
}

func newWalker(m *Mesh, o WalkOptions) *walker {
	return &walker{
		mesh:    m,
		opts:    o,
		visited: make([]bool, len(m.faces)),
		queue:   make([]queueItem, 0, len(m.faces)),
	}
}

// run walks the component of seed and returns its faces in discovery order.
func (w *walker) run(seed FaceID) ([]FaceID, error) {
	w.queue = w.queue[:0]
	w.enqueue(seed, 0, seed, NoHalfEdge)

	order := make([]FaceID, 0, 8)
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-w.opts.Ctx.Done():
			return order, w.opts.Ctx.Err()
		default:
		}

		item := w.queue[head]
		order = append(order, item.face)
		if err := w.opts.OnVisit(item.face, item.depth); err != nil {
			return order, fmt.Errorf("halfedge: OnVisit error at face %d: %w", item.face, err)
		}
		w.expand(item)
	}

	return order, nil
}

func (w *walker) expand(item queueItem) {
	he := w.mesh.halfEdges
	start := w.mesh.faces[item.face].HalfEdge
	h := start
	for {
		if t := he[h].Twin; t != NoHalfEdge {
			g := he[t].Face
			next := item.depth + 1
			if !w.visited[g] && w.opts.FilterCrossing(h) &&
				(w.opts.MaxDepth == 0 || next <= w.opts.MaxDepth) {
				if w.cross != nil {
					w.cross(h, t)
				}
				w.enqueue(g, next, item.face, h)
			}
		}
		// g's loop may have been rewritten by cross, but never this one
		h = he[h].Next
		if h == start {
			break
		}
	}
}

func (w *walker) enqueue(f FaceID, depth int, parent FaceID, via HalfEdgeID) {
	w.visited[f] = true
	if w.res != nil {
		w.res.Depth[f] = depth
		if via != NoHalfEdge {
			w.res.Parent[f] = parent
			w.res.Via[f] = via
		}
	}
	w.opts.OnEnqueue(f, depth)
	w.queue = append(w.queue, queueItem{face: f, depth: depth})
}
