package geometry

import (
	"fmt"
	"log/slog"
)

// ConvexHull is a 3D convex hull built by randomized incremental insertion.
// Its boundary is a closed, outward oriented, triangulated half-edge mesh.
//
// A ConvexHull is not safe for concurrent use.
type ConvexHull struct {
	mesh   *Mesh
	points []Vector3
	logger *slog.Logger
	check  bool

	skipped int

	// Per-insertion state, cleared before InsertPoint returns.
	visible    []FaceID
	candidates conflictSet
	safe       conflictSet
	horizon    []EdgeID
}

// NewConvexHull builds the hull of points. The first four points seed the
// construction and must not be coplanar; the rest are inserted in order.
// Points are expected to be distinct. Shuffling them beforehand keeps the
// expected running time at O(n log n).
func NewConvexHull(points []Vector3, opts ...Option) (hull *ConvexHull, err error) {
	if len(points) < seedSize {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(points))
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = Logger()
	}

	h := &ConvexHull{
		mesh:   NewMesh(),
		points: make([]Vector3, 0, len(points)),
		logger: o.logger,
		check:  o.validate,
	}

	defer CheckError(&err)

	if err := h.seed(points[:seedSize]); err != nil {
		return nil, err
	}

	for _, p := range points[seedSize:] {
		h.points = append(h.points, p)
		h.insert(p, len(h.points)-1)
	}

	h.logger.Info("convex hull built",
		slog.Int("points", len(h.points)),
		slog.Int("vertices", h.mesh.NumVertices()),
		slog.Int("faces", h.mesh.NumFaces()),
		slog.Int("interior", h.skipped))

	return h, nil
}

// InsertPoint adds point to the hull. It reports false, leaving the mesh
// untouched, when point already lies inside or on the hull.
func (h *ConvexHull) InsertPoint(point Vector3) (added bool, err error) {
	defer CheckError(&err)

	h.points = append(h.points, point)
	return h.insert(point, len(h.points)-1), nil
}

// insert runs one step of the incremental construction: visibility, horizon,
// stitching, and removal of the faces the new vertex hides.
func (h *ConvexHull) insert(point Vector3, index int) bool {
	defer h.reset()

	h.collectConflicts(&point)
	if len(h.visible) == 0 {
		h.skipped++
		h.logger.Debug("point inside hull", slog.Int("index", index))
		return false
	}

	h.extractHorizon()

	v := h.mesh.CreateVertex(point)
	v.Index = index
	h.stitch(v)
	removed := h.removeConflicts()

	h.logger.Debug("point inserted",
		slog.Int("index", index),
		slog.Int("visible", len(h.visible)),
		slog.Int("horizon", len(h.horizon)),
		slog.Int("removed", removed))

	if h.check {
		OrPanic(h.Validate())
	}
	return true
}

func (h *ConvexHull) reset() {
	h.visible = h.visible[:0]
	h.horizon = h.horizon[:0]
	h.candidates.clear()
	h.safe.clear()
}

// Mesh exposes the underlying half-edge store. Callers must not mutate it.
func (h *ConvexHull) Mesh() *Mesh {
	return h.mesh
}
