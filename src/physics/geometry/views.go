package geometry

import (
	"iter"
	"slices"
)

// FaceView is a read-only snapshot of a hull face.
type FaceView struct {
	ID     FaceID
	Normal Vector3
	// Vertices are the corners in counter-clockwise order seen from outside.
	Vertices [3]VertexID
}

type Stats struct {
	Points    int
	Interior  int
	Vertices  int
	HalfEdges int
	Faces     int
}

// Vertices yields the live hull vertices in identifier order.
func (h *ConvexHull) Vertices() iter.Seq2[VertexID, Vector3] {
	return func(yield func(VertexID, Vector3) bool) {
		for v := range h.mesh.Vertices() {
			if !yield(v.ID, v.Point) {
				return
			}
		}
	}
}

func (h *ConvexHull) Faces() iter.Seq[FaceView] {
	return func(yield func(FaceView) bool) {
		for f := range h.mesh.Faces() {
			view := FaceView{
				ID:       f.ID,
				Normal:   f.Normal,
				Vertices: h.mesh.FaceVertices(f),
			}
			if !yield(view) {
				return
			}
		}
	}
}

// Edges yields every undirected hull edge once, as its two endpoints.
func (h *ConvexHull) Edges() iter.Seq[[2]VertexID] {
	return func(yield func([2]VertexID) bool) {
		for e := range h.mesh.HalfEdges() {
			if e.Twin < e.ID {
				continue
			}
			if !yield([2]VertexID{e.Origin, h.mesh.GetTargetVertex(e)}) {
				return
			}
		}
	}
}

// Points returns every point handed to the hull, in the order received.
func (h *ConvexHull) Points() []Vector3 {
	return slices.Clone(h.points)
}

// VertexIndices returns the sorted positions in Points of the hull vertices.
func (h *ConvexHull) VertexIndices() []int {
	out := make([]int, 0, h.mesh.NumVertices())
	for v := range h.mesh.Vertices() {
		out = append(out, v.Index)
	}
	slices.Sort(out)
	return out
}

// Planes returns the outward plane of every face.
func (h *ConvexHull) Planes() []Plane {
	out := make([]Plane, 0, h.mesh.NumFaces())
	for f := range h.mesh.Faces() {
		out = append(out, h.mesh.FacePlane(f))
	}
	return out
}

// Contains reports whether point lies inside or on the hull, that is, no
// face sees it.
func (h *ConvexHull) Contains(point Vector3) bool {
	for f := range h.mesh.Faces() {
		if h.mesh.Sees(f, &point) {
			return false
		}
	}
	return true
}

func (h *ConvexHull) Stats() Stats {
	return Stats{
		Points:    len(h.points),
		Interior:  h.skipped,
		Vertices:  h.mesh.NumVertices(),
		HalfEdges: h.mesh.NumHalfEdges(),
		Faces:     h.mesh.NumFaces(),
	}
}
