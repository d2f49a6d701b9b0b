package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// CheckEdgeTwins reports every half-edge whose twin does not point back at it.
func (h *ConvexHull) CheckEdgeTwins() error {
	return checkEdgeTwins(h.mesh)
}

func checkEdgeTwins(m *Mesh) error {
	var errs []error
	for e := range m.HalfEdges() {
		if !m.HasHalfEdge(e.Twin) {
			errs = append(errs, fmt.Errorf("%w: he%d: twin he%d does not exist", ErrInvariant, e.ID, e.Twin))
			continue
		}
		if tt := m.HalfEdge(e.Twin).Twin; tt != e.ID {
			errs = append(errs, fmt.Errorf("%w: he%d: twin.twin is he%d", ErrInvariant, e.ID, tt))
		}
	}
	return errors.Join(errs...)
}

// Validate checks the mesh against every structural and geometric invariant
// of a finished insertion and returns the violations found, joined.
func (h *ConvexHull) Validate() error {
	m := h.mesh
	if err := checkEdgeTwins(m); err != nil {
		return err
	}
	if err := checkLinks(m); err != nil {
		return err
	}
	if err := checkEuler(m); err != nil {
		return err
	}
	return checkConvexity(m)
}

func checkLinks(m *Mesh) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvariant}, args...)...))
	}

	for e := range m.HalfEdges() {
		switch {
		case !m.HasHalfEdge(e.Next) || !m.HasHalfEdge(e.Prev):
			fail("he%d: next he%d or previous he%d does not exist", e.ID, e.Next, e.Prev)
			continue
		case !m.HasVertex(e.Origin):
			fail("he%d: origin v%d does not exist", e.ID, e.Origin)
			continue
		case !m.HasFace(e.Face):
			fail("he%d: face f%d does not exist", e.ID, e.Face)
			continue
		}
		if m.HalfEdge(e.Next).Prev != e.ID {
			fail("he%d: next.previous is he%d", e.ID, m.HalfEdge(e.Next).Prev)
		}
		if m.HalfEdge(e.Prev).Next != e.ID {
			fail("he%d: previous.next is he%d", e.ID, m.HalfEdge(e.Prev).Next)
		}
		if m.HalfEdge(e.Next).Face != e.Face {
			fail("he%d: next lies on f%d, not f%d", e.ID, m.HalfEdge(e.Next).Face, e.Face)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	for f := range m.Faces() {
		if !m.HasHalfEdge(f.Edge) {
			fail("f%d: edge he%d does not exist", f.ID, f.Edge)
			continue
		}
		e := m.HalfEdge(f.Edge)
		if e.Face != f.ID {
			fail("f%d: boundary he%d belongs to f%d", f.ID, e.ID, e.Face)
		}
		if m.HalfEdge(m.HalfEdge(m.HalfEdge(e.Next).Next).Next) != e {
			fail("f%d: boundary loop is not a triangle", f.ID)
		}
	}

	for v := range m.Vertices() {
		if !m.HasHalfEdge(v.Edge) {
			fail("v%d: incident edge he%d does not exist", v.ID, v.Edge)
			continue
		}
		if o := m.HalfEdge(v.Edge).Origin; o != v.ID {
			fail("v%d: incident edge he%d starts at v%d", v.ID, v.Edge, o)
		}
	}
	return errors.Join(errs...)
}

func checkEuler(m *Mesh) error {
	v, he, f := m.NumVertices(), m.NumHalfEdges(), m.NumFaces()
	if he%2 != 0 || he != 3*f {
		return fmt.Errorf("%w: %d half-edges for %d triangles", ErrInvariant, he, f)
	}
	if chi := v - he/2 + f; chi != 2 {
		return fmt.Errorf("%w: V - E + F = %d", ErrInvariant, chi)
	}
	return nil
}

// checkConvexity requires every vertex to lie behind or on every face plane.
// The allowance is relative to the magnitudes involved, so it is zero for
// small integer coordinates and absorbs rounding otherwise.
func checkConvexity(m *Mesh) error {
	var errs []error
	for f := range m.Faces() {
		corners := m.FaceVertices(f)
		origin := &m.Vertex(corners[0]).Point
		scale := f.plane.Length()
		for v := range m.Vertices() {
			if v.ID == corners[0] || v.ID == corners[1] || v.ID == corners[2] {
				continue
			}
			side := sideOf(&f.plane, origin, &v.Point)
			if side <= 0 {
				continue
			}
			d := vec3.Sub(&v.Point, origin)
			if side > Epsilon*scale*d.Length() || isExact(f.plane, d) {
				errs = append(errs, fmt.Errorf("%w: v%d lies %g in front of f%d", ErrInvariant, v.ID, side, f.ID))
			}
		}
	}
	return errors.Join(errs...)
}

// isExact reports whether every component is an integer small enough that
// the dot product of a and b was computed without rounding.
func isExact(a, b Vector3) bool {
	for i := 0; i < 3; i++ {
		for _, x := range []float64{a[i], b[i]} {
			if x != math.Trunc(x) || math.Abs(x) > 1<<24 {
				return false
			}
		}
	}
	return true
}
