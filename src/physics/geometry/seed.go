package geometry

import (
	"fmt"
)

// seed builds the initial polyhedron from the first four points. The first
// three become a pair of back-to-back triangles, oriented so the fourth point
// sees only the back one; inserting the fourth point then closes the
// tetrahedron through the ordinary insertion path.
func (h *ConvexHull) seed(points []Vector3) error {
	p0, p1, p2, p3 := &points[0], &points[1], &points[2], &points[3]

	ab := orientation(p0, p1, p2, p3)
	if ab == 0 {
		return fmt.Errorf("%w: %v %v %v %v", ErrDegenerateSeed, *p0, *p1, *p2, *p3)
	}

	h.points = append(h.points, points[:3]...)
	var corners [3]*Vertex
	for i := range corners {
		corners[i] = h.mesh.CreateVertex(points[i])
		corners[i].Index = i
	}
	if ab < 0 {
		corners[1], corners[2] = corners[2], corners[1]
	}

	front := h.mesh.CreateFace()
	back := h.mesh.CreateFace()

	var outer, inner [3]*HalfEdge
	for i := range outer {
		outer[i] = h.mesh.CreateHalfEdge()
	}
	for i := range inner {
		inner[i] = h.mesh.CreateHalfEdge()
	}

	// outer[i] runs corners[i] -> corners[i+1]; inner[i] is its twin.
	for i := 0; i < 3; i++ {
		nx, pv := (i+1)%3, (i+2)%3

		o := outer[i]
		o.Origin = corners[i].ID
		o.Twin = inner[i].ID
		o.Face = front.ID
		o.Next = outer[nx].ID
		o.Prev = outer[pv].ID

		in := inner[i]
		in.Origin = corners[nx].ID
		in.Twin = outer[i].ID
		in.Face = back.ID
		in.Next = inner[pv].ID
		in.Prev = inner[nx].ID

		corners[i].Edge = o.ID
	}

	h.mesh.SetFaceTopology(front, outer[0].ID)
	h.mesh.SetFaceTopology(back, inner[0].ID)

	h.points = append(h.points, *p3)
	if !h.insert(*p3, 3) {
		panic(newFault("seed apex %v sees no face", *p3))
	}
	return nil
}
