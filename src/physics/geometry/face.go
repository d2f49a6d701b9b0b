package geometry

type FaceID int

type Face struct {
	ID   FaceID
	Edge EdgeID
	// Normal is the outward unit normal, fixed when the face topology is set.
	Normal Vector3
	// plane is Normal before normalization. Sign tests use it so integer
	// coordinates are classified without rounding.
	plane Vector3
}

func newFace() *Face {
	return &Face{Edge: NoEdge}
}

// SetFaceTopology makes e the boundary half-edge of f and derives the face
// normal from the first three vertices of the loop starting at e.
func (m *Mesh) SetFaceTopology(f *Face, e EdgeID) {
	e1 := m.HalfEdge(e)
	e2 := m.HalfEdge(e1.Next)
	e3 := m.HalfEdge(e2.Next)

	a := &m.Vertex(e1.Origin).Point
	b := &m.Vertex(e2.Origin).Point
	c := &m.Vertex(e3.Origin).Point

	f.Edge = e
	f.plane = planeOf(a, b, c)
	f.Normal = f.plane.Normalized()
}

// GetNormal returns the unnormalized outward normal of f.
func (f *Face) GetNormal() Vector3 {
	return f.plane
}

// Sees reports whether point lies strictly in front of f. Coplanar points
// are not seen.
func (m *Mesh) Sees(f *Face, point *Vector3) bool {
	origin := &m.Vertex(m.HalfEdge(f.Edge).Origin).Point
	return sideOf(&f.plane, origin, point) > 0
}

// FacePlane returns f as an outward plane with a unit normal.
func (m *Mesh) FacePlane(f *Face) Plane {
	origin := m.Vertex(m.HalfEdge(f.Edge).Origin).Point
	return NewPlane(f.Normal, origin)
}

// FaceVertices returns the three corners of f in counter-clockwise order.
func (m *Mesh) FaceVertices(f *Face) [3]VertexID {
	var out [3]VertexID
	e := m.HalfEdge(f.Edge)
	for i := range out {
		out[i] = e.Origin
		e = m.HalfEdge(e.Next)
	}
	return out
}
