package geometry

type EdgeID int

// HalfEdge is one direction of an undirected hull edge. Its face lies to the
// left of it, so walking Next circles the face counter-clockwise.
type HalfEdge struct {
	ID     EdgeID
	Origin VertexID
	Twin   EdgeID
	Face   FaceID
	Next   EdgeID
	Prev   EdgeID
}

func newHalfEdge() *HalfEdge {
	return &HalfEdge{
		Origin: NoVertex,
		Twin:   NoEdge,
		Face:   NoFace,
		Next:   NoEdge,
		Prev:   NoEdge,
	}
}

// GetTargetVertex returns the vertex this half-edge points to.
func (m *Mesh) GetTargetVertex(e *HalfEdge) VertexID {
	return m.HalfEdge(e.Next).Origin
}

// GetNextEdgeOfVertex returns the next half-edge leaving the same origin,
// rotating counter-clockwise around it.
func (m *Mesh) GetNextEdgeOfVertex(e *HalfEdge) *HalfEdge {
	return m.HalfEdge(m.HalfEdge(e.Prev).Twin)
}

func (m *Mesh) GetNextEdgeOfFace(e *HalfEdge) *HalfEdge {
	return m.HalfEdge(e.Next)
}
