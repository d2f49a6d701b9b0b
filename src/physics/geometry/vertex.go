package geometry

type VertexID int

type Vertex struct {
	ID    VertexID
	Point Vector3
	// Edge is any half-edge whose origin is this vertex.
	Edge EdgeID
	// Index is the position of Point in the hull's input sequence.
	Index int
}

func newVertex(point Vector3) *Vertex {
	return &Vertex{
		Point: point,
		Edge:  NoEdge,
		Index: -1,
	}
}
