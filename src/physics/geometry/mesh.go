package geometry

import (
	"fmt"
	"iter"
	"strings"
)

// arena owns the entities of one kind. Identifiers are slot indices handed
// out by a monotonic counter. Removal tombstones the slot; it is never reused.
type arena[ID ~int, T any] struct {
	kind  string
	items []*T
	live  int
}

func (a *arena[ID, T]) add(item *T) ID {
	id := ID(len(a.items))
	a.items = append(a.items, item)
	a.live++
	return id
}

func (a *arena[ID, T]) has(id ID) bool {
	return id >= 0 && int(id) < len(a.items) && a.items[id] != nil
}

func (a *arena[ID, T]) get(id ID) *T {
	if !a.has(id) {
		panic(newFault("dangling reference to %s %d", a.kind, id))
	}
	return a.items[id]
}

func (a *arena[ID, T]) remove(id ID) {
	if !a.has(id) {
		panic(newFault("remove of unknown %s %d", a.kind, id))
	}
	a.items[id] = nil
	a.live--
}

func (a *arena[ID, T]) all() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for _, item := range a.items {
			if item == nil {
				continue
			}
			if !yield(item) {
				return
			}
		}
	}
}

// Mesh is the half-edge store. It owns every vertex, half-edge and face of a
// hull; links between entities are identifiers resolved through the Mesh, so
// a removed entity can never be reached except by a lookup that faults.
type Mesh struct {
	vertices  arena[VertexID, Vertex]
	halfEdges arena[EdgeID, HalfEdge]
	faces     arena[FaceID, Face]
}

func NewMesh() *Mesh {
	return &Mesh{
		vertices:  arena[VertexID, Vertex]{kind: kindVertex},
		halfEdges: arena[EdgeID, HalfEdge]{kind: kindHalfEdge},
		faces:     arena[FaceID, Face]{kind: kindFace},
	}
}

func (m *Mesh) CreateVertex(point Vector3) *Vertex {
	v := newVertex(point)
	v.ID = m.vertices.add(v)
	return v
}

func (m *Mesh) CreateHalfEdge() *HalfEdge {
	e := newHalfEdge()
	e.ID = m.halfEdges.add(e)
	return e
}

func (m *Mesh) CreateFace() *Face {
	f := newFace()
	f.ID = m.faces.add(f)
	return f
}

func (m *Mesh) Vertex(id VertexID) *Vertex     { return m.vertices.get(id) }
func (m *Mesh) HalfEdge(id EdgeID) *HalfEdge   { return m.halfEdges.get(id) }
func (m *Mesh) Face(id FaceID) *Face           { return m.faces.get(id) }
func (m *Mesh) HasVertex(id VertexID) bool     { return m.vertices.has(id) }
func (m *Mesh) HasHalfEdge(id EdgeID) bool     { return m.halfEdges.has(id) }
func (m *Mesh) HasFace(id FaceID) bool         { return m.faces.has(id) }
func (m *Mesh) RemoveVertex(id VertexID)       { m.vertices.remove(id) }
func (m *Mesh) RemoveHalfEdge(id EdgeID)       { m.halfEdges.remove(id) }
func (m *Mesh) RemoveFace(id FaceID)           { m.faces.remove(id) }
func (m *Mesh) Vertices() iter.Seq[*Vertex]    { return m.vertices.all() }
func (m *Mesh) HalfEdges() iter.Seq[*HalfEdge] { return m.halfEdges.all() }
func (m *Mesh) Faces() iter.Seq[*Face]         { return m.faces.all() }
func (m *Mesh) NumVertices() int               { return m.vertices.live }
func (m *Mesh) NumHalfEdges() int              { return m.halfEdges.live }
func (m *Mesh) NumFaces() int                  { return m.faces.live }

// Remove deletes the entity named by id, which must be a VertexID, EdgeID or
// FaceID. References to it held by other entities are not touched.
func (m *Mesh) Remove(id any) {
	switch id := id.(type) {
	case VertexID:
		m.RemoveVertex(id)
	case EdgeID:
		m.RemoveHalfEdge(id)
	case FaceID:
		m.RemoveFace(id)
	default:
		panic(newFault("type %T cannot be removed", id))
	}
}

// Loop yields the boundary of the face containing e, starting at e.
func (m *Mesh) Loop(e EdgeID) iter.Seq[*HalfEdge] {
	return func(yield func(*HalfEdge) bool) {
		cur := e
		for {
			he := m.HalfEdge(cur)
			if !yield(he) {
				return
			}
			cur = he.Next
			if cur == e {
				return
			}
		}
	}
}

// Wind yields the half-edges leaving the origin of e in counter-clockwise
// order, starting at e.
func (m *Mesh) Wind(e EdgeID) iter.Seq[*HalfEdge] {
	return func(yield func(*HalfEdge) bool) {
		he := m.HalfEdge(e)
		for {
			if !yield(he) {
				return
			}
			he = m.GetNextEdgeOfVertex(he)
			if he.ID == e {
				return
			}
		}
	}
}

func (m *Mesh) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "VERTEX\tincidentEdge\n")
	for v := range m.Vertices() {
		fmt.Fprintf(&sb, "v%d (%g, %g, %g):\the%d\n", v.ID, v.Point[0], v.Point[1], v.Point[2], v.Edge)
	}

	fmt.Fprintf(&sb, "\nhEDGE\torigin\ttwin\tface\tnext\tprevious\n")
	for e := range m.HalfEdges() {
		fmt.Fprintf(&sb, "he%d:\tv%d\the%d\tf%d\the%d\the%d\n", e.ID, e.Origin, e.Twin, e.Face, e.Next, e.Prev)
	}

	fmt.Fprintf(&sb, "\nFACE\tedgeComponent\n")
	for f := range m.Faces() {
		fmt.Fprintf(&sb, "f%d:\the%d\n", f.ID, f.Edge)
	}
	return sb.String()
}
