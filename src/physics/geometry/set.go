package geometry

import (
	"iter"
	"maps"
)

type Set[T comparable] struct {
	values map[T]struct{}
}

func (s *Set[T]) Insert(value T) {
	if s.values == nil {
		s.values = make(map[T]struct{})
	}

	s.values[value] = struct{}{}
}

func (s *Set[T]) Has(value T) bool {
	_, ok := s.values[value]
	return ok
}

func (s *Set[T]) Iter() iter.Seq[T] {
	return maps.Keys(s.values)
}

func (s *Set[T]) Len() int {
	return len(s.values)
}

// Clear empties the set but keeps its storage for reuse.
func (s *Set[T]) Clear() {
	clear(s.values)
}

// conflictSet groups the entities touched by one insertion.
type conflictSet struct {
	faces    Set[FaceID]
	edges    Set[EdgeID]
	vertices Set[VertexID]
}

func (c *conflictSet) clear() {
	c.faces.Clear()
	c.edges.Clear()
	c.vertices.Clear()
}
