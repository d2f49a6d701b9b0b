package geometry

// collectConflicts records every face that sees point, together with the
// half-edges and vertices on their boundaries, as removal candidates.
func (h *ConvexHull) collectConflicts(point *Vector3) {
	for f := range h.mesh.Faces() {
		if !h.mesh.Sees(f, point) {
			continue
		}
		h.visible = append(h.visible, f.ID)
		h.candidates.faces.Insert(f.ID)
		for e := range h.mesh.Loop(f.Edge) {
			h.candidates.edges.Insert(e.ID)
			h.candidates.vertices.Insert(e.Origin)
		}
	}
}

func (h *ConvexHull) isVisible(f FaceID) bool {
	return h.candidates.faces.Has(f)
}

// onHorizon reports whether e separates a visible face from a hidden one.
func (h *ConvexHull) onHorizon(e *HalfEdge) bool {
	return h.isVisible(e.Face) && !h.isVisible(h.mesh.HalfEdge(e.Twin).Face)
}

func (h *ConvexHull) markSafe(e *HalfEdge) {
	h.horizon = append(h.horizon, e.ID)
	h.safe.edges.Insert(e.ID)
	h.safe.vertices.Insert(e.Origin)
}

// extractHorizon walks the closed chain of visible half-edges whose twins are
// hidden. Consecutive chain edges share an endpoint: the target of one is the
// origin of the next.
func (h *ConvexHull) extractHorizon() {
	start := h.findHorizonEdge()
	h.markSafe(start)

	first := start.Origin
	limit := h.candidates.edges.Len()
	for {
		last := h.mesh.HalfEdge(h.horizon[len(h.horizon)-1])
		out := h.mesh.HalfEdge(last.Next)
		if out.Origin == first {
			return
		}
		if len(h.horizon) >= limit {
			panic(newFault("horizon does not close after %d edges", len(h.horizon)))
		}
		h.markSafe(h.nextHorizonEdge(out))
	}
}

func (h *ConvexHull) findHorizonEdge() *HalfEdge {
	for _, id := range h.visible {
		f := h.mesh.Face(id)
		for e := range h.mesh.Loop(f.Edge) {
			if h.onHorizon(e) {
				return e
			}
		}
	}
	panic(newFault("no horizon edge among %d visible faces", len(h.visible)))
}

// nextHorizonEdge rotates around the origin of out until it meets the single
// horizon edge leaving that vertex.
func (h *ConvexHull) nextHorizonEdge(out *HalfEdge) *HalfEdge {
	for e := range h.mesh.Wind(out.ID) {
		if h.onHorizon(e) {
			return e
		}
	}
	panic(newFault("no horizon edge leaves vertex %d", out.Origin))
}

// removeConflicts deletes the visible faces and every candidate vertex and
// half-edge not kept on the horizon. It must run after stitching has read
// all the topology it needs. It returns the number of entities removed.
func (h *ConvexHull) removeConflicts() int {
	removed := 0
	for f := range h.candidates.faces.Iter() {
		h.mesh.Remove(f)
		removed++
	}
	for v := range h.candidates.vertices.Iter() {
		if !h.safe.vertices.Has(v) {
			h.mesh.Remove(v)
			removed++
		}
	}
	for e := range h.candidates.edges.Iter() {
		if !h.safe.edges.Has(e) {
			h.mesh.Remove(e)
			removed++
		}
	}
	return removed
}
