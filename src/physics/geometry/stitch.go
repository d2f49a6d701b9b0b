package geometry

// stitch closes the hole behind the horizon with a fan of triangles around v.
// Each horizon edge keeps its direction and becomes the middle edge of the
// triangle (v, origin, target), so the new faces inherit outward winding.
func (h *ConvexHull) stitch(v *Vertex) {
	k := len(h.horizon)
	pre := make([]*HalfEdge, k)
	post := make([]*HalfEdge, k)

	for i, id := range h.horizon {
		mid := h.mesh.HalfEdge(id)
		target := h.mesh.GetTargetVertex(mid)

		f := h.mesh.CreateFace()
		in := h.mesh.CreateHalfEdge()
		out := h.mesh.CreateHalfEdge()

		in.Origin = v.ID
		out.Origin = target

		in.Next, mid.Next, out.Next = mid.ID, out.ID, in.ID
		in.Prev, mid.Prev, out.Prev = out.ID, in.ID, mid.ID
		in.Face, mid.Face, out.Face = f.ID, f.ID, f.ID

		// The old incident edge of a horizon vertex may be about to go.
		h.mesh.Vertex(mid.Origin).Edge = mid.ID
		h.mesh.SetFaceTopology(f, in.ID)

		pre[i], post[i] = in, out
	}

	for i := range post {
		j := (i + 1) % k
		post[i].Twin = pre[j].ID
		pre[j].Twin = post[i].ID
	}

	v.Edge = pre[0].ID
}
