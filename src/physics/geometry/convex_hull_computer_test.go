package geometry

import (
	"bytes"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"
)

func tetrahedron() []Vector3 {
	return []Vector3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

func cubeCorners() []Vector3 {
	return []Vector3{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1},
		{1, 1, 0}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1},
	}
}

func countEdges(h *ConvexHull) int {
	n := 0
	for range h.Edges() {
		n++
	}
	return n
}

func centroidOf(h *ConvexHull) Vector3 {
	var c Vector3
	n := 0
	for _, p := range h.Vertices() {
		c.Add(&p)
		n++
	}
	return c.Scaled(1 / float64(n))
}

// shuffledSeedable shuffles points until the first four are not coplanar.
func shuffledSeedable(rng *rand.Rand, points []Vector3) []Vector3 {
	points = slices.Clone(points)
	for {
		rng.Shuffle(len(points), func(i, j int) {
			points[i], points[j] = points[j], points[i]
		})
		if orientation(&points[0], &points[1], &points[2], &points[3]) != 0 {
			return points
		}
	}
}

func gridPoints(rng *rand.Rand, n, lo, hi int) []Vector3 {
	seen := map[Vector3]bool{}
	var out []Vector3
	for len(out) < n {
		var p Vector3
		for axis := range p {
			p[axis] = float64(rng.IntN(hi-lo+1) + lo)
		}
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

func TestNewConvexHullTetrahedron(t *testing.T) {
	h, err := NewConvexHull(tetrahedron(), WithValidation(true))
	require.NoError(t, err)

	stats := h.Stats()
	require.Equal(t, 4, stats.Vertices)
	require.Equal(t, 4, stats.Faces)
	require.Equal(t, 12, stats.HalfEdges)
	require.Equal(t, 6, countEdges(h))
	require.Equal(t, []int{0, 1, 2, 3}, h.VertexIndices())
	require.NoError(t, h.CheckEdgeTwins())
	require.NoError(t, h.Validate())
}

func TestNewConvexHullErrors(t *testing.T) {
	for idx, tc := range []struct {
		name   string
		points []Vector3
		err    error
	}{
		{"coplanar seed", []Vector3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}, ErrDegenerateSeed},
		{"coplanar seed with more points", []Vector3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}, {0, 0, 1}}, ErrDegenerateSeed},
		{"collinear seed", []Vector3{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {0, 0, 1}}, ErrDegenerateSeed},
		{"three points", []Vector3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, ErrTooFewPoints},
		{"no points", nil, ErrTooFewPoints},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.name), func(t *testing.T) {
			h, err := NewConvexHull(tc.points)
			require.ErrorIs(t, err, tc.err)
			require.Nil(t, h)
		})
	}
}

func TestSeedOrientationIsOutward(t *testing.T) {
	for idx, points := range [][]Vector3{
		tetrahedron(),
		{{0, 0, 0}, {0, 1, 0}, {1, 0, 0}, {0, 0, 1}},
		{{3, -1, 2}, {-2, 4, 0}, {1, 1, -5}, {0, 0, 7}},
		{{3, -1, 2}, {1, 1, -5}, {-2, 4, 0}, {0, 0, 7}},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			h, err := NewConvexHull(points, WithValidation(true))
			require.NoError(t, err)
			requireOutwardCCW(t, h)
		})
	}
}

// requireOutwardCCW checks that every face winds counter-clockwise seen
// from outside and that its stored normal points away from the interior.
func requireOutwardCCW(t *testing.T, h *ConvexHull) {
	t.Helper()
	inside := centroidOf(h)
	m := h.Mesh()
	for face := range h.Faces() {
		a := m.Vertex(face.Vertices[0]).Point
		b := m.Vertex(face.Vertices[1]).Point
		c := m.Vertex(face.Vertices[2]).Point

		n := planeOf(&a, &b, &c)
		n.Normalize()
		require.InDelta(t, 1, vec3.Dot(&n, &face.Normal), 1e-9, "f%d normal disagrees with winding", face.ID)

		toInside := vec3.Sub(&inside, &a)
		require.Less(t, vec3.Dot(&face.Normal, &toInside), 0.0, "f%d normal points inward", face.ID)
	}
}

func TestCubeCornersInAnyOrder(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for trial := 0; trial < 20; trial++ {
		points := shuffledSeedable(rng, cubeCorners())
		t.Run(fmt.Sprintf("%d", trial), func(t *testing.T) {
			h, err := NewConvexHull(points, WithValidation(true))
			require.NoError(t, err)

			stats := h.Stats()
			require.Equal(t, 8, stats.Vertices)
			require.Equal(t, 12, stats.Faces)
			require.Equal(t, 18, countEdges(h))
			require.Zero(t, stats.Interior)
			requireOutwardCCW(t, h)
		})
	}
}

func TestInsertInteriorPointIsNoOp(t *testing.T) {
	for idx, point := range []Vector3{
		{0.25, 0.25, 0.25}, // centroid
		{0.2, 0.2, 0},      // on a face
		{0.5, 0, 0},        // on an edge
		{1, 0, 0},          // on a vertex
	} {
		t.Run(fmt.Sprintf("%d/%v", idx, point), func(t *testing.T) {
			h, err := NewConvexHull(tetrahedron())
			require.NoError(t, err)

			m := h.Mesh()
			before := m.String()
			slots := []int{len(m.vertices.items), len(m.halfEdges.items), len(m.faces.items)}

			added, err := h.InsertPoint(point)
			require.NoError(t, err)
			require.False(t, added)
			require.True(t, h.Contains(point))

			require.Equal(t, before, m.String())
			require.Equal(t, slots, []int{len(m.vertices.items), len(m.halfEdges.items), len(m.faces.items)})
			require.Equal(t, 1, h.Stats().Interior)
			require.Len(t, h.Points(), 5)
		})
	}
}

func TestInsertPointGrowsHull(t *testing.T) {
	h, err := NewConvexHull(tetrahedron(), WithValidation(true))
	require.NoError(t, err)

	p := NewVector3(1, 1, 1)
	require.False(t, h.Contains(p))

	added, err := h.InsertPoint(p)
	require.NoError(t, err)
	require.True(t, added)

	stats := h.Stats()
	require.Equal(t, 5, stats.Vertices)
	require.Equal(t, 6, stats.Faces)
	require.Equal(t, 9, countEdges(h))
	require.Equal(t, []int{0, 1, 2, 3, 4}, h.VertexIndices())
	require.True(t, h.Contains(p))
	requireOutwardCCW(t, h)
}

func TestInsertPointRemovesHiddenVertex(t *testing.T) {
	h, err := NewConvexHull(tetrahedron(), WithValidation(true))
	require.NoError(t, err)

	added, err := h.InsertPoint(NewVector3(-1, -1, -1))
	require.NoError(t, err)
	require.True(t, added)

	stats := h.Stats()
	require.Equal(t, 4, stats.Vertices)
	require.Equal(t, 4, stats.Faces)
	require.Equal(t, 12, stats.HalfEdges)
	require.Equal(t, []int{1, 2, 3, 4}, h.VertexIndices())
	require.False(t, h.Mesh().HasVertex(0))
	requireOutwardCCW(t, h)
}

func TestEulerAfterEveryInsertion(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	points := append(tetrahedron(), gridPoints(rng, 300, -10, 10)...)

	h, err := NewConvexHull(points[:4])
	require.NoError(t, err)
	for i, p := range points[4:] {
		if slices.Contains(points[:4], p) {
			continue
		}
		_, err := h.InsertPoint(p)
		require.NoError(t, err, "point %d", i)

		m := h.Mesh()
		require.NoError(t, checkEuler(m))
		require.NoError(t, checkEdgeTwins(m))
		require.NoError(t, checkLinks(m))
	}
	require.NoError(t, h.Validate())
	requireOutwardCCW(t, h)
}

func TestInsertionOrderDoesNotChangeVertexSet(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	seed := []Vector3{{-0.1, -0.1, -0.1}, {0.1, -0.1, -0.1}, {0, 0.1, -0.1}, {0, 0, 0.1}}
	rest := make([]Vector3, 80)
	for i := range rest {
		rest[i] = NewVector3(2*rng.Float64()-1, 2*rng.Float64()-1, 2*rng.Float64()-1)
	}

	vertexSet := func(h *ConvexHull) []Vector3 {
		var out []Vector3
		for _, p := range h.Vertices() {
			out = append(out, p)
		}
		slices.SortFunc(out, func(a, b Vector3) int {
			for axis := range a {
				if a[axis] < b[axis] {
					return -1
				}
				if a[axis] > b[axis] {
					return 1
				}
			}
			return 0
		})
		return out
	}

	var want []Vector3
	for trial := 0; trial < 8; trial++ {
		order := slices.Clone(rest)
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

		h, err := NewConvexHull(append(slices.Clone(seed), order...), WithValidation(true))
		require.NoError(t, err)

		got := vertexSet(h)
		if want == nil {
			want = got
			continue
		}
		require.Equal(t, want, got, "trial %d", trial)
	}
}

func TestContainsAndPlanes(t *testing.T) {
	h, err := NewConvexHull(cubeCorners())
	require.NoError(t, err)

	planes := h.Planes()
	require.Len(t, planes, 12)

	for idx, tc := range []struct {
		p      Vector3
		inside bool
	}{
		{Vector3{0.5, 0.5, 0.5}, true},
		{Vector3{0, 0.5, 0.5}, true},
		{Vector3{1, 1, 1}, true},
		{Vector3{1.5, 0.5, 0.5}, false},
		{Vector3{-0.01, 0, 0}, false},
	} {
		t.Run(fmt.Sprintf("%d/%v", idx, tc.p), func(t *testing.T) {
			require.Equal(t, tc.inside, h.Contains(tc.p))
			require.Equal(t, tc.inside, IsPointInsidePlanes(planes, &tc.p, 1e-12))
		})
	}

	var corners []Vector3
	for _, p := range h.Vertices() {
		corners = append(corners, p)
	}
	for _, plane := range planes {
		require.True(t, AreVerticesBehindPlane(plane, corners, 1e-12))
	}
}

func TestFacesExposeCornersAndNormals(t *testing.T) {
	h, err := NewConvexHull(cubeCorners())
	require.NoError(t, err)

	axes := map[Vector3]int{}
	for face := range h.Faces() {
		require.NotEqual(t, face.Vertices[0], face.Vertices[1])
		require.NotEqual(t, face.Vertices[1], face.Vertices[2])
		require.NotEqual(t, face.Vertices[0], face.Vertices[2])
		require.InDelta(t, 1, face.Normal.Length(), 1e-12)
		axes[face.Normal]++
	}
	// Every cube side is split into two triangles with the same normal.
	require.Len(t, axes, 6)
	for normal, n := range axes {
		require.Equal(t, 2, n, "normal %v", normal)
	}
}

func TestInsertPointReportsFault(t *testing.T) {
	h, err := NewConvexHull(tetrahedron())
	require.NoError(t, err)

	for f := range h.Mesh().Faces() {
		h.Mesh().RemoveHalfEdge(f.Edge)
		break
	}

	added, err := h.InsertPoint(NewVector3(5, 5, 5))
	require.ErrorIs(t, err, ErrInvariant)
	require.False(t, added)
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	points := append(tetrahedron(), NewVector3(1, 1, 1), NewVector3(0.25, 0.25, 0.25))
	h, err := NewConvexHull(points, WithLogger(l))
	require.NoError(t, err)
	require.Equal(t, 1, h.Stats().Interior)

	out := buf.String()
	require.Contains(t, out, "point inserted")
	require.Contains(t, out, "point inside hull")
	require.Contains(t, out, "convex hull built")
}
