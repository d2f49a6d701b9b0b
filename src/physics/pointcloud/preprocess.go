package pointcloud

import (
	"errors"
	"math"
	"math/rand/v2"

	"github.com/ungerik/go3d/float64/vec3"
)

// ErrAllCoplanar is returned when a point set spans no tetrahedron.
var ErrAllCoplanar = errors.New("pointcloud: points are coplanar")

// Dedupe returns points without exact duplicates, keeping first occurrences
// in their original order.
func Dedupe(points []vec3.T) []vec3.T {
	seen := make(map[vec3.T]struct{}, len(points))
	out := make([]vec3.T, 0, len(points))
	for _, p := range points {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// Shuffle permutes points in place.
func Shuffle(rng *rand.Rand, points []vec3.T) {
	rng.Shuffle(len(points), func(i, j int) {
		points[i], points[j] = points[j], points[i]
	})
}

// ExtremesToFront reorders points in place so the first four span a
// tetrahedron of large volume: the lowest point, the point farthest from it,
// the point farthest from the line through both and the point farthest from
// their plane. Beyond making the seed valid, a large seed hides more of the
// remaining points and speeds up construction.
func ExtremesToFront(points []vec3.T) error {
	if len(points) < 4 {
		return ErrAllCoplanar
	}

	first := 0
	for i, p := range points {
		if less(&p, &points[first]) {
			first = i
		}
	}
	swap(points, 0, first)
	a := points[0]

	second := argmax(points, 1, func(p *vec3.T) float64 {
		return vec3.SquareDistance(p, &a)
	})
	swap(points, 1, second)
	ab := vec3.Sub(&points[1], &a)

	third := argmax(points, 2, func(p *vec3.T) float64 {
		ap := vec3.Sub(p, &a)
		n := vec3.Cross(&ab, &ap)
		return n.LengthSqr()
	})
	swap(points, 2, third)
	ac := vec3.Sub(&points[2], &a)
	normal := vec3.Cross(&ab, &ac)

	fourth := argmax(points, 3, func(p *vec3.T) float64 {
		ap := vec3.Sub(p, &a)
		return math.Abs(vec3.Dot(&normal, &ap))
	})
	swap(points, 3, fourth)

	ad := vec3.Sub(&points[3], &a)
	if vec3.Dot(&normal, &ad) == 0 {
		return ErrAllCoplanar
	}
	return nil
}

func less(p, q *vec3.T) bool {
	for axis := 0; axis < 3; axis++ {
		if p[axis] != q[axis] {
			return p[axis] < q[axis]
		}
	}
	return false
}

func argmax(points []vec3.T, from int, score func(*vec3.T) float64) int {
	best, bestScore := from, -1.0
	for i := from; i < len(points); i++ {
		if s := score(&points[i]); s > bestScore {
			best, bestScore = i, s
		}
	}
	return best
}

func swap(points []vec3.T, i, j int) {
	points[i], points[j] = points[j], points[i]
}
