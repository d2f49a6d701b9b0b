// Package reference computes convex hull vertex sets by brute force with
// exact orientation predicates. It is slow (quartic in the worst case) and
// meant for cross-validating the incremental hull on small inputs.
package reference

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/ungerik/go3d/float64/vec3"
)

// Result describes the hull of a point set by input index.
type Result struct {
	// Extreme lists the points that are vertices of the minimal hull.
	Extreme []int
	// Boundary lists every point lying on the hull surface, extreme or not.
	Boundary []int
}

// ExtremePoints returns the sorted indices of the hull vertices of points.
func ExtremePoints(points []vec3.T) []int {
	return Compute(points).Extreme
}

// Compute enumerates the supporting planes spanned by point triples. The
// points on each supporting plane form a facet, and the strict 2D hull of
// that facet contributes the extreme points.
func Compute(points []vec3.T) Result {
	pts := make([]r3.Vector, len(points))
	for i, p := range points {
		pts[i] = toR3(p)
	}
	o := newOrienter(pts)

	extreme := make([]bool, len(pts))
	boundary := make([]bool, len(pts))
	seen := make(map[string]struct{})

	n := len(pts)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				if o.collinear(pts[i], pts[j], pts[k]) {
					continue
				}
				facet, ok := supportingFacet(o, pts, i, j, k)
				if !ok {
					continue
				}
				key := facetKey(facet)
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}

				for _, idx := range facet {
					boundary[idx] = true
				}
				normal := pts[j].Sub(pts[i]).Cross(pts[k].Sub(pts[i]))
				for _, idx := range facetHull(o, pts, facet, normal) {
					extreme[idx] = true
				}
			}
		}
	}

	return Result{Extreme: indicesOf(extreme), Boundary: indicesOf(boundary)}
}

// supportingFacet returns every point on the plane through i, j and k when
// no point lies strictly on each side of it.
func supportingFacet(o orienter, pts []r3.Vector, i, j, k int) ([]int, bool) {
	above, below := false, false
	facet := []int{i, j, k}
	for l := range pts {
		if l == i || l == j || l == k {
			continue
		}
		switch o.sign(pts[i], pts[j], pts[k], pts[l]) {
		case 1:
			above = true
		case -1:
			below = true
		default:
			facet = append(facet, l)
		}
		if above && below {
			return nil, false
		}
	}
	slices.Sort(facet)
	return facet, true
}

func facetKey(facet []int) string {
	var sb strings.Builder
	for _, idx := range facet {
		fmt.Fprintf(&sb, "%d,", idx)
	}
	return sb.String()
}

// facetHull projects a planar point set onto the coordinate plane most
// parallel to it and returns the corners of its strict 2D convex hull.
func facetHull(o orienter, pts []r3.Vector, facet []int, normal r3.Vector) []int {
	drop := normal.LargestComponent()

	type projected struct {
		idx int
		p   [2]float64
	}
	proj := make([]projected, len(facet))
	for x, idx := range facet {
		p := pts[idx]
		switch drop {
		case r3.XAxis:
			proj[x] = projected{idx, [2]float64{p.Y, p.Z}}
		case r3.YAxis:
			proj[x] = projected{idx, [2]float64{p.Z, p.X}}
		default:
			proj[x] = projected{idx, [2]float64{p.X, p.Y}}
		}
	}
	slices.SortFunc(proj, func(l, r projected) int {
		if c := cmp.Compare(l.p[0], r.p[0]); c != 0 {
			return c
		}
		return cmp.Compare(l.p[1], r.p[1])
	})

	// Andrew's monotone chain, dropping collinear points.
	hull := make([]projected, 0, 2*len(proj))
	for pass := 0; pass < 2; pass++ {
		start := len(hull)
		for _, q := range proj {
			for len(hull) >= start+2 && o.sign2D(hull[len(hull)-2].p, hull[len(hull)-1].p, q.p) <= 0 {
				hull = hull[:len(hull)-1]
			}
			hull = append(hull, q)
		}
		hull = hull[:len(hull)-1]
		slices.Reverse(proj)
	}

	out := make([]int, len(hull))
	for x, q := range hull {
		out[x] = q.idx
	}
	return out
}

func indicesOf(marks []bool) []int {
	var out []int
	for i, ok := range marks {
		if ok {
			out = append(out, i)
		}
	}
	return out
}
