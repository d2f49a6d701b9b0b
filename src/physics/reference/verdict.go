package reference

import (
	"slices"
)

type Verdict int

const (
	// Equivalent means the candidate vertex set equals the extreme points.
	Equivalent Verdict = iota
	// Superset means the candidate holds every extreme point plus extra
	// points that lie on the hull surface without being corners of it.
	Superset
	// Mismatch means an extreme point is missing or a candidate vertex is
	// off the hull surface.
	Mismatch
)

func (v Verdict) String() string {
	switch v {
	case Equivalent:
		return "EQUIVALENT"
	case Superset:
		return "SUPERSET"
	default:
		return "ERROR"
	}
}

// Compare classifies a hull's sorted vertex indices against the reference.
func (r Result) Compare(vertices []int) Verdict {
	if slices.Equal(vertices, r.Extreme) {
		return Equivalent
	}
	for _, idx := range r.Extreme {
		if _, ok := slices.BinarySearch(vertices, idx); !ok {
			return Mismatch
		}
	}
	for _, idx := range vertices {
		if _, ok := slices.BinarySearch(r.Boundary, idx); !ok {
			return Mismatch
		}
	}
	return Superset
}
