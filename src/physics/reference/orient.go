package reference

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/ungerik/go3d/float64/vec3"
)

// detErrorMultiplier bounds the rounding error of a float64 orientation
// determinant relative to the product of its edge lengths.
const detErrorMultiplier = 1e-13

func toR3(p vec3.T) r3.Vector {
	return r3.Vector{X: p[0], Y: p[1], Z: p[2]}
}

// orienter computes the sign of dot(cross(b-a, c-a), d-a). When every input
// coordinate is a small integer the float64 determinant is exact and is used
// directly; otherwise a filtered float result falls back to exact arithmetic.
type orienter struct {
	exact bool
}

func newOrienter(points []r3.Vector) orienter {
	return orienter{exact: smallIntegers(points)}
}

func (o orienter) sign(a, b, c, d r3.Vector) int {
	ab, ac, ad := b.Sub(a), c.Sub(a), d.Sub(a)
	det := ab.Cross(ac).Dot(ad)
	if o.exact {
		return signOf(det)
	}

	maxErr := detErrorMultiplier * ab.Norm() * ac.Norm() * ad.Norm()
	if det > maxErr {
		return 1
	}
	if det < -maxErr {
		return -1
	}
	return expensiveSign(a, b, c, d)
}

func expensiveSign(a, b, c, d r3.Vector) int {
	pa := r3.PreciseVectorFromVector(a)
	pab := r3.PreciseVectorFromVector(b).Sub(pa)
	pac := r3.PreciseVectorFromVector(c).Sub(pa)
	pad := r3.PreciseVectorFromVector(d).Sub(pa)
	return pab.Cross(pac).Dot(pad).Sign()
}

// collinear reports whether a, b and c lie on one line.
func (o orienter) collinear(a, b, c r3.Vector) bool {
	n := b.Sub(a).Cross(c.Sub(a))
	if o.exact {
		return n.X == 0 && n.Y == 0 && n.Z == 0
	}
	pa := r3.PreciseVectorFromVector(a)
	pn := r3.PreciseVectorFromVector(b).Sub(pa).Cross(r3.PreciseVectorFromVector(c).Sub(pa))
	return pn.IsZero()
}

// sign2D is the exact sign of the z component of (b-a) x (c-a), for points
// already projected to a coordinate plane.
func (o orienter) sign2D(a, b, c [2]float64) int {
	det := (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
	if o.exact {
		return signOf(det)
	}
	pa := r3.NewPreciseVector(a[0], a[1], 0)
	pb := r3.NewPreciseVector(b[0], b[1], 0).Sub(pa)
	pc := r3.NewPreciseVector(c[0], c[1], 0).Sub(pa)
	return pb.Cross(pc).Z.Sign()
}

func signOf(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func smallIntegers(points []r3.Vector) bool {
	const limit = 1 << 15
	for _, p := range points {
		for _, x := range []float64{p.X, p.Y, p.Z} {
			if x != math.Trunc(x) || math.Abs(x) > limit {
				return false
			}
		}
	}
	return true
}
