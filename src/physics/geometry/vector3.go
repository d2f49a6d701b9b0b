package geometry

import (
	"github.com/ungerik/go3d/float64/vec3"
)

// Vector3 is the coordinate type used throughout the hull.
type Vector3 = vec3.T

func NewVector3(x, y, z float64) Vector3 {
	return Vector3{x, y, z}
}

// planeOf returns the unnormalized normal of the loop (a, b, c): the cross
// product of its first two directed edges. It points outward when the loop
// winds counter-clockwise seen from outside.
func planeOf(a, b, c *Vector3) Vector3 {
	ab := vec3.Sub(b, a)
	bc := vec3.Sub(c, b)
	return vec3.Cross(&ab, &bc)
}

// sideOf is positive when p lies strictly in front of the plane through
// origin with normal n, negative behind it and zero when coplanar.
func sideOf(n, origin, p *Vector3) float64 {
	d := vec3.Sub(p, origin)
	return vec3.Dot(n, &d)
}

// orientation is the seed determinant dot(cross(b-a, c-b), a-d). It is zero
// exactly when the four points are coplanar.
func orientation(a, b, c, d *Vector3) float64 {
	n := planeOf(a, b, c)
	ad := vec3.Sub(a, d)
	return vec3.Dot(&n, &ad)
}
