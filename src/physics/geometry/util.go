package geometry

import (
	"github.com/ungerik/go3d/float64/vec3"
)

// Plane is an outward facing plane: points p with Normal·p + Offset > 0 lie
// in front of it.
type Plane struct {
	Normal Vector3
	Offset float64
}

func NewPlane(normal, point Vector3) Plane {
	return Plane{Normal: normal, Offset: -vec3.Dot(&normal, &point)}
}

func (p Plane) Distance(point *Vector3) float64 {
	return vec3.Dot(&p.Normal, point) + p.Offset
}

func IsPointInsidePlanes(planes []Plane, point *Vector3, margin float64) bool {
	for i := 0; i < len(planes); i++ {
		dist := planes[i].Distance(point) - margin
		if dist > 0 {
			return false
		}
	}
	return true
}

func AreVerticesBehindPlane(plane Plane, vertices []Vector3, margin float64) bool {
	for i := 0; i < len(vertices); i++ {
		dist := plane.Distance(&vertices[i]) - margin
		if dist > 0 {
			return false
		}
	}
	return true
}
