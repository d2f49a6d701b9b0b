package geometry

import (
	"math"
)

const (
	Infinity = math.MaxFloat64
	Epsilon  = 1.19209e-07 // defined by clang for x86
)

const (
	NoVertex VertexID = -1
	NoEdge   EdgeID   = -1
	NoFace   FaceID   = -1
)

// seedSize is the number of points consumed by the initial tetrahedron.
const seedSize = 4

const (
	kindVertex   = "vertex"
	kindHalfEdge = "half-edge"
	kindFace     = "face"
)
