// Package pointcloud generates input point sets for hull construction and
// provides the preprocessing steps the incremental builder expects callers
// to run: deduplication, shuffling and moving a non-degenerate tetrahedron to
// the front.
package pointcloud

import (
	"encoding/binary"
	"math"
	"math/rand/v2"

	"github.com/fogleman/ease"
	"github.com/furui/fastnoiselite-go"
	"github.com/ungerik/go3d/float64/vec3"
)

func RandWithSeed(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// ChaChaWithSeed returns a generator whose stream does not depend on the
// PCG implementation, for inputs that must stay fixed across releases.
func ChaChaWithSeed(seed uint64) *rand.Rand {
	var buf [32]byte
	binary.LittleEndian.AppendUint64(buf[:0], seed)
	return rand.New(rand.NewChaCha8(buf))
}

// Grid returns n points with integer coordinates drawn uniformly from
// [min, max]. Duplicates are possible.
func Grid(rng *rand.Rand, n int, min, max int) []vec3.T {
	points := make([]vec3.T, n)
	for i := range points {
		for axis := 0; axis < 3; axis++ {
			points[i][axis] = float64(rng.IntN(max-min+1) + min)
		}
	}
	return points
}

// Uniform returns n points drawn uniformly from the cube [min, max)^3.
func Uniform(rng *rand.Rand, n int, min, max float64) []vec3.T {
	points := make([]vec3.T, n)
	for i := range points {
		for axis := 0; axis < 3; axis++ {
			points[i][axis] = rng.Float64()*(max-min) + min
		}
	}
	return points
}

// Cube returns the eight corners of the axis aligned cube [0, size]^3.
func Cube(size float64) []vec3.T {
	points := make([]vec3.T, 0, 8)
	for i := 0; i < 8; i++ {
		points = append(points, vec3.T{
			float64(i&1) * size,
			float64(i>>1&1) * size,
			float64(i>>2&1) * size,
		})
	}
	return points
}

// Sphere returns n points on the sphere of the given radius around the
// origin. Every point is a hull vertex.
func Sphere(rng *rand.Rand, n int, radius float64) []vec3.T {
	points := make([]vec3.T, n)
	for i := range points {
		dir := direction(rng)
		points[i] = dir.Scaled(radius)
	}
	return points
}

// Ball returns n points inside the ball of the given radius. Distances from
// the center follow an out-cubic curve, which packs points toward the
// surface and keeps the hull large relative to n.
func Ball(rng *rand.Rand, n int, radius float64) []vec3.T {
	points := make([]vec3.T, n)
	for i := range points {
		dir := direction(rng)
		points[i] = dir.Scaled(radius * ease.OutCubic(rng.Float64()))
	}
	return points
}

// NoisySphere returns n points on a sphere whose radius is displaced by
// value noise sampled at each direction, giving a lumpy convex-ish shell
// with many points just inside the hull.
func NoisySphere(rng *rand.Rand, n int, radius, amplitude float64) []vec3.T {
	noise := fastnoiselite.NewNoise()
	noise.SetNoiseType(fastnoiselite.NoiseTypeValueCubic)
	noise.Seed = rng.Int32()
	noise.Frequency = 1.5

	type F = fastnoiselite.FNLfloat

	points := make([]vec3.T, n)
	for i := range points {
		dir := direction(rng)
		value := float64(noise.GetNoise3D(F(dir[0]), F(dir[1]), F(dir[2])))
		points[i] = dir.Scaled(radius * (1 + amplitude*value))
	}
	return points
}

// direction returns a uniformly distributed unit vector.
func direction(rng *rand.Rand) vec3.T {
	z := 2*rng.Float64() - 1
	phi := 2 * math.Pi * rng.Float64()
	r := math.Sqrt(1 - z*z)
	return vec3.T{r * math.Cos(phi), r * math.Sin(phi), z}
}
