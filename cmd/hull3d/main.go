// Command hull3d builds the 3D convex hull of a point set, optionally checks
// it against the brute-force reference and writes it as a Wavefront OBJ.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/pkg/profile"

	"hull3d/src/physics/geometry"
	"hull3d/src/physics/pointcloud"
	"hull3d/src/physics/reference"
)

func main() {
	var (
		in        = flag.String("in", "", "input file with one \"x y z\" point per line, - for stdin")
		shape     = flag.String("shape", "grid", "generated input when -in is empty: grid, uniform, ball, sphere, noisy or cube")
		n         = flag.Int("n", 100, "number of generated points")
		seed      = flag.Uint64("seed", 1, "random seed for generated points and shuffling")
		output    = flag.String("obj", "", "write the hull as a Wavefront OBJ file")
		verify    = flag.Bool("verify", false, "cross-validate the hull vertices against the brute-force reference")
		cpu       = flag.Bool("profile", false, "write a CPU profile of the construction to the working directory")
		verbose   = flag.Bool("v", false, "log every insertion to stderr")
		noShuffle = flag.Bool("no-shuffle", false, "insert points in input order")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	geometry.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	rng := pointcloud.RandWithSeed(*seed)

	var points []geometry.Vector3
	var err error
	if *in != "" {
		points, err = readPoints(*in)
		if err != nil {
			log.Fatalf("Failed to read points: %v", err)
		}
	} else {
		points, err = generate(rng, *shape, *n)
		if err != nil {
			log.Fatalf("Failed to generate points: %v", err)
		}
	}

	points = pointcloud.Dedupe(points)
	if !*noShuffle {
		pointcloud.Shuffle(rng, points)
	}
	if err := pointcloud.ExtremesToFront(points); err != nil {
		log.Fatalf("Failed to seed hull: %v", err)
	}

	var stop func()
	if *cpu {
		stop = profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop
	}
	hull, err := geometry.NewConvexHull(points)
	if stop != nil {
		stop()
	}
	if err != nil {
		log.Fatalf("Failed to build hull: %v", err)
	}

	stats := hull.Stats()
	log.Printf("%d points: %d vertices, %d edges, %d faces, %d interior\n",
		stats.Points, stats.Vertices, stats.HalfEdges/2, stats.Faces, stats.Interior)

	if err := hull.CheckEdgeTwins(); err != nil {
		log.Fatalf("Hull is inconsistent: %v", err)
	}

	if *verify {
		ref := reference.Compute(hull.Points())
		mine := hull.VertexIndices()
		verdict := ref.Compare(mine)
		log.Printf("This: %d, reference: %d, %s\n", len(mine), len(ref.Extreme), verdict)
		if verdict == reference.Mismatch {
			os.Exit(1)
		}
	}

	if *output != "" {
		if err := writeOBJ(*output, hull); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Hull saved to %s\n", *output)
	}
}
