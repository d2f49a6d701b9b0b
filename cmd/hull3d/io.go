package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"hull3d/src/physics/geometry"
	"hull3d/src/physics/pointcloud"
)

func generate(rng *rand.Rand, shape string, n int) ([]geometry.Vector3, error) {
	switch shape {
	case "grid":
		return pointcloud.Grid(rng, n, -10, 10), nil
	case "uniform":
		return pointcloud.Uniform(rng, n, -1, 1), nil
	case "ball":
		return pointcloud.Ball(rng, n, 1), nil
	case "sphere":
		return pointcloud.Sphere(rng, n, 1), nil
	case "noisy":
		return pointcloud.NoisySphere(rng, n, 1, 0.2), nil
	case "cube":
		return pointcloud.Cube(1), nil
	default:
		return nil, fmt.Errorf("unknown shape %q", shape)
	}
}

func readPoints(path string) ([]geometry.Vector3, error) {
	if path == "-" {
		return parsePoints(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parsePoints(f)
}

// parsePoints reads whitespace or comma separated x y z triples, one per
// line. Blank lines and lines starting with # are skipped.
func parsePoints(r io.Reader) ([]geometry.Vector3, error) {
	var points []geometry.Vector3
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: want 3 coordinates, got %d", line, len(fields))
		}
		var p geometry.Vector3
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			p[i] = v
		}
		points = append(points, p)
	}
	return points, scanner.Err()
}

func writeOBJ(path string, hull *geometry.ConvexHull) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return encodeOBJ(f, hull)
}

// encodeOBJ writes vertices in identifier order followed by one
// counter-clockwise triangle per face.
func encodeOBJ(w io.Writer, hull *geometry.ConvexHull) error {
	bw := bufio.NewWriter(w)
	index := make(map[geometry.VertexID]int)
	for id, p := range hull.Vertices() {
		index[id] = len(index) + 1
		fmt.Fprintf(bw, "v %g %g %g\n", p[0], p[1], p[2])
	}
	for face := range hull.Faces() {
		fmt.Fprintf(bw, "vn %g %g %g\n", face.Normal[0], face.Normal[1], face.Normal[2])
	}
	n := 0
	for face := range hull.Faces() {
		n++
		a, b, c := index[face.Vertices[0]], index[face.Vertices[1]], index[face.Vertices[2]]
		fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, n, b, n, c, n)
	}
	return bw.Flush()
}
