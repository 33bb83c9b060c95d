package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/osuushi/trilocate/advanced"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Command line point locator. Input on stdin should be newline separated points
// in the form "x y". For each point, the id of the containing triangle (or -1)
// is printed, along with whether the hull test agrees that it's inside.
//
// With --verify, no input is read. Instead, random points are sampled across
// the mesh's bounding box, and every answer is checked against a brute force
// scan of the triangles and the hull test.

var (
	app       = kingpin.New("trilocate", "Locate points in a triangle mesh.")
	meshPath  = app.Flag("mesh", "Mesh file (.svg, .json, .yaml or .yml).").Short('m').Envar("TRILOCATE_MESH").Required().ExistingFile()
	maxSteps  = app.Flag("max-steps", "Walk step limit. 0 picks one from the mesh size.").Envar("TRILOCATE_MAX_STEPS").Default("0").Int()
	trace     = app.Flag("trace", "Print every step of every walk.").Short('t').Envar("TRILOCATE_TRACE").Bool()
	drawPath  = app.Flag("draw", "Draw each walk to this PNG file.").Envar("TRILOCATE_DRAW").String()
	drawScale = app.Flag("scale", "Pixels per mesh unit when drawing.").Envar("TRILOCATE_SCALE").Default("2").Float64()
	catImage  = app.Flag("imgcat", "Print drawings to the terminal (iTerm only).").Envar("TRILOCATE_IMGCAT").Bool()
	verify    = app.Flag("verify", "Check this many random samples instead of reading stdin.").Envar("TRILOCATE_VERIFY").Default("0").Int()
	seed      = app.Flag("seed", "Random seed for --verify. 0 picks one.").Envar("TRILOCATE_SEED").Default("0").Int64()
	workers   = app.Flag("workers", "Concurrent walks for --verify. 0 means GOMAXPROCS.").Envar("TRILOCATE_WORKERS").Default("0").Int()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	mesh, err := loadMesh(*meshPath)
	if err != nil {
		log.Fatalf("Could not load mesh %q: %v", *meshPath, err)
	}
	log.Printf("Loaded %d vertices, %d triangles, %d hull vertices", mesh.NumVertices(), mesh.NumTriangles(), len(mesh.Hull))

	walker := advanced.Walker{MaxSteps: *maxSteps}
	if *verify > 0 {
		err = runVerify(context.Background(), mesh, walker, *verify)
	} else {
		err = runQueries(mesh, walker, os.Stdin, os.Stdout)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func loadMesh(path string) (*advanced.Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var mesh *advanced.Mesh
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".svg":
		mesh, err = advanced.LoadSVG(file)
	case ".json", ".yaml", ".yml":
		mesh, err = advanced.LoadDocument(file)
	default:
		return nil, errors.Errorf("unknown mesh format %q", ext)
	}
	if err != nil {
		return nil, err
	}
	return mesh, mesh.Validate()
}

func runQueries(mesh *advanced.Mesh, walker advanced.Walker, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		p, err := parsePoint(text)
		if err != nil {
			return errors.Wrapf(err, "line %d", line)
		}

		var visits []advanced.Visit
		walker.Trace = func(v advanced.Visit) {
			visits = append(visits, v)
			if *trace {
				fmt.Fprintln(out, "  "+advanced.FormatVisit(v))
			}
		}
		triangle, err := walker.Locate(mesh, p)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%g %g\t%d\tinside=%t\n", p.X, p.Y, triangle, advanced.IsInside(mesh, p))

		if *drawPath != "" {
			if err := mesh.DbgDraw(*drawPath, *drawScale, p, visits); err != nil {
				return err
			}
			if *catImage {
				catDrawing(*drawPath)
			}
		}
	}
	return scanner.Err()
}

// Print a drawing inline in the terminal. Failing to is not worth stopping the
// queries for.
func catDrawing(path string) {
	if err := advanced.DbgCat(path); err != nil {
		log.Printf("Could not print %s: %v", path, err)
	}
}

func parsePoint(line string) (advanced.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return advanced.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrap(err, "x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrap(err, "y")
	}
	return advanced.Point{X: x, Y: y}, nil
}

// Sample the bounding box (padded by 10% so that plenty of samples land outside
// the hull), snapping every other sample to whole numbers so that vertices and
// axis aligned edges actually get hit.
func runVerify(ctx context.Context, mesh *advanced.Mesh, walker advanced.Walker, samples int) error {
	if *seed == 0 {
		*seed = rand.Int63()
	}
	log.Printf("seed: %d", *seed)
	rng := rand.New(rand.NewSource(*seed))

	bounds := mesh.Bounds()
	bounds = bounds.ExpandedByMargin(0.1 * math.Max(bounds.Size().X, bounds.Size().Y))
	points := make([]advanced.Point, samples)
	for i := range points {
		x := bounds.X.Lo + rng.Float64()*bounds.X.Length()
		y := bounds.Y.Lo + rng.Float64()*bounds.Y.Length()
		if i%2 == 1 {
			x, y = math.Round(x), math.Round(y)
		}
		points[i] = advanced.Point{X: x, Y: y}
	}

	batch := advanced.Batch{Walker: walker, Workers: *workers}
	results, err := batch.Locate(ctx, mesh, points)
	if err != nil {
		return err
	}

	var outside, failures int
	for i, triangle := range results {
		p := points[i]
		inside := advanced.IsInside(mesh, p)
		switch {
		case triangle == advanced.Outside:
			outside++
			if inside || advanced.BruteForceLocate(mesh, p) != advanced.Outside {
				failures++
				log.Printf("%v not found, but is in the mesh", p)
			}
		case !advanced.TriangleContains(mesh, triangle, p):
			failures++
			log.Printf("%v found in %d, but is not inside it", p, triangle)
		case !inside:
			failures++
			log.Printf("%v found in %d, but hull test says outside", p, triangle)
		}
	}

	log.Printf("%d samples, %d outside, %d failures", samples, outside, failures)
	if failures > 0 {
		return errors.Errorf("%d of %d samples disagree", failures, samples)
	}
	return nil
}
