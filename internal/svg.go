package internal

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// This reads meshes drawn as SVG. It is not a general SVG reader. It looks at
// two kinds of elements, and ignores everything else:
//
//   <circle cx="..." cy="..."/>          a vertex, numbered in document order
//   <polygon points="x,y x,y x,y"/>      a triangle, numbered in document order
//
// Triangle corners are matched to vertices by exact coordinates. If the
// document has no circles, vertices are numbered in order of first appearance
// in the triangles instead.
//
// Coordinates are taken as is, so a mesh that is counterclockwise in the usual
// y-up sense looks clockwise in an SVG viewer, which has y pointing down.

func LoadSVG(r io.Reader) (*Mesh, error) {
	rootEl, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var points []Point
	ids := make(map[Point]int)
	for _, circleEl := range rootEl.FindAll("circle") {
		x, err := parseCoordinate(circleEl.Attributes["cx"])
		if err != nil {
			return nil, errors.Wrap(err, "circle cx")
		}
		y, err := parseCoordinate(circleEl.Attributes["cy"])
		if err != nil {
			return nil, errors.Wrap(err, "circle cy")
		}
		p := Point{X: x, Y: y}
		if _, ok := ids[p]; ok {
			return nil, errors.Errorf("duplicate vertex %v", p)
		}
		ids[p] = len(points)
		points = append(points, p)
	}
	fixedVertices := len(points) > 0

	polygonEls := rootEl.FindAll("polygon")
	triangles := make([][3]int, 0, len(polygonEls))
	for i, polygonEl := range polygonEls {
		corners, err := parsePoints(polygonEl.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
		if len(corners) != 3 {
			return nil, errors.Errorf("polygon %d has %d points, not 3", i, len(corners))
		}

		var tri [3]int
		for j, corner := range corners {
			id, ok := ids[corner]
			if !ok {
				if fixedVertices {
					return nil, errors.Errorf("polygon %d has corner %v, which is not a vertex", i, corner)
				}
				id = len(points)
				ids[corner] = id
				points = append(points, corner)
			}
			tri[j] = id
		}
		triangles = append(triangles, tri)
	}

	return FromTriangles(points, triangles)
}

func parsePoints(pointString string) ([]Point, error) {
	var points []Point
	for _, pair := range strings.Fields(pointString) {
		parts := strings.Split(pair, ",")
		if len(parts) != 2 {
			return nil, errors.Errorf("invalid point string %q", pair)
		}
		x, err := parseCoordinate(parts[0])
		if err != nil {
			return nil, err
		}
		y, err := parseCoordinate(parts[1])
		if err != nil {
			return nil, err
		}
		points = append(points, Point{X: x, Y: y})
	}
	return points, nil
}

func parseCoordinate(s string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid coordinate %q", s)
	}
	return value, nil
}
