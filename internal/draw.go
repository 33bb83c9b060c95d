package internal

import (
	"fmt"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/trilocate/dbg"
	"github.com/pkg/errors"
)

// Padding around the mesh so that points just outside the hull are visible
const dbgDrawPadding = 40

// Draw the mesh to a PNG for debugging, with the triangles a walk visited
// shaded by how the walk left them, and the query point in red. Triangles are
// labeled with their id and dbg name, so they can be matched up with a trace.
func (m *Mesh) DbgDraw(path string, scale float64, p Point, visits []Visit) error {
	bounds := m.Bounds().AddPoint(p)
	size := bounds.Size()
	width := int(scale*size.X) + dbgDrawPadding*2
	height := int(scale*size.Y) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-bounds.X.Lo, -bounds.Y.Lo)

	lastStep := make(map[int]Step)
	for _, v := range visits {
		lastStep[v.Triangle] = v.Step
	}

	for t := 0; t < m.NumTriangles(); t++ {
		m.dbgTracePath(c, t)
		if step, ok := lastStep[t]; ok {
			switch step {
			case Found:
				c.SetRGBA(0, 1, 0, 0.6)
			case Tiebreak:
				c.SetRGBA(1, 1, 0, 0.5)
			default:
				c.SetRGBA(0.3, 0.2, 1, 0.5)
			}
			c.Fill()
		} else {
			c.ClearPath()
		}
	}

	c.SetLineWidth(2)
	c.SetRGB(0.8, 0.8, 0.8)
	for t := 0; t < m.NumTriangles(); t++ {
		m.dbgTracePath(c, t)
		c.Stroke()
	}

	c.SetRGB(1, 1, 1)
	for t := 0; t < m.NumTriangles(); t++ {
		corners := m.TrianglePoints(t)
		centerX := (corners[0].X + corners[1].X + corners[2].X) / 3
		centerY := (corners[0].Y + corners[1].Y + corners[2].Y) / 3
		// Text has to be drawn in native coordinates, or it comes out upside down
		centerX, centerY = c.TransformPoint(centerX, centerY)
		c.Push()
		c.Identity()
		c.DrawStringAnchored(fmt.Sprintf("%d %s", t, dbg.Name(t)), centerX, centerY, 0.5, 0.5)
		c.Pop()
	}

	c.SetRGB(1, 0, 0)
	c.DrawCircle(p.X, p.Y, 4/scale)
	c.Fill()

	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	return nil
}

func (m *Mesh) dbgTracePath(c *gg.Context, t int) {
	corners := m.TrianglePoints(t)
	c.MoveTo(corners[0].X, corners[0].Y)
	c.LineTo(corners[1].X, corners[1].Y)
	c.LineTo(corners[2].X, corners[2].Y)
	c.ClosePath()
}

// Print a PNG to the terminal (iTerm only).
func DbgCat(path string) error {
	return imgcat.CatFile(path, os.Stdout)
}
