package braille

import (
	"fmt"
	"math"

	"golang.org/x/exp/slices"
)

// Point is a vertex in dot coordinates
type Point struct {
	X int
	Y int
}

// DrawRectangle draws a rectangle outline with its top-left corner at
// (x, y). Width and height are in dots and must both be positive; a zero
// extent returns ErrInvalidDimensions. The edges cover
// [x, x+width-1] x [y, y+height-1]. Corners are drawn by two edges each,
// which is harmless since dots are boolean
func (c *Canvas) DrawRectangle(x int, y int, width int, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("rectangle %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	x1 := x + width - 1
	y1 := y + height - 1
	c.DrawLine(x, y, x1, y)
	c.DrawLine(x, y1, x1, y1)
	c.DrawLine(x, y, x, y1)
	c.DrawLine(x1, y, x1, y1)
	return nil
}

// DrawRectangleFilled draws a solid rectangle, one horizontal span per dot
// row. Returns ErrInvalidDimensions if width or height is zero
func (c *Canvas) DrawRectangleFilled(x int, y int, width int, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("rectangle %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	for row := y; row < y+height; row += 1 {
		c.DrawLine(x, row, x+width-1, row)
	}
	return nil
}

// DrawRectangleThick draws a rectangle outline of the given thickness as
// concentric outlines shrinking inward one dot per side per step. Returns
// ErrInvalidThickness if thickness is zero and ErrInvalidDimensions if the
// thickness exceeds half the width or height (floor division, so equality
// passes for odd extents)
func (c *Canvas) DrawRectangleThick(x int, y int, width int, height int, thickness int) error {
	if thickness == 0 {
		return fmt.Errorf("rectangle thickness 0: %w", ErrInvalidThickness)
	}
	if thickness > width/2 || thickness > height/2 {
		return fmt.Errorf("thickness %d on %dx%d rectangle: %w", thickness, width, height, ErrInvalidDimensions)
	}
	for i := 0; i < thickness; i += 1 {
		// width and height stay positive: thickness <= width/2 means
		// width-2i >= 2 at i = thickness-1
		c.DrawRectangle(x+i, y+i, width-2*i, height-2*i)
	}
	return nil
}

// DrawPolygon draws a polygon outline through the vertices in order,
// closing the shape from the last vertex back to the first. Returns
// ErrInvalidPolygon for fewer than three vertices
func (c *Canvas) DrawPolygon(vertices []Point) error {
	if len(vertices) < 3 {
		return fmt.Errorf("polygon with %d vertices: %w", len(vertices), ErrInvalidPolygon)
	}
	for i, v := range vertices {
		next := vertices[(i+1)%len(vertices)]
		c.DrawLine(v.X, v.Y, next.X, next.Y)
	}
	return nil
}

// polyEdge is a non-horizontal polygon edge oriented downward (y0 < y1)
type polyEdge struct {
	x0 int
	y0 int
	x1 int
	y1 int
}

// xAt returns the edge's x intercept at scanline y, rounded to nearest
func (e polyEdge) xAt(y int) int {
	t := float64(y-e.y0) / float64(e.y1-e.y0)
	return int(math.Round(float64(e.x0) + t*float64(e.x1-e.x0)))
}

// DrawPolygonFilled fills a polygon using scanline rasterization with the
// even-odd rule. Returns ErrInvalidPolygon for fewer than three vertices.
// Horizontal edges are skipped and each edge spans the half-open interval
// [y0, y1) so that a scanline through a shared vertex counts the vertex
// once, not twice. Self-intersecting and non-convex polygons rasterize
// according to the even-odd interpretation
func (c *Canvas) DrawPolygonFilled(vertices []Point) error {
	if len(vertices) < 3 {
		return fmt.Errorf("polygon with %d vertices: %w", len(vertices), ErrInvalidPolygon)
	}
	edges := make([]polyEdge, 0, len(vertices))
	minY := vertices[0].Y
	maxY := vertices[0].Y
	for i, v := range vertices {
		next := vertices[(i+1)%len(vertices)]
		if v.Y < minY {
			minY = v.Y
		}
		if v.Y > maxY {
			maxY = v.Y
		}
		if v.Y == next.Y {
			continue
		}
		e := polyEdge{v.X, v.Y, next.X, next.Y}
		if e.y0 > e.y1 {
			e.x0, e.y0, e.x1, e.y1 = e.x1, e.y1, e.x0, e.y0
		}
		edges = append(edges, e)
	}
	xs := make([]int, 0, len(edges))
	for y := minY; y <= maxY; y += 1 {
		xs = xs[:0]
		for _, e := range edges {
			if y >= e.y0 && y < e.y1 {
				xs = append(xs, e.xAt(y))
			}
		}
		slices.Sort(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			c.DrawLine(xs[i], y, xs[i+1], y)
		}
	}
	return nil
}
