package braille

import (
	"fmt"
	"math"
)

// line walks Bresenham's algorithm from (x0, y0) to (x1, y1) and calls plot
// for every dot, endpoints included. Endpoints are normalized so the walk is
// direction-independent: a line and its reverse touch the same dots.
// Coordinates may lie anywhere; plot is expected to clip
func (c *Canvas) line(x0 int, y0 int, x1 int, y1 int, plot func(x int, y int)) {
	if x1 < x0 || (x1 == x0 && y1 < y0) {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawLine draws a line from (x0, y0) to (x1, y1) in dot coordinates using
// Bresenham's algorithm. Dots outside the canvas are clipped silently, so
// endpoints may lie anywhere, including fully off-canvas. A zero-length line
// sets exactly one dot
func (c *Canvas) DrawLine(x0 int, y0 int, x1 int, y1 int) {
	c.line(x0, y0, x1, y1, c.plot)
}

// DrawLineColor draws a line like DrawLine and additionally sets the color
// of every cell the line touches. Color is per cell, not per dot, so cells
// partially covered by the line take the color for all their dots
func (c *Canvas) DrawLineColor(x0 int, y0 int, x1 int, y1 int, color Color) {
	c.EnableColorSupport()
	c.line(x0, y0, x1, y1, func(x, y int) {
		if !c.inBounds(x, y) {
			return
		}
		c.setDot(x, y)
		c.colors[(y/4)*c.width+x/2] = color
	})
}

// DrawLineThick draws a line of the given thickness in dots. Returns
// ErrInvalidThickness if thickness is zero; thickness 1 is identical to
// DrawLine. Thicker lines are drawn as thickness parallel copies offset
// along the integer-approximated perpendicular of the line, centered on it.
// A zero-length thick line becomes a thickness x thickness filled square
// centered on the point
func (c *Canvas) DrawLineThick(x0 int, y0 int, x1 int, y1 int, thickness int) error {
	if thickness == 0 {
		return fmt.Errorf("line thickness 0: %w", ErrInvalidThickness)
	}
	if thickness == 1 {
		c.DrawLine(x0, y0, x1, y1)
		return nil
	}
	dx := x1 - x0
	dy := y1 - y0
	if dx == 0 && dy == 0 {
		for oy := 0; oy < thickness; oy += 1 {
			for ox := 0; ox < thickness; ox += 1 {
				c.plot(x0-thickness/2+ox, y0-thickness/2+oy)
			}
		}
		return nil
	}
	length := math.Sqrt(float64(dx*dx + dy*dy))
	px := int(math.Round(float64(-dy) / length))
	py := int(math.Round(float64(dx) / length))
	for i := 0; i < thickness; i += 1 {
		o := i - thickness/2
		c.DrawLine(x0+px*o, y0+py*o, x1+px*o, y1+py*o)
	}
	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
