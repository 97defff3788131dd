package braille

import (
	"fmt"
	"math"
)

// DrawCircle draws a circle outline of the given radius centered at
// (cx, cy), using the midpoint circle algorithm with 8-way symmetry. Every
// dot is clipped individually, so the circle may lie partly or fully off the
// canvas. Radius 0 sets the single dot at the center
func (c *Canvas) DrawCircle(cx int, cy int, radius int) {
	x := radius
	y := 0
	err := 1 - radius
	for x >= y {
		c.plot(cx+x, cy+y)
		c.plot(cx-x, cy+y)
		c.plot(cx+x, cy-y)
		c.plot(cx-x, cy-y)
		c.plot(cx+y, cy+x)
		c.plot(cx-y, cy+x)
		c.plot(cx+y, cy-x)
		c.plot(cx-y, cy-x)
		y += 1
		if err < 0 {
			err += 2*y + 1
		} else {
			x -= 1
			err += 2*(y-x) + 1
		}
	}
}

// DrawCircleFilled draws a solid circle of the given radius centered at
// (cx, cy), one horizontal span per dot row. Radius 0 sets the single center
// dot
func (c *Canvas) DrawCircleFilled(cx int, cy int, radius int) {
	for dy := -radius; dy <= radius; dy += 1 {
		xOff := int(math.Round(math.Sqrt(float64(radius*radius - dy*dy))))
		c.DrawLine(cx-xOff, cy+dy, cx+xOff, cy+dy)
	}
}

// DrawCircleThick draws a circle outline of the given thickness by stacking
// concentric outlines with radii radius through radius+thickness-1, so the
// ring grows outward only. Returns ErrInvalidThickness if thickness is zero
func (c *Canvas) DrawCircleThick(cx int, cy int, radius int, thickness int) error {
	if thickness == 0 {
		return fmt.Errorf("circle thickness 0: %w", ErrInvalidThickness)
	}
	for r := radius; r < radius+thickness; r += 1 {
		c.DrawCircle(cx, cy, r)
	}
	return nil
}
