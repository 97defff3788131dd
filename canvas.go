package braille

import (
	"fmt"
	"strings"
)

// Canvas is a grid of braille cells. It owns a cell array of width*height
// bytes plus overrides, and, once color support is enabled, a parallel
// per-cell color array of the same length. The dot grid addressable by the
// rasterizers is twice as wide and four times as tall as the cell grid.
//
// A Canvas has no internal synchronization; concurrent use is the caller's
// responsibility. Every operation completes synchronously before returning,
// so no partially drawn state is ever observable
type Canvas struct {
	width  int
	height int
	cells  []cell
	colors []Color
}

// New creates a canvas of width x height cells, all dots off. Returns
// ErrInvalidDimensions if either dimension is zero
func New(width int, height int) (*Canvas, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("canvas %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	log.Debug("new canvas", "width", width, "height", height)
	return &Canvas{
		width:  width,
		height: height,
		cells:  make([]cell, width*height),
	}, nil
}

// Width returns the canvas width in cells
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in cells
func (c *Canvas) Height() int {
	return c.height
}

// DotWidth returns the canvas width in dots
func (c *Canvas) DotWidth() int {
	return c.width * 2
}

// DotHeight returns the canvas height in dots
func (c *Canvas) DotHeight() int {
	return c.height * 4
}

// Resize reallocates the canvas to width x height cells. All dots, overrides,
// and colors are lost. Color support stays enabled if it was. Returns
// ErrInvalidDimensions if either dimension is zero, in which case the canvas
// is unchanged
func (c *Canvas) Resize(width int, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("resize to %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	log.Debug("resize canvas", "width", width, "height", height)
	c.width = width
	c.height = height
	c.cells = make([]cell, width*height)
	if c.colors != nil {
		c.colors = make([]Color, width*height)
	}
	return nil
}

// Clear turns every dot off and removes all override characters. Cell colors
// are preserved
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{}
	}
}

// inBounds reports whether the dot address is on the canvas
func (c *Canvas) inBounds(x int, y int) bool {
	return x >= 0 && x < c.width*2 && y >= 0 && y < c.height*4
}

// setDot turns the dot on without bounds checking
func (c *Canvas) setDot(x int, y int) {
	c.cells[(y/4)*c.width+x/2].dots |= dotMask[x%2][y%4]
}

// plot turns the dot on, silently dropping addresses off the canvas. All
// rasterizers clip through this
func (c *Canvas) plot(x int, y int) {
	if !c.inBounds(x, y) {
		return
	}
	c.setDot(x, y)
}

// SetDot turns on the dot at (x, y) in dot coordinates. Returns
// ErrOutOfBounds if the address lies outside the canvas
func (c *Canvas) SetDot(x int, y int) error {
	if !c.inBounds(x, y) {
		return fmt.Errorf("dot (%d,%d) on %dx%d dot grid: %w", x, y, c.width*2, c.height*4, ErrOutOfBounds)
	}
	c.setDot(x, y)
	return nil
}

// ClearDot turns off the dot at (x, y)
func (c *Canvas) ClearDot(x int, y int) error {
	if !c.inBounds(x, y) {
		return fmt.Errorf("dot (%d,%d) on %dx%d dot grid: %w", x, y, c.width*2, c.height*4, ErrOutOfBounds)
	}
	c.cells[(y/4)*c.width+x/2].dots &^= dotMask[x%2][y%4]
	return nil
}

// ToggleDot flips the dot at (x, y)
func (c *Canvas) ToggleDot(x int, y int) error {
	if !c.inBounds(x, y) {
		return fmt.Errorf("dot (%d,%d) on %dx%d dot grid: %w", x, y, c.width*2, c.height*4, ErrOutOfBounds)
	}
	c.cells[(y/4)*c.width+x/2].dots ^= dotMask[x%2][y%4]
	return nil
}

// GetDot reports whether the dot at (x, y) is on
func (c *Canvas) GetDot(x int, y int) (bool, error) {
	if !c.inBounds(x, y) {
		return false, fmt.Errorf("dot (%d,%d) on %dx%d dot grid: %w", x, y, c.width*2, c.height*4, ErrOutOfBounds)
	}
	return c.cells[(y/4)*c.width+x/2].dots&dotMask[x%2][y%4] != 0, nil
}

// EnableColorSupport allocates the per-cell color array. Calling it again is
// a no-op. Until enabled, color setters still work but allocate on first use;
// enabling up front avoids that allocation happening mid-draw
func (c *Canvas) EnableColorSupport() {
	if c.colors != nil {
		return
	}
	c.colors = make([]Color, c.width*c.height)
}

// SetCellColor sets the color of the cell at (cx, cy). The color applies to
// the whole cell, independent of its dot state. The zero Color restores the
// terminal default
func (c *Canvas) SetCellColor(cx int, cy int, color Color) error {
	if cx < 0 || cx >= c.width || cy < 0 || cy >= c.height {
		return fmt.Errorf("cell (%d,%d) on %dx%d canvas: %w", cx, cy, c.width, c.height, ErrOutOfBounds)
	}
	c.EnableColorSupport()
	c.colors[cy*c.width+cx] = color
	return nil
}

// GetCellColor returns the color of the cell at (cx, cy). Without color
// support enabled every cell reports the default color
func (c *Canvas) GetCellColor(cx int, cy int) (Color, error) {
	if cx < 0 || cx >= c.width || cy < 0 || cy >= c.height {
		return 0, fmt.Errorf("cell (%d,%d) on %dx%d canvas: %w", cx, cy, c.width, c.height, ErrOutOfBounds)
	}
	if c.colors == nil {
		return 0, nil
	}
	return c.colors[cy*c.width+cx], nil
}

// RawPatterns returns a copy of the cell byte array, row-major. This is the
// only persisted representation of canvas state: overrides and colors are not
// included
func (c *Canvas) RawPatterns() []byte {
	raw := make([]byte, len(c.cells))
	for i, cl := range c.cells {
		raw[i] = cl.dots
	}
	return raw
}

// SetRawPatterns replaces the cell byte array. The length must equal
// width*height or ErrInvalidDimensions is returned and nothing changes.
// Override characters are cleared so that the restored bytes are
// authoritative for every cell. RawPatterns followed by SetRawPatterns on a
// same-size canvas reproduces the dot state exactly
func (c *Canvas) SetRawPatterns(raw []byte) error {
	if len(raw) != c.width*c.height {
		return fmt.Errorf("raw patterns length %d, want %d: %w", len(raw), c.width*c.height, ErrInvalidDimensions)
	}
	for i := range c.cells {
		c.cells[i] = cell{dots: raw[i]}
	}
	return nil
}

// CellString returns the display string of the cell at (cx, cy): its
// override character when present, otherwise the braille pattern
// brailleBase + dots
func (c *Canvas) CellString(cx int, cy int) (string, error) {
	if cx < 0 || cx >= c.width || cy < 0 || cy >= c.height {
		return "", fmt.Errorf("cell (%d,%d) on %dx%d canvas: %w", cx, cy, c.width, c.height, ErrOutOfBounds)
	}
	return c.cells[cy*c.width+cx].String(), nil
}

// Rows renders the canvas as one string per cell row, for a terminal
// renderer to emit. Colors are not applied here; a renderer that wants them
// reads GetCellColor per cell instead of using Rows
func (c *Canvas) Rows() []string {
	rows := make([]string, c.height)
	var sb strings.Builder
	for y := 0; y < c.height; y += 1 {
		sb.Reset()
		for x := 0; x < c.width; x += 1 {
			sb.WriteString(c.cells[y*c.width+x].String())
		}
		rows[y] = sb.String()
	}
	return rows
}

// String renders the canvas as newline-joined rows
func (c *Canvas) String() string {
	return strings.Join(c.Rows(), "\n")
}

// Clone returns a deep copy of the canvas. Nothing is shared with the
// original, making clones suitable for double-buffering or differential
// rendering
func (c *Canvas) Clone() *Canvas {
	clone := &Canvas{
		width:  c.width,
		height: c.height,
		cells:  make([]cell, len(c.cells)),
	}
	copy(clone.cells, c.cells)
	if c.colors != nil {
		clone.colors = make([]Color, len(c.colors))
		copy(clone.colors, c.colors)
	}
	return clone
}
