package braille

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// cell is one character position on the canvas. The dot byte is always
// retained; when an override character is present it takes precedence for
// display and the dots reappear once it is cleared
type cell struct {
	dots     byte
	override string
}

// String returns the cell's display string: the override character when one
// is set, otherwise the braille pattern for the dot byte. A cell with no dots
// set renders as the blank braille pattern U+2800, not an ASCII space, so
// rendered output corresponds 1:1 to the raw byte representation
func (c cell) String() string {
	if c.override != "" {
		return c.override
	}
	return string(brailleBase + rune(c.dots))
}

// SetChar sets an override character for the cell at (cx, cy), taking
// precedence over the braille-derived character. Only the first extended
// grapheme cluster of s is used and it must not render wider than one column.
// An empty s clears the override, like ClearChar. The dot state underneath is
// untouched.
//
// Overrides exist for collaborators that mix braille art with plain text,
// such as density renderers and chart labels
func (c *Canvas) SetChar(cx int, cy int, s string) error {
	if cx < 0 || cx >= c.width || cy < 0 || cy >= c.height {
		return fmt.Errorf("cell (%d,%d) on %dx%d canvas: %w", cx, cy, c.width, c.height, ErrOutOfBounds)
	}
	if s == "" {
		c.cells[cy*c.width+cx].override = ""
		return nil
	}
	g, _, w, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	// Check the wcwidth measurement too: terminals without grapheme
	// support fall back to it, and a cell wider than one column would
	// shift the rest of the row
	if w > 1 || runewidth.StringWidth(g) > 1 {
		return fmt.Errorf("override %q is wider than one cell: %w", g, ErrInvalidDimensions)
	}
	c.cells[cy*c.width+cx].override = g
	return nil
}

// GetChar returns the override character at (cx, cy), or the empty string if
// the cell has none
func (c *Canvas) GetChar(cx int, cy int) (string, error) {
	if cx < 0 || cx >= c.width || cy < 0 || cy >= c.height {
		return "", fmt.Errorf("cell (%d,%d) on %dx%d canvas: %w", cx, cy, c.width, c.height, ErrOutOfBounds)
	}
	return c.cells[cy*c.width+cx].override, nil
}

// ClearChar removes the override character at (cx, cy). The braille pattern
// for the cell's dots becomes visible again
func (c *Canvas) ClearChar(cx int, cy int) error {
	return c.SetChar(cx, cy, "")
}
