// Package braille is a dot-addressable drawing canvas for terminals. Each
// terminal cell is treated as a 2x4 grid of dots, rendered with the Unicode
// braille patterns block (U+2800-U+28FF), giving roughly four times the
// resolution of the character grid. The package provides the canvas itself,
// integer rasterizers for lines, circles, rectangles and polygons, and a
// mapper from pre-binarized pixel buffers onto the dot grid. Terminal output,
// image decoding and dithering are left to the caller.
package braille

import (
	"io"

	"golang.org/x/exp/slog"
)

// brailleBase is the code point of the empty braille pattern. A cell's
// displayed rune is brailleBase + its dot byte.
const brailleBase rune = 0x2800

// dotMask maps in-cell dot coordinates to their bit in the cell byte. The
// braille block numbers dots 1-3 and 7 down the left column, 4-6 and 8 down
// the right, so the bit order is not row-major.
//
//	0x01 0x08
//	0x02 0x10
//	0x04 0x20
//	0x40 0x80
var dotMask = [2][4]byte{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

var log = slog.New(slog.NewTextHandler(io.Discard, nil))

// SetLogger sets the logger the package logs to. Only construction and
// mapping operations log, at debug level; per-dot paths never do.
func SetLogger(l *slog.Logger) {
	if l == nil {
		return
	}
	log = l
}
