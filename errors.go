package braille

import "errors"

var (
	// ErrInvalidDimensions is returned when a width, height, or other
	// extent is zero or otherwise unusable.
	ErrInvalidDimensions = errors.New("invalid dimensions")

	// ErrInvalidThickness is returned when a thickness parameter is zero.
	ErrInvalidThickness = errors.New("invalid thickness")

	// ErrInvalidPolygon is returned when a polygon has fewer than three
	// vertices.
	ErrInvalidPolygon = errors.New("invalid polygon")

	// ErrOutOfBounds is returned by direct dot and cell accessors when the
	// address lies outside the canvas. Rasterizers never return it: dots
	// outside the canvas are clipped silently.
	ErrOutOfBounds = errors.New("out of bounds")
)
