package braille

import "fmt"

// PixelBuffer is a binary image: Pixels is row-major, true meaning
// foreground. It is the boundary type between this package and whatever
// produces binary pixels, typically a grayscale plus dithering or
// thresholding stage
type PixelBuffer struct {
	Width  int
	Height int
	Pixels []bool
}

// NewPixelBuffer allocates an all-background buffer. Returns
// ErrInvalidDimensions if either dimension is zero
func NewPixelBuffer(width int, height int) (*PixelBuffer, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("pixel buffer %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pixels: make([]bool, width*height),
	}, nil
}

// At reports the pixel at (x, y). Coordinates outside the buffer are
// background
func (p *PixelBuffer) At(x int, y int) bool {
	if x < 0 || x >= p.Width || y < 0 || y >= p.Height {
		return false
	}
	return p.Pixels[y*p.Width+x]
}

// Set sets the pixel at (x, y), ignoring coordinates outside the buffer
func (p *PixelBuffer) Set(x int, y int, v bool) {
	if x < 0 || x >= p.Width || y < 0 || y >= p.Height {
		return
	}
	p.Pixels[y*p.Width+x] = v
}

// valid checks the buffer's dimensions and pixel array length
func (p *PixelBuffer) valid() error {
	if p.Width < 1 || p.Height < 1 {
		return fmt.Errorf("pixel buffer %dx%d: %w", p.Width, p.Height, ErrInvalidDimensions)
	}
	if len(p.Pixels) != p.Width*p.Height {
		return fmt.Errorf("pixel buffer %dx%d with %d pixels: %w", p.Width, p.Height, len(p.Pixels), ErrInvalidDimensions)
	}
	return nil
}

// NewCanvasFromPixels maps a binary pixel buffer onto a new canvas sized
// ceil(width/2) x ceil(height/4) cells. Each pixel maps to the dot at the
// same coordinate; the bottom and right are padded with background dots when
// the buffer's dimensions are not multiples of the 2x4 cell, never cropped.
// Color is not handled here: apply it per cell after mapping
func NewCanvasFromPixels(p *PixelBuffer) (*Canvas, error) {
	if err := p.valid(); err != nil {
		return nil, err
	}
	c, err := New((p.Width+1)/2, (p.Height+3)/4)
	if err != nil {
		return nil, err
	}
	if err := c.DrawPixels(p); err != nil {
		return nil, err
	}
	return c, nil
}

// DrawPixels maps a binary pixel buffer onto an existing canvas, pixel (x, y)
// to dot (x, y). Pixels beyond the canvas are clipped; canvas dots beyond the
// buffer are left as they are. Useful for re-rendering frames into one canvas
// without reallocating
func (c *Canvas) DrawPixels(p *PixelBuffer) error {
	if err := p.valid(); err != nil {
		return err
	}
	on := 0
	for y := 0; y < p.Height; y += 1 {
		for x := 0; x < p.Width; x += 1 {
			if p.Pixels[y*p.Width+x] {
				c.plot(x, y)
				on += 1
			}
		}
	}
	log.Debug("mapped pixels", "width", p.Width, "height", p.Height, "foreground", on)
	return nil
}
