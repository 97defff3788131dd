package braille

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrawLineSymmetry(t *testing.T) {
	tests := []struct {
		name string
		x0   int
		y0   int
		x1   int
		y1   int
	}{
		{"shallow", 0, 0, 13, 7},
		{"steep", 3, 1, 4, 9},
		{"negative slope", 2, 9, 11, 3},
		{"horizontal", 0, 7, 12, 7},
		{"vertical", 5, 5, 5, 12},
		{"diagonal", 0, 0, 9, 9},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			forward, err := New(10, 5)
			assert.NoError(t, err)
			reverse, err := New(10, 5)
			assert.NoError(t, err)
			forward.DrawLine(test.x0, test.y0, test.x1, test.y1)
			reverse.DrawLine(test.x1, test.y1, test.x0, test.y0)
			assert.Equal(t, dots(t, forward), dots(t, reverse))
		})
	}
}

func TestDrawLineHorizontalExact(t *testing.T) {
	c, err := New(20, 10)
	assert.NoError(t, err)
	c.DrawLine(0, 5, 10, 5)

	set := dots(t, c)
	assert.Len(t, set, 11)
	for x := 0; x <= 10; x += 1 {
		assert.True(t, set[[2]int{x, 5}], "dot (%d,5)", x)
		assert.False(t, set[[2]int{x, 4}], "dot (%d,4)", x)
		assert.False(t, set[[2]int{x, 6}], "dot (%d,6)", x)
	}
}

func TestDrawLineZeroLength(t *testing.T) {
	c, err := New(5, 5)
	assert.NoError(t, err)
	c.DrawLine(4, 7, 4, 7)
	set := dots(t, c)
	assert.Len(t, set, 1)
	assert.True(t, set[[2]int{4, 7}])
}

func TestDrawLineClipped(t *testing.T) {
	c, err := New(5, 5)
	assert.NoError(t, err)

	// Entirely off-canvas leaves the canvas unchanged
	c.DrawLine(-50, -50, -10, -80)
	c.DrawLine(100, 3, 200, 3)
	assert.Empty(t, dots(t, c))

	// Crossing the canvas sets only the on-canvas portion
	c.DrawLine(-5, 2, 50, 2)
	set := dots(t, c)
	assert.Len(t, set, c.DotWidth())
	for x := 0; x < c.DotWidth(); x += 1 {
		assert.True(t, set[[2]int{x, 2}])
	}
}

func TestDrawLineThick(t *testing.T) {
	t.Run("zero thickness", func(t *testing.T) {
		c, err := New(5, 5)
		assert.NoError(t, err)
		assert.ErrorIs(t, c.DrawLineThick(0, 0, 5, 5, 0), ErrInvalidThickness)
		assert.Empty(t, dots(t, c))
	})

	t.Run("thickness one matches DrawLine", func(t *testing.T) {
		thick, err := New(10, 5)
		assert.NoError(t, err)
		thin, err := New(10, 5)
		assert.NoError(t, err)
		assert.NoError(t, thick.DrawLineThick(1, 2, 17, 13, 1))
		thin.DrawLine(1, 2, 17, 13)
		assert.Equal(t, dots(t, thin), dots(t, thick))
	})

	t.Run("horizontal thickness three", func(t *testing.T) {
		c, err := New(20, 10)
		assert.NoError(t, err)
		assert.NoError(t, c.DrawLineThick(5, 10, 15, 10, 3))
		set := dots(t, c)
		assert.Len(t, set, 33)
		for x := 5; x <= 15; x += 1 {
			for y := 9; y <= 11; y += 1 {
				assert.True(t, set[[2]int{x, y}], "dot (%d,%d)", x, y)
			}
		}
	})

	t.Run("zero length square", func(t *testing.T) {
		c, err := New(20, 10)
		assert.NoError(t, err)
		assert.NoError(t, c.DrawLineThick(10, 10, 10, 10, 3))
		set := dots(t, c)
		assert.Len(t, set, 9)
		for x := 9; x <= 11; x += 1 {
			for y := 9; y <= 11; y += 1 {
				assert.True(t, set[[2]int{x, y}], "dot (%d,%d)", x, y)
			}
		}
	})
}

func TestDrawLineColor(t *testing.T) {
	c, err := New(4, 1)
	assert.NoError(t, err)
	red := RGBColor(255, 0, 0)
	c.DrawLineColor(0, 0, 3, 0, red)

	// Dots drawn as usual
	set := dots(t, c)
	assert.Len(t, set, 4)

	// Touched cells colored, untouched cells default
	for cx := 0; cx < 2; cx += 1 {
		color, err := c.GetCellColor(cx, 0)
		assert.NoError(t, err)
		assert.Equal(t, red, color, "cell (%d,0)", cx)
	}
	color, err := c.GetCellColor(3, 0)
	assert.NoError(t, err)
	assert.Equal(t, Color(0), color)
}
