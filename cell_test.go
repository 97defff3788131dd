package braille

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetChar(t *testing.T) {
	c, err := New(2, 1)
	assert.NoError(t, err)
	assert.NoError(t, c.SetDot(0, 0))

	assert.NoError(t, c.SetChar(0, 0, "X"))
	s, err := c.CellString(0, 0)
	assert.NoError(t, err)
	assert.Equal(t, "X", s, "override takes precedence over dots")

	// Dots survive underneath the override
	assert.NoError(t, c.ClearChar(0, 0))
	s, _ = c.CellString(0, 0)
	assert.Equal(t, "⠁", s)
}

func TestSetCharFirstGrapheme(t *testing.T) {
	c, err := New(1, 1)
	assert.NoError(t, err)
	assert.NoError(t, c.SetChar(0, 0, "abc"))
	s, err := c.GetChar(0, 0)
	assert.NoError(t, err)
	assert.Equal(t, "a", s)
}

func TestSetCharEmptyClears(t *testing.T) {
	c, err := New(1, 1)
	assert.NoError(t, err)
	assert.NoError(t, c.SetChar(0, 0, "x"))
	assert.NoError(t, c.SetChar(0, 0, ""))
	s, _ := c.GetChar(0, 0)
	assert.Empty(t, s)
}

func TestSetCharRejectsWide(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"CJK", "日"},
		{"fullwidth", "Ａ"},
		{"emoji", "🚀"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c, err := New(1, 1)
			assert.NoError(t, err)
			assert.ErrorIs(t, c.SetChar(0, 0, test.input), ErrInvalidDimensions)
		})
	}
}

func TestSetCharOutOfBounds(t *testing.T) {
	c, err := New(2, 2)
	assert.NoError(t, err)
	assert.ErrorIs(t, c.SetChar(2, 0, "x"), ErrOutOfBounds)
	assert.ErrorIs(t, c.SetChar(0, -1, "x"), ErrOutOfBounds)
	_, err = c.GetChar(5, 5)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestSetRawPatternsClearsOverrides(t *testing.T) {
	c, err := New(1, 1)
	assert.NoError(t, err)
	assert.NoError(t, c.SetChar(0, 0, "x"))
	assert.NoError(t, c.SetRawPatterns([]byte{0x01}))
	s, _ := c.CellString(0, 0)
	assert.Equal(t, "⠁", s)
}

func TestCharacters(t *testing.T) {
	chars := Characters("ab")
	assert.Len(t, chars, 2)
	assert.Equal(t, Character{"a", 1}, chars[0])
	assert.Equal(t, Character{"b", 1}, chars[1])

	// A ZWJ emoji sequence is one Character
	chars = Characters("👩‍🚀")
	assert.Len(t, chars, 1)
	assert.Equal(t, 2, chars[0].Width)
}
