package braille_test

import (
	"fmt"

	"git.sr.ht/~rockorager/braille"
)

func ExampleCanvas_String() {
	canvas, _ := braille.New(1, 1)
	canvas.SetRawPatterns([]byte{0xFF})
	fmt.Println(canvas)
	// Output: ⣿
}

func ExampleCanvas_DrawLine() {
	canvas, _ := braille.New(4, 1)
	canvas.DrawLine(0, 0, canvas.DotWidth()-1, 0)
	fmt.Println(canvas)
	// Output: ⠉⠉⠉⠉
}

func ExampleNewCanvasFromPixels() {
	pixels, _ := braille.NewPixelBuffer(4, 4)
	for i := 0; i < 4; i += 1 {
		pixels.Set(i, i, true)
	}
	canvas, _ := braille.NewCanvasFromPixels(pixels)
	fmt.Println(canvas)
	// Output: ⠑⢄
}

func ExampleCanvas_SetCellColor() {
	canvas, _ := braille.New(2, 1)
	canvas.EnableColorSupport()
	canvas.DrawLineColor(0, 0, 3, 0, braille.RGBColor(255, 0, 0))
	color, _ := canvas.GetCellColor(0, 0)
	fmt.Println(color.Params())
	// Output: [255 0 0]
}
