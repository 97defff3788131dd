// Command demo draws a handful of shapes on a braille canvas sized to the
// terminal and prints the result.
package main

import (
	"fmt"
	"os"

	"github.com/lmittmann/tint"
	"golang.org/x/exp/slog"
	"golang.org/x/term"

	"git.sr.ht/~rockorager/braille"
)

func main() {
	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: "15:04:05.000",
	})
	log := slog.New(handler)
	braille.SetLogger(log)

	cols, rows := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cols, rows = w, h-1
	}
	canvas, err := braille.New(cols, rows)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}

	dw := canvas.DotWidth()
	dh := canvas.DotHeight()

	// Border and diagonals
	if err := canvas.DrawRectangleThick(0, 0, dw, dh, 2); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
	canvas.DrawLine(0, 0, dw-1, dh-1)
	canvas.DrawLine(0, dh-1, dw-1, 0)

	// Concentric circles around the center, the innermost filled
	cx, cy := dw/2, dh/2
	r := dh / 3
	canvas.DrawCircleFilled(cx, cy, r/3)
	if err := canvas.DrawCircleThick(cx, cy, r, 2); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}

	// A filled pentagon in the left third
	px, py := dw/6, dh/2
	pr := dh / 4
	pentagon := []braille.Point{
		{X: px, Y: py - pr},
		{X: px + pr, Y: py - pr/4},
		{X: px + pr*2/3, Y: py + pr},
		{X: px - pr*2/3, Y: py + pr},
		{X: px - pr, Y: py - pr/4},
	}
	if err := canvas.DrawPolygonFilled(pentagon); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}

	// Label the drawing with override characters
	label := "braille demo"
	chars := braille.Characters(label)
	col := canvas.Width()/2 - len(chars)/2
	for i, ch := range chars {
		if err := canvas.SetChar(col+i, canvas.Height()-2, ch.Grapheme); err != nil {
			break
		}
	}

	fmt.Println(canvas)
}
