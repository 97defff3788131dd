// Command imgview renders an image file as braille text. It is a sample of
// the pipeline the canvas expects around it: decode, scale, binarize into a
// PixelBuffer, then map. The binarization here is a plain luminance cutoff;
// real callers would dither.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/term"

	"git.sr.ht/~rockorager/braille"
)

func main() {
	cols := flag.Int("w", 0, "output width in columns, 0 for terminal width")
	cutoff := flag.Uint("t", 128, "luminance cutoff, 0-255")
	invert := flag.Bool("i", false, "treat dark pixels as background")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <image>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *cols == 0 {
		*cols = 80
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			*cols = w
		}
	}

	pb, err := binarize(scale(img, *cols*2), uint32(*cutoff), *invert)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	canvas, err := braille.NewCanvasFromPixels(pb)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(canvas)
}

// scale resizes the image to the given dot width, keeping the aspect ratio.
// Braille dots are close enough to square that no cell-aspect correction is
// needed. Images already narrow enough are passed through
func scale(img image.Image, dotWidth int) image.Image {
	b := img.Bounds()
	if b.Dx() <= dotWidth {
		return img
	}
	h := b.Dy() * dotWidth / b.Dx()
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, dotWidth, h))
	draw.NearestNeighbor.Scale(dst, dst.Rect, img, b, draw.Over, nil)
	return dst
}

// binarize converts the image to a binary pixel buffer with a fixed
// luminance cutoff
func binarize(img image.Image, cutoff uint32, invert bool) (*braille.PixelBuffer, error) {
	b := img.Bounds()
	pb, err := braille.NewPixelBuffer(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < b.Dy(); y += 1 {
		for x := 0; x < b.Dx(); x += 1 {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			// ITU-R BT.601 luma, on 16 bit channels
			luma := (299*r + 587*g + 114*bl) / 1000 >> 8
			on := luma >= cutoff
			if invert {
				on = !on
			}
			pb.Set(x, y, on)
		}
	}
	return pb, nil
}
