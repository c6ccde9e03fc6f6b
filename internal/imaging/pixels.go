package imaging

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/effect"
	imgx "github.com/disintegration/imaging"

	"github.com/ironsheep/shape-detect-mcp/internal/detection"
)

// ToPixelBuffer converts any decoded image into the tight RGBA layout the
// detector expects.
//
// The result is non-premultiplied, 4 bytes per pixel, with no row padding and
// its origin at (0,0) regardless of img.Bounds().Min.
//
// When invert is true the colors are inverted first, so light shapes on a
// dark background become dark shapes on a light one. Inversion works on an
// opaque copy composited over black, so transparent areas end up as light
// background and the inverted buffer is always fully opaque.
func ToPixelBuffer(img image.Image, invert bool) detection.PixelBuffer {
	if invert {
		// effect.Invert flips premultiplied channels, which is only exact
		// for opaque pixels.
		b := img.Bounds()
		flat := imgx.Overlay(imgx.New(b.Dx(), b.Dy(), color.Black), img, image.Point{}, 1.0)
		img = effect.Invert(flat)
	}

	nrgba := imgx.Clone(img)
	b := nrgba.Bounds()
	return detection.PixelBuffer{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pix:    nrgba.Pix,
	}
}
