package gridpaint

import (
	"image"
	"image/color"
	"math"
)

// Grayscale converts the image to grayscale using the same luminance weights
// as the swatch classifier, which makes it handy for checking the contrast of a painting.
// The alpha channel is kept.
func Grayscale(src *image.NRGBA) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := src.NRGBAAt(x, y)
			lum := Luminance(Color{R: c.R, G: c.G, B: c.B})
			v := uint8(math.Min(math.Round(lum), 255))
			dst.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: c.A})
		}
	}
	return dst
}
