package gridpaint

import (
	"github.com/lucasb-eyer/go-colorful"
)

const (
	// OutlineThreshold is the luminance above which a swatch is too close
	// to white to stand out against a light background.
	OutlineThreshold = 230
	// DarkThreshold is the luminance below which the text over a swatch turns white.
	DarkThreshold = 128
)

// Swatch holds the display decisions for an UI element using a color as its background.
type Swatch struct {
	Background   Color
	Luminance    float64
	Outline      bool
	OutlineColor Color
	Text         Color
}

// Luminance computes the perceptual brightness of c on the 0-255 scale
// using the relative luminance weights, without gamma correction.
func Luminance(c Color) float64 {
	return 0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)
}

// NeedsOutline reports whether a swatch of the given luminance needs
// a 1px outline in the accent color to remain visible.
func NeedsOutline(lum float64) bool {
	return lum > OutlineThreshold
}

// TextColor returns the foreground color legible over a background of the given luminance.
func TextColor(lum float64) Color {
	if lum < DarkThreshold {
		return White
	}
	return Black
}

// Classify returns the swatch styling for the background color c.
func Classify(c Color) Swatch {
	lum := Luminance(c)
	s := Swatch{
		Background: c,
		Luminance:  lum,
		Outline:    NeedsOutline(lum),
		Text:       TextColor(lum),
	}
	if s.Outline {
		s.OutlineColor = Accent
	}
	return s
}

// Palette returns n colors with evenly spaced hues, useful as preset swatches.
// The first two entries are always black and white.
func Palette(n int) []Color {
	if n <= 0 {
		return nil
	}
	base := []Color{Black, White}
	if n <= len(base) {
		return base[:n]
	}
	hues := n - len(base)
	pal := make([]Color, 0, n)
	pal = append(pal, base...)
	for i := 0; i < hues; i++ {
		h := 360 * float64(i) / float64(hues)
		r, g, b := colorful.Hsv(h, 0.85, 0.9).RGB255()
		pal = append(pal, Color{R: r, G: g, B: b})
	}
	return pal
}
