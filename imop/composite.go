package imop

import (
	"fmt"
	"image"
	"image/color"

	"github.com/esimov/gridpaint/utils"
)

// Porter-Duff composition operators.
const (
	Copy    = "copy"
	SrcOver = "src_over"
	DstOver = "dst_over"
	SrcIn   = "src_in"
	DstIn   = "dst_in"
	SrcOut  = "src_out"
	DstOut  = "dst_out"
	SrcAtop = "src_atop"
	DstAtop = "dst_atop"
	Xor     = "xor"
)

// CompositeOps lists every supported composition operator.
var CompositeOps = []string{Copy, SrcOver, DstOver, SrcIn, DstIn, SrcOut, DstOut, SrcAtop, DstAtop, Xor}

// Bitmap is the destination of a composition.
type Bitmap struct {
	Img *image.NRGBA
}

// NewBitmap allocates a transparent bitmap.
func NewBitmap(rect image.Rectangle) *Bitmap {
	return &Bitmap{
		Img: image.NewNRGBA(rect),
	}
}

// Composite holds the currently active composition operator.
type Composite struct {
	current string
}

// InitOp initializes a new composition using the source-over operator.
func InitOp() *Composite {
	return &Composite{current: SrcOver}
}

// Set activates one of the supported composition operators.
func (op *Composite) Set(cop string) error {
	if !utils.Contains(CompositeOps, cop) {
		return fmt.Errorf("unsupported composite operation: %q", cop)
	}
	op.current = cop
	return nil
}

// Get returns the active composition operator.
func (op *Composite) Get() string {
	return op.current
}

// Draw composes src over the dst backdrop into the bitmap. When blend is not nil
// the source color is first mixed with the backdrop using the blend mode.
// The three images are expected to share the same bounds.
func (op *Composite) Draw(bitmap *Bitmap, src, dst *image.NRGBA, blend *Blend) {
	if bitmap == nil || bitmap.Img == nil {
		return
	}
	bounds := src.Bounds().Intersect(dst.Bounds()).Intersect(bitmap.Img.Bounds())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			s := normalize(src.NRGBAAt(x, y))
			b := normalize(dst.NRGBAAt(x, y))

			if blend != nil {
				// Mix the source color with the backdrop, weighted by the backdrop coverage.
				for i := 0; i < 3; i++ {
					s[i] = (1-b[3])*s[i] + b[3]*blend.apply(b[i], s[i])
				}
			}
			bitmap.Img.SetNRGBA(x, y, denormalize(op.compose(s, b)))
		}
	}
}

// compose applies the Porter-Duff operator over a source and a backdrop pixel.
// The channels are straight (non premultiplied) values in the [0, 1] range.
func (op *Composite) compose(s, b [4]float64) [4]float64 {
	var fs, fb float64
	as, ab := s[3], b[3]

	switch op.current {
	case Copy:
		fs, fb = 1, 0
	case SrcOver:
		fs, fb = 1, 1-as
	case DstOver:
		fs, fb = 1-ab, 1
	case SrcIn:
		fs, fb = ab, 0
	case DstIn:
		fs, fb = 0, as
	case SrcOut:
		fs, fb = 1-ab, 0
	case DstOut:
		fs, fb = 0, 1-as
	case SrcAtop:
		fs, fb = ab, 1-as
	case DstAtop:
		fs, fb = 1-ab, as
	case Xor:
		fs, fb = 1-ab, 1-as
	}

	var out [4]float64
	out[3] = as*fs + ab*fb
	if out[3] == 0 {
		return out
	}
	for i := 0; i < 3; i++ {
		out[i] = (as*fs*s[i] + ab*fb*b[i]) / out[3]
	}
	return out
}

func normalize(c color.NRGBA) [4]float64 {
	return [4]float64{
		float64(c.R) / 255,
		float64(c.G) / 255,
		float64(c.B) / 255,
		float64(c.A) / 255,
	}
}

func denormalize(c [4]float64) color.NRGBA {
	ch := func(v float64) uint8 {
		return uint8(utils.Clamp(v, 0, 1)*255 + 0.5)
	}
	return color.NRGBA{R: ch(c[0]), G: ch(c[1]), B: ch(c[2]), A: ch(c[3])}
}
