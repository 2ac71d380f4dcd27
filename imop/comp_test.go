package imop

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComp_Basic(t *testing.T) {
	assert := assert.New(t)

	op := InitOp()
	assert.Equal(SrcOver, op.Get())

	assert.NoError(op.Set(Xor))
	assert.Equal(Xor, op.Get())

	assert.Error(op.Set("unsupported_composite_operation"))
	assert.Equal(Xor, op.Get())
}

func TestComp_Ops(t *testing.T) {
	transparent := color.NRGBA{}
	cyan := color.NRGBA{R: 33, G: 150, B: 243, A: 255}
	magenta := color.NRGBA{R: 233, G: 30, B: 99, A: 255}

	rect := image.Rect(0, 0, 10, 10)
	source := image.NewNRGBA(rect)
	backdrop := image.NewNRGBA(rect)

	draw.Draw(source, image.Rect(0, 4, 6, 10), &image.Uniform{cyan}, image.Point{}, draw.Src)
	draw.Draw(backdrop, image.Rect(4, 0, 10, 6), &image.Uniform{magenta}, image.Point{}, draw.Src)

	// Three representative pixels: only the backdrop is present at the top right corner,
	// only the source at the bottom left corner and both of them in the center.
	testCases := []struct {
		op                            string
		topRight, bottomLeft, center color.NRGBA
	}{
		{SrcOver, magenta, cyan, cyan},
		{DstOver, magenta, cyan, magenta},
		{SrcIn, transparent, transparent, cyan},
		{DstIn, transparent, transparent, magenta},
		{SrcOut, transparent, cyan, transparent},
		{DstOut, magenta, transparent, transparent},
		{SrcAtop, magenta, transparent, cyan},
		{DstAtop, transparent, cyan, magenta},
		{Xor, magenta, cyan, transparent},
		{Copy, transparent, cyan, cyan},
	}

	for _, tc := range testCases {
		t.Run(tc.op, func(t *testing.T) {
			assert := assert.New(t)

			op := InitOp()
			assert.NoError(op.Set(tc.op))

			bmp := NewBitmap(rect)
			op.Draw(bmp, source, backdrop, nil)

			assert.Equal(tc.topRight, bmp.Img.NRGBAAt(9, 0))
			assert.Equal(tc.bottomLeft, bmp.Img.NRGBAAt(0, 9))
			assert.Equal(tc.center, bmp.Img.NRGBAAt(5, 5))
		})
	}
}
