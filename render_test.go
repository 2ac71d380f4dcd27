package gridpaint

import (
	"image/color"
	"testing"

	"github.com/esimov/gridpaint/imop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_EmptyGrid(t *testing.T) {
	r := NewRenderer()
	img, err := r.Render(Grid{})
	require.NoError(t, err)

	assert.Equal(t, DefaultCellSize, img.Bounds().Dx())
	assert.Equal(t, DefaultCellSize, img.Bounds().Dy())
	assert.Equal(t, r.Background, img.NRGBAAt(DefaultCellSize/2, DefaultCellSize/2))
}

func TestRender_Dimensions(t *testing.T) {
	r := NewRenderer()
	r.CellSize = 10

	img, err := r.Render(NewGrid(2, 3))
	require.NoError(t, err)
	assert.Equal(t, 30, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())

	r.CellSize = 0
	img, err = r.Render(NewGrid(1, 1))
	require.NoError(t, err)
	assert.Equal(t, DefaultCellSize, img.Bounds().Dx())
}

func TestRender_CellColors(t *testing.T) {
	g, err := NewGrid(2, 2).PaintCell(0, 1, red, Single)
	require.NoError(t, err)

	r := NewRenderer()
	r.CellSize = 8
	r.GridLines = false

	img, err := r.Render(g)
	require.NoError(t, err)

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			want := r.Background
			if y < 8 && x >= 8 {
				want = red.NRGBA()
			}
			require.Equal(t, want, img.NRGBAAt(x, y), "pixel (%d, %d)", x, y)
		}
	}
}

func TestRender_GridLines(t *testing.T) {
	g := NewGrid(2, 2).FillAll(red)

	r := NewRenderer()
	r.CellSize = 8

	img, err := r.Render(g)
	require.NoError(t, err)

	line := r.LineColor
	assert.Equal(t, line, img.NRGBAAt(0, 0))
	assert.Equal(t, line, img.NRGBAAt(8, 3))
	assert.Equal(t, line, img.NRGBAAt(3, 8))
	// The closing lines are drawn on the last pixel row and column.
	assert.Equal(t, line, img.NRGBAAt(15, 3))
	assert.Equal(t, line, img.NRGBAAt(3, 15))

	assert.Equal(t, red.NRGBA(), img.NRGBAAt(4, 4))
	assert.Equal(t, red.NRGBA(), img.NRGBAAt(12, 12))
}

func TestRender_GridLinesBlendMode(t *testing.T) {
	g := NewGrid(1, 1).FillAll(red)

	r := NewRenderer()
	r.CellSize = 8
	r.Blend = imop.Multiply

	img, err := r.Render(g)
	require.NoError(t, err)

	assert.Equal(t, color.NRGBA{R: 0xcc, A: 0xff}, img.NRGBAAt(0, 0))
	assert.Equal(t, red.NRGBA(), img.NRGBAAt(4, 4))
}

func TestRender_SmallCellsHaveNoLines(t *testing.T) {
	r := NewRenderer()
	r.CellSize = 2

	img, err := r.Render(NewGrid(1, 1).FillAll(red))
	require.NoError(t, err)
	assert.Equal(t, red.NRGBA(), img.NRGBAAt(0, 0))
}

func TestRender_InvalidBlendMode(t *testing.T) {
	r := NewRenderer()
	r.Blend = "dodge"

	_, err := r.Render(NewGrid(1, 1))
	assert.Error(t, err)
}

func TestRender_Grayscale(t *testing.T) {
	r := NewRenderer()
	r.CellSize = 4
	r.GridLines = false
	r.Grayscale = true

	img, err := r.Render(NewGrid(1, 2).FillAll(red).FillUnpainted(Accent))
	require.NoError(t, err)

	assert.Equal(t, color.NRGBA{R: 54, G: 54, B: 54, A: 0xff}, img.NRGBAAt(1, 1))

	img, err = r.Render(Grid{})
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, img.NRGBAAt(0, 0))
}
