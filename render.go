package gridpaint

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/esimov/gridpaint/imop"
	"github.com/esimov/gridpaint/utils"
)

// DefaultCellSize is the rendered size of a cell in pixels.
const DefaultCellSize = 32

// Renderer converts a grid snapshot into an image.
type Renderer struct {
	// CellSize is the side of a cell in pixels.
	CellSize int
	// Background is the color of the Unpainted cells.
	Background color.NRGBA
	// GridLines enables the cell separator lines.
	GridLines bool
	// LineColor is the color of the separator lines.
	LineColor color.NRGBA
	// Blend is the blend mode used for mixing the lines with the cells (see imop.BlendModes).
	Blend string
	// Grayscale renders the luminance of the cells instead of their colors.
	Grayscale bool
}

// NewRenderer returns a renderer with the default settings: white background and light gray grid lines.
func NewRenderer() *Renderer {
	return &Renderer{
		CellSize:   DefaultCellSize,
		Background: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		GridLines:  true,
		LineColor:  color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff},
		Blend:      imop.Normal,
	}
}

// Render draws the grid. Every cell is drawn as a single pixel first, then the image
// is upscaled with the nearest neighbor filter to keep the cell edges sharp.
// The empty grid is rendered as a single Unpainted cell.
func (r *Renderer) Render(g Grid) (*image.NRGBA, error) {
	cs := r.CellSize
	if cs <= 0 {
		cs = DefaultCellSize
	}
	if g.IsEmpty() {
		return r.finish(imaging.New(cs, cs, r.Background)), nil
	}

	rows, cols := g.Rows(), g.Cols()
	small := image.NewNRGBA(image.Rect(0, 0, cols, rows))
	for i, row := range g.cells {
		for j, cell := range row {
			if c, ok := cell.Color(); ok {
				small.SetNRGBA(j, i, c.NRGBA())
			} else {
				small.SetNRGBA(j, i, r.Background)
			}
		}
	}
	img := imaging.Resize(small, cols*cs, rows*cs, imaging.NearestNeighbor)

	if r.GridLines && cs >= 3 {
		var err error
		if img, err = r.drawLines(img, rows, cols, cs); err != nil {
			return nil, err
		}
	}
	return r.finish(img), nil
}

func (r *Renderer) finish(img *image.NRGBA) *image.NRGBA {
	if r.Grayscale {
		return Grayscale(img)
	}
	return img
}

// drawLines composes the grid lines over the cells.
func (r *Renderer) drawLines(img *image.NRGBA, rows, cols, cs int) (*image.NRGBA, error) {
	bounds := img.Bounds()
	lines := image.NewNRGBA(bounds)
	uniform := &image.Uniform{C: r.LineColor}

	for i := 0; i <= rows; i++ {
		y := utils.Min(i*cs, bounds.Max.Y-1)
		draw.Draw(lines, image.Rect(0, y, bounds.Max.X, y+1), uniform, image.Point{}, draw.Src)
	}
	for j := 0; j <= cols; j++ {
		x := utils.Min(j*cs, bounds.Max.X-1)
		draw.Draw(lines, image.Rect(x, 0, x+1, bounds.Max.Y), uniform, image.Point{}, draw.Src)
	}

	op := imop.InitOp()
	blend := imop.NewBlend()
	if r.Blend != "" {
		if err := blend.Set(r.Blend); err != nil {
			return nil, err
		}
	}
	bmp := imop.NewBitmap(bounds)
	op.Draw(bmp, lines, img, blend)

	return bmp.Img, nil
}
