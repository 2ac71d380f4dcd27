package gridpaint

import (
	"fmt"
	"image"
	"io"

	"github.com/esimov/gridpaint/utils"
)

// Processor options
type Processor struct {
	Renderer *Renderer
	Spinner  *utils.Spinner
	// Grid is invoked with the final grid of every processed script.
	Grid func(name string, g Grid)
}

// NewProcessor returns a processor using the default renderer.
func NewProcessor() *Processor {
	return &Processor{
		Renderer: NewRenderer(),
	}
}

// RunScript parses the script and runs it on a fresh session.
func (p *Processor) RunScript(r io.Reader) (*Engine, error) {
	cmds, err := ParseScript(r)
	if err != nil {
		return nil, err
	}
	e := NewEngine()
	if err := Run(e, cmds); err != nil {
		return nil, err
	}
	return e, nil
}

// Draw runs the script and renders the resulting grid.
func (p *Processor) Draw(r io.Reader) (*image.NRGBA, Grid, error) {
	e, err := p.RunScript(r)
	if err != nil {
		return nil, Grid{}, err
	}
	renderer := p.Renderer
	if renderer == nil {
		renderer = NewRenderer()
	}
	img, err := renderer.Render(e.CurrentGrid())
	if err != nil {
		return nil, Grid{}, fmt.Errorf("could not render the grid: %w", err)
	}
	return img, e.CurrentGrid(), nil
}

// Process reads a grid script and encodes the rendered grid into an io.Writer.
// We are using the io package, since we can provide different input and output types,
// as long as they implement the io.Reader and io.Writer interface.
func (p *Processor) Process(r io.Reader, w io.Writer) error {
	img, g, err := p.Draw(r)
	if err != nil {
		return err
	}
	if p.Grid != nil {
		p.Grid(nameOf(w), g)
	}
	return encodeImg(w, img)
}

func nameOf(v any) string {
	if n, ok := v.(interface{ Name() string }); ok {
		return n.Name()
	}
	return ""
}
