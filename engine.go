package gridpaint

import "fmt"

// DefaultColor is the active color of a new session.
var DefaultColor = Accent

// Engine holds the state of a single painting session: the current grid
// snapshot, the active color and the paint mode. An Engine is not safe for
// concurrent use; every session should own its own instance.
type Engine struct {
	grid  Grid
	color Color
	mode  PaintMode
}

// NewEngine creates a session with an empty grid, the default color and Single paint mode.
func NewEngine() *Engine {
	return &Engine{
		color: DefaultColor,
		mode:  Single,
	}
}

// NewEngineWithGrid creates a session starting from the grid snapshot g.
func NewEngineWithGrid(g Grid) *Engine {
	e := NewEngine()
	e.grid = g
	return e
}

// CurrentGrid returns the current grid snapshot.
func (e *Engine) CurrentGrid() Grid {
	return e.grid
}

// RowCount returns the number of rows of the current grid.
func (e *Engine) RowCount() int {
	return e.grid.Rows()
}

// ColumnCount returns the number of columns of the current grid.
func (e *Engine) ColumnCount() int {
	return e.grid.Cols()
}

// ActiveColor returns the color used by the paint and fill commands.
func (e *Engine) ActiveColor() Color {
	return e.color
}

// Mode returns the current paint mode.
func (e *Engine) Mode() PaintMode {
	return e.mode
}

// Status returns the grid dimension in the "R: <rows> / C: <cols>" form.
func (e *Engine) Status() string {
	return fmt.Sprintf("R: %d / C: %d", e.RowCount(), e.ColumnCount())
}

// Swatch returns the styling of the active color swatch.
func (e *Engine) Swatch() Swatch {
	return Classify(e.color)
}

// SetActiveColor selects the color for the next paint operations and
// returns the recomputed swatch styling.
func (e *Engine) SetActiveColor(c Color) Swatch {
	e.color = c
	return Classify(c)
}

// SetPaintMode sets the paint mode.
func (e *Engine) SetPaintMode(m PaintMode) {
	e.mode = m
}

// TogglePaintMode switches between Single and Cross and returns the new mode.
func (e *Engine) TogglePaintMode() PaintMode {
	e.mode = e.mode.Toggle()
	return e.mode
}

// AddRow appends a row to the current grid.
func (e *Engine) AddRow() Grid {
	e.grid = e.grid.AddRow()
	return e.grid
}

// RemoveRow removes the last row of the current grid.
func (e *Engine) RemoveRow() Grid {
	e.grid = e.grid.RemoveRow()
	return e.grid
}

// AddColumn appends a column to the current grid.
func (e *Engine) AddColumn() Grid {
	e.grid = e.grid.AddColumn()
	return e.grid
}

// RemoveColumn removes the last column of the current grid.
func (e *Engine) RemoveColumn() Grid {
	e.grid = e.grid.RemoveColumn()
	return e.grid
}

// PaintCell paints the cell at (row, col) using the active color and paint mode.
// On invalid coordinates the current grid stays in place and the error is returned.
func (e *Engine) PaintCell(row, col int) (Grid, error) {
	g, err := e.grid.PaintCell(row, col, e.color, e.mode)
	if err != nil {
		return e.grid, err
	}
	e.grid = g
	return e.grid, nil
}

// FillAll paints every cell with the active color.
func (e *Engine) FillAll() Grid {
	e.grid = e.grid.FillAll(e.color)
	return e.grid
}

// FillUnpainted paints every Unpainted cell with the active color.
func (e *Engine) FillUnpainted() Grid {
	e.grid = e.grid.FillUnpainted(e.color)
	return e.grid
}

// ClearAll resets every cell of the current grid to Unpainted.
func (e *Engine) ClearAll() Grid {
	e.grid = e.grid.ClearAll()
	return e.grid
}
