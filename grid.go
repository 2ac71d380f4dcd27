package gridpaint

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidIndex is matched by the errors returned for out of range cell coordinates.
	ErrInvalidIndex = errors.New("cell index out of range")
	// ErrNotRectangular is returned when building a grid from rows of different length.
	ErrNotRectangular = errors.New("grid rows must have equal length")
)

// IndexError reports a cell coordinate outside of the grid extent.
type IndexError struct {
	Row, Col   int
	Rows, Cols int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("cell (%d, %d) out of range for a %dx%d grid", e.Row, e.Col, e.Rows, e.Cols)
}

// Is makes errors.Is(err, ErrInvalidIndex) hold for every IndexError.
func (e *IndexError) Is(target error) bool {
	return target == ErrInvalidIndex
}

// Grid is an immutable, rectangular snapshot of cell values.
// Every operation which modifies the grid returns a new Grid and leaves
// the receiver untouched, so snapshots can be compared and kept around safely.
// The zero value is the empty grid.
type Grid struct {
	cells [][]Cell
}

// NewGrid returns a grid with the given dimension filled with Unpainted cells.
// A non-positive row or column count yields the empty grid.
func NewGrid(rows, cols int) Grid {
	if rows <= 0 || cols <= 0 {
		return Grid{}
	}
	cells := make([][]Cell, rows)
	for i := range cells {
		cells[i] = make([]Cell, cols)
	}
	return Grid{cells: cells}
}

// FromCells builds a grid from a copy of the provided rows.
// Rows of zero length are normalized to the empty grid.
func FromCells(rows [][]Cell) (Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		for _, row := range rows {
			if len(row) != 0 {
				return Grid{}, ErrNotRectangular
			}
		}
		return Grid{}, nil
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return Grid{}, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrNotRectangular, i, len(row), width)
		}
	}
	return Grid{cells: copyCells(rows)}, nil
}

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return len(g.cells)
}

// Cols returns the number of columns. The empty grid has zero columns.
func (g Grid) Cols() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

// IsEmpty reports whether the grid has no cells.
func (g Grid) IsEmpty() bool {
	return len(g.cells) == 0
}

// At returns the cell value at the given coordinate.
func (g Grid) At(row, col int) (Cell, error) {
	if err := g.checkIndex(row, col); err != nil {
		return Unpainted, err
	}
	return g.cells[row][col], nil
}

// Cells returns a deep copy of the grid rows.
func (g Grid) Cells() [][]Cell {
	return copyCells(g.cells)
}

// Equal reports whether both grids have the same dimension and cell values.
func (g Grid) Equal(o Grid) bool {
	if g.Rows() != o.Rows() || g.Cols() != o.Cols() {
		return false
	}
	for i := range g.cells {
		for j := range g.cells[i] {
			if g.cells[i][j] != o.cells[i][j] {
				return false
			}
		}
	}
	return true
}

// String renders the grid one row per line, cells separated by a vertical bar.
func (g Grid) String() string {
	var sb strings.Builder
	for i, row := range g.cells {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, cell := range row {
			if j > 0 {
				sb.WriteByte('|')
			}
			sb.WriteString(cell.String())
		}
	}
	return sb.String()
}

// AddRow appends a row of Unpainted cells. On the empty grid it returns a 1x1 grid.
func (g Grid) AddRow() Grid {
	if g.IsEmpty() {
		return NewGrid(1, 1)
	}
	cells := make([][]Cell, 0, g.Rows()+1)
	cells = append(cells, copyCells(g.cells)...)
	cells = append(cells, make([]Cell, g.Cols()))

	return Grid{cells: cells}
}

// RemoveRow drops the last row. The empty grid is returned unchanged.
func (g Grid) RemoveRow() Grid {
	if g.IsEmpty() {
		return g
	}
	return Grid{cells: copyCells(g.cells[:g.Rows()-1])}
}

// AddColumn appends an Unpainted cell to every row. On the empty grid it returns a 1x1 grid.
func (g Grid) AddColumn() Grid {
	if g.IsEmpty() {
		return NewGrid(1, 1)
	}
	cells := make([][]Cell, g.Rows())
	for i, row := range g.cells {
		cells[i] = make([]Cell, len(row), len(row)+1)
		copy(cells[i], row)
		cells[i] = append(cells[i], Unpainted)
	}
	return Grid{cells: cells}
}

// RemoveColumn drops the last cell of every row. The empty grid is returned unchanged.
// When the last column is removed the grid collapses to the empty grid instead of
// keeping rows of zero length.
func (g Grid) RemoveColumn() Grid {
	if g.IsEmpty() {
		return g
	}
	width := g.Cols() - 1
	if width == 0 {
		return Grid{}
	}
	cells := make([][]Cell, g.Rows())
	for i, row := range g.cells {
		cells[i] = make([]Cell, width)
		copy(cells[i], row[:width])
	}
	return Grid{cells: cells}
}

// PaintCell paints the cell at (row, col) with c. In Cross mode every cell sharing
// the row or the column of the target is painted as well.
// Out of range coordinates are rejected with an *IndexError and the grid is returned unchanged.
func (g Grid) PaintCell(row, col int, c Color, mode PaintMode) (Grid, error) {
	if err := g.checkIndex(row, col); err != nil {
		return g, err
	}
	cells := copyCells(g.cells)
	cell := Painted(c)

	switch mode {
	case Cross:
		for j := range cells[row] {
			cells[row][j] = cell
		}
		for i := range cells {
			cells[i][col] = cell
		}
	default:
		cells[row][col] = cell
	}
	return Grid{cells: cells}, nil
}

// FillAll paints every cell with c.
func (g Grid) FillAll(c Color) Grid {
	return g.mapCells(func(Cell) Cell {
		return Painted(c)
	})
}

// FillUnpainted paints every Unpainted cell with c and leaves painted cells as they are.
func (g Grid) FillUnpainted(c Color) Grid {
	return g.mapCells(func(cell Cell) Cell {
		if cell.IsPainted() {
			return cell
		}
		return Painted(c)
	})
}

// ClearAll resets every cell to Unpainted.
func (g Grid) ClearAll() Grid {
	return g.mapCells(func(Cell) Cell {
		return Unpainted
	})
}

// mapCells returns a new grid with fn applied over each cell.
func (g Grid) mapCells(fn func(Cell) Cell) Grid {
	if g.IsEmpty() {
		return g
	}
	cells := make([][]Cell, g.Rows())
	for i, row := range g.cells {
		cells[i] = make([]Cell, len(row))
		for j, cell := range row {
			cells[i][j] = fn(cell)
		}
	}
	return Grid{cells: cells}
}

func (g Grid) checkIndex(row, col int) error {
	if row < 0 || row >= g.Rows() || col < 0 || col >= g.Cols() {
		return &IndexError{Row: row, Col: col, Rows: g.Rows(), Cols: g.Cols()}
	}
	return nil
}

// copyCells returns a deep copy of the rows, so no two snapshots share row storage.
func copyCells(src [][]Cell) [][]Cell {
	if len(src) == 0 {
		return nil
	}
	dst := make([][]Cell, len(src))
	for i, row := range src {
		dst[i] = make([]Cell, len(row))
		copy(dst[i], row)
	}
	return dst
}
