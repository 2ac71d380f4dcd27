package gridpaint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Defaults(t *testing.T) {
	e := NewEngine()

	assert.True(t, e.CurrentGrid().IsEmpty())
	assert.Equal(t, Accent, e.ActiveColor())
	assert.Equal(t, Single, e.Mode())
	assert.Equal(t, "R: 0 / C: 0", e.Status())
	assert.Equal(t, Classify(Accent), e.Swatch())
}

func TestEngine_EndToEnd(t *testing.T) {
	e := NewEngine()

	g := e.AddRow()
	assert.Equal(t, 1, g.Rows())
	assert.Equal(t, 1, g.Cols())

	g = e.AddColumn()
	assert.Equal(t, 1, g.Rows())
	assert.Equal(t, 2, g.Cols())

	e.SetActiveColor(MustParseHex("#FF0000"))
	g, err := e.PaintCell(0, 0)
	require.NoError(t, err)

	want := mustGrid(t, [][]Cell{{Painted(red), Unpainted}})
	assert.True(t, want.Equal(g))
	assert.True(t, want.Equal(e.CurrentGrid()))
	assert.Equal(t, "#ff0000| ", e.CurrentGrid().String())
}

func TestEngine_Counts(t *testing.T) {
	e := NewEngine()
	e.AddRow()
	e.AddRow()
	e.AddColumn()
	e.AddColumn()

	assert.Equal(t, 2, e.RowCount())
	assert.Equal(t, 3, e.ColumnCount())
	assert.Equal(t, "R: 2 / C: 3", e.Status())

	e.RemoveColumn()
	e.RemoveRow()
	assert.Equal(t, "R: 1 / C: 2", e.Status())

	e.RemoveColumn()
	e.RemoveColumn()
	assert.True(t, e.CurrentGrid().IsEmpty())
	assert.Equal(t, "R: 0 / C: 0", e.Status())
}

func TestEngine_PaintCellKeepsGridOnError(t *testing.T) {
	e := NewEngineWithGrid(NewGrid(2, 2))
	before := e.CurrentGrid()

	g, err := e.PaintCell(2, 0)
	assert.ErrorIs(t, err, ErrInvalidIndex)
	assert.True(t, before.Equal(g))
	assert.True(t, before.Equal(e.CurrentGrid()))
}

func TestEngine_PaintModes(t *testing.T) {
	e := NewEngineWithGrid(NewGrid(3, 3))

	assert.Equal(t, Cross, e.TogglePaintMode())
	g, err := e.PaintCell(1, 1)
	require.NoError(t, err)

	cell, _ := g.At(0, 1)
	assert.Equal(t, Painted(Accent), cell)
	cell, _ = g.At(1, 0)
	assert.Equal(t, Painted(Accent), cell)
	cell, _ = g.At(0, 0)
	assert.Equal(t, Unpainted, cell)

	assert.Equal(t, Single, e.TogglePaintMode())
	e.SetPaintMode(Cross)
	assert.Equal(t, Cross, e.Mode())
}

func TestEngine_SetActiveColorReturnsSwatch(t *testing.T) {
	e := NewEngine()

	sw := e.SetActiveColor(White)
	assert.True(t, sw.Outline)
	assert.Equal(t, Accent, sw.OutlineColor)
	assert.Equal(t, Black, sw.Text)
	assert.Equal(t, White, e.ActiveColor())

	sw = e.SetActiveColor(Black)
	assert.False(t, sw.Outline)
	assert.Equal(t, White, sw.Text)
	assert.Equal(t, sw, e.Swatch())
}

func TestEngine_BulkOperations(t *testing.T) {
	e := NewEngineWithGrid(NewGrid(2, 2))
	_, err := e.PaintCell(0, 0)
	require.NoError(t, err)

	e.SetActiveColor(red)
	g := e.FillUnpainted()
	want := mustGrid(t, [][]Cell{{Painted(Accent), Painted(red)}, {Painted(red), Painted(red)}})
	assert.True(t, want.Equal(g))

	g = e.ClearAll()
	assert.True(t, NewGrid(2, 2).Equal(g))

	g = e.FillAll()
	assert.True(t, NewGrid(2, 2).FillAll(red).Equal(g))
}

func TestEngine_SessionsAreIndependent(t *testing.T) {
	e1, e2 := NewEngine(), NewEngine()
	e1.AddRow()
	e1.SetActiveColor(red)

	assert.True(t, e2.CurrentGrid().IsEmpty())
	assert.Equal(t, Accent, e2.ActiveColor())
}
