package tui

import (
	"testing"

	"github.com/esimov/gridpaint"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*App, tcell.SimulationScreen) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	return New(screen, nil), screen
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func click(x, y int) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone)
}

func TestApp_StructuralKeys(t *testing.T) {
	assert := assert.New(t)
	app, _ := newTestApp(t)
	e := app.Engine()

	for _, r := range "rrc" {
		assert.False(app.HandleEvent(key(r)))
	}
	assert.Equal("R: 2 / C: 2", e.Status())

	app.HandleEvent(key('R'))
	assert.Equal("R: 1 / C: 2", e.Status())

	app.HandleEvent(key('C'))
	assert.Equal("R: 1 / C: 1", e.Status())

	app.HandleEvent(key('m'))
	assert.Equal(gridpaint.Cross, e.Mode())
	app.HandleEvent(key('m'))
	assert.Equal(gridpaint.Single, e.Mode())
}

func TestApp_FillKeys(t *testing.T) {
	assert := assert.New(t)
	app, _ := newTestApp(t)
	e := app.Engine()

	app.HandleEvent(key('r'))
	app.HandleEvent(key('c'))
	app.HandleEvent(click(0, gridTop))

	app.HandleEvent(key('1'))
	assert.Equal(gridpaint.Black, e.ActiveColor())

	app.HandleEvent(key('u'))
	want, err := gridpaint.FromCells([][]gridpaint.Cell{
		{gridpaint.Painted(gridpaint.Accent), gridpaint.Painted(gridpaint.Black)},
	})
	require.NoError(t, err)
	assert.True(want.Equal(e.CurrentGrid()))

	app.HandleEvent(key('x'))
	assert.True(gridpaint.NewGrid(1, 2).Equal(e.CurrentGrid()))

	app.HandleEvent(key('f'))
	assert.True(gridpaint.NewGrid(1, 2).FillAll(gridpaint.Black).Equal(e.CurrentGrid()))
}

func TestApp_Quit(t *testing.T) {
	app, _ := newTestApp(t)

	assert.True(t, app.HandleEvent(key('q')))
	assert.True(t, app.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.False(t, app.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
}

func TestApp_MouseClickPaintsCell(t *testing.T) {
	assert := assert.New(t)
	app, screen := newTestApp(t)
	e := app.Engine()

	app.HandleEvent(key('r'))
	app.HandleEvent(key('c'))

	// The second terminal column of a cell belongs to the same cell.
	app.HandleEvent(click(cellWidth+1, gridTop))

	cell, err := e.CurrentGrid().At(0, 1)
	require.NoError(t, err)
	assert.Equal(gridpaint.Painted(gridpaint.Accent), cell)

	cell, err = e.CurrentGrid().At(0, 0)
	require.NoError(t, err)
	assert.False(cell.IsPainted())

	app.Draw()

	_, _, style, _ := screen.GetContent(cellWidth, gridTop)
	_, bg, _ := style.Decompose()
	assert.Equal(tcell.NewRGBColor(0x00, 0x7b, 0xff), bg)

	r, _, _, _ := screen.GetContent(0, gridTop)
	assert.Equal('·', r)
}

func TestApp_ClickOutsideGrid(t *testing.T) {
	assert := assert.New(t)
	app, _ := newTestApp(t)
	e := app.Engine()

	app.HandleEvent(key('r'))
	before := e.CurrentGrid()

	app.HandleEvent(click(0, 0))
	app.HandleEvent(click(cellWidth*4, gridTop))
	app.HandleEvent(click(0, gridTop+3))
	app.HandleEvent(tcell.NewEventMouse(0, gridTop, tcell.ButtonNone, tcell.ModNone))

	assert.True(before.Equal(e.CurrentGrid()))
	assert.Empty(app.message)
}

func TestApp_CellAt(t *testing.T) {
	assert := assert.New(t)
	app, _ := newTestApp(t)

	_, _, ok := app.CellAt(0, gridTop)
	assert.False(ok)

	for _, r := range "rrcc" {
		app.HandleEvent(key(r))
	}

	row, col, ok := app.CellAt(5, gridTop+1)
	assert.True(ok)
	assert.Equal(1, row)
	assert.Equal(2, col)

	_, _, ok = app.CellAt(-1, gridTop)
	assert.False(ok)
	_, _, ok = app.CellAt(0, gridTop-1)
	assert.False(ok)
	_, _, ok = app.CellAt(3*cellWidth, gridTop)
	assert.False(ok)
}

func TestApp_StatusSwatch(t *testing.T) {
	assert := assert.New(t)
	app, screen := newTestApp(t)

	app.Draw()
	status := "R: 0 / C: 0  mode: single "
	x := len(status)

	r, _, _, _ := screen.GetContent(x, 0)
	assert.Equal(' ', r, "dark colors are not outlined")

	_, _, style, _ := screen.GetContent(x+2, 0)
	fg, bg, _ := style.Decompose()
	assert.Equal(tcell.NewRGBColor(0x00, 0x7b, 0xff), bg)
	assert.Equal(tcell.NewRGBColor(0xff, 0xff, 0xff), fg)

	// Select white from the palette.
	app.HandleEvent(key('2'))
	app.Draw()

	r, _, style, _ = screen.GetContent(x, 0)
	assert.Equal('[', r)
	fg, _, _ = style.Decompose()
	assert.Equal(tcell.NewRGBColor(0x00, 0x7b, 0xff), fg)

	r, _, _, _ = screen.GetContent(x+len(" #ffffff ")+1, 0)
	assert.Equal(']', r)

	_, _, style, _ = screen.GetContent(x+2, 0)
	fg, _, _ = style.Decompose()
	assert.Equal(tcell.NewRGBColor(0, 0, 0), fg)
}
