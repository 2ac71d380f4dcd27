// Package gui implements the interactive grid painter on top of the Gio toolkit.
package gui

import (
	"image/color"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/esimov/gridpaint"
	"github.com/esimov/gridpaint/utils"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

const (
	maxScreenX = 1366
	maxScreenY = 768

	// paletteSize is the number of preset swatches shown next to the hex editor.
	paletteSize = 10
)

var (
	defaultBkgColor  = color.NRGBA{R: 0xf8, G: 0xf9, B: 0xfa, A: 0xff}
	defaultLineColor = color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
	defaultErrColor  = color.NRGBA{R: 0xdc, G: 0x35, B: 0x45, A: 0xff}
)

// Gui is the basic struct containing all of the information needed for the UI operation.
// The painting session is owned by the Gui, which forwards every user action to the engine.
type Gui struct {
	cfg struct {
		window struct {
			w     float32
			h     float32
			title string
		}
		cellSize unit.Dp
		color    struct {
			background color.NRGBA
			line       color.NRGBA
		}
	}
	engine *gridpaint.Engine
	theme  *material.Theme

	menu struct {
		addRow, addCol       widget.Clickable
		removeRow, removeCol widget.Clickable
		fillAll, fillEmpty   widget.Clickable
		clear, mode          widget.Clickable
	}
	editor   widget.Editor
	palette  []gridpaint.Color
	swatches []widget.Clickable
	picker   widget.Clickable
	cells    [][]widget.Clickable
	rows     layout.List

	// message holds the last error shown in the menu row.
	message string
}

// NewGUI initializes the Gio interface for the painting session.
func NewGUI(e *gridpaint.Engine, w, h int) *Gui {
	if e == nil {
		e = gridpaint.NewEngine()
	}
	gui := &Gui{
		engine:  e,
		theme:   material.NewTheme(gofont.Collection()),
		palette: gridpaint.Palette(paletteSize),
	}
	gui.swatches = make([]widget.Clickable, len(gui.palette))
	gui.editor = widget.Editor{SingleLine: true, Submit: true}
	gui.editor.SetText(e.ActiveColor().Hex())
	gui.rows.Axis = layout.Vertical
	gui.initWindow(w, h)

	return gui
}

// initWindow initializes the window configuration.
func (g *Gui) initWindow(w, h int) {
	g.cfg.window.w, g.cfg.window.h = g.getWindowSize(float32(w), float32(h))
	g.cfg.window.title = "Grid painter"
	g.cfg.cellSize = unit.Dp(gridpaint.DefaultCellSize)

	g.cfg.color.background = defaultBkgColor
	g.cfg.color.line = defaultLineColor
}

// getWindowSize caps the window size to the predefined screen size.
func (g *Gui) getWindowSize(w, h float32) (float32, float32) {
	return utils.Min(w, maxScreenX), utils.Min(h, maxScreenY)
}

// Run is the core method of the Gio GUI application.
// It redraws the window on every frame event and terminates
// when the window is closed or the Escape key is pressed.
func (g *Gui) Run() error {
	w := app.NewWindow(app.Title(g.cfg.window.title), app.Size(
		unit.Dp(g.cfg.window.w),
		unit.Dp(g.cfg.window.h),
	))

	var ops op.Ops
	for e := range w.Events() {
		switch e := e.(type) {
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			g.update()
			g.draw(gtx)
			e.Frame(gtx.Ops)
		case key.Event:
			switch e.Name {
			case key.NameEscape:
				w.Perform(system.ActionClose)
			}
		case system.DestroyEvent:
			return e.Err
		}
	}
	return nil
}

// update forwards the click and submit events collected since the last frame to the engine.
func (g *Gui) update() {
	e := g.engine

	switch {
	case g.menu.addRow.Clicked():
		e.AddRow()
	case g.menu.addCol.Clicked():
		e.AddColumn()
	case g.menu.removeRow.Clicked():
		e.RemoveRow()
	case g.menu.removeCol.Clicked():
		e.RemoveColumn()
	case g.menu.fillAll.Clicked():
		e.FillAll()
	case g.menu.fillEmpty.Clicked():
		e.FillUnpainted()
	case g.menu.clear.Clicked():
		e.ClearAll()
	case g.menu.mode.Clicked():
		e.TogglePaintMode()
	}

	for _, ev := range g.editor.Events() {
		if s, ok := ev.(widget.SubmitEvent); ok {
			g.selectHex(s.Text)
		}
	}
	if g.picker.Clicked() {
		g.selectHex(g.editor.Text())
	}
	for i := range g.swatches {
		if g.swatches[i].Clicked() {
			g.selectColor(g.palette[i])
		}
	}

	for row := range g.cells {
		for col := range g.cells[row] {
			if !g.cells[row][col].Clicked() {
				continue
			}
			if _, err := e.PaintCell(row, col); err != nil {
				g.message = err.Error()
			}
		}
	}
	g.syncCells()
}

// selectHex activates the color typed into the hex editor.
func (g *Gui) selectHex(s string) {
	c, err := gridpaint.ParseHex(s)
	if err != nil {
		g.message = err.Error()
		return
	}
	g.selectColor(c)
}

func (g *Gui) selectColor(c gridpaint.Color) {
	g.engine.SetActiveColor(c)
	g.editor.SetText(c.Hex())
	g.message = ""
}

// syncCells keeps one clickable per grid cell.
func (g *Gui) syncCells() {
	rows, cols := g.engine.RowCount(), g.engine.ColumnCount()
	if len(g.cells) == rows && (rows == 0 || len(g.cells[0]) == cols) {
		return
	}
	cells := make([][]widget.Clickable, rows)
	for i := range cells {
		cells[i] = make([]widget.Clickable, cols)
	}
	g.cells = cells
}
