// Package tui implements the grid painter on a terminal screen.
// Mouse clicks paint the cells, the keyboard drives the structural and fill commands.
package tui

import (
	"github.com/esimov/gridpaint"
	"github.com/gdamore/tcell/v2"
)

const (
	// cellWidth is the number of terminal columns used by a grid cell.
	cellWidth = 2
	// gridTop is the screen line of the first grid row.
	gridTop = 3
	// paletteSize is the number of colors selectable with the digit keys.
	paletteSize = 9
)

// App is a terminal painting session.
type App struct {
	screen  tcell.Screen
	engine  *gridpaint.Engine
	palette []gridpaint.Color
	// message holds the last error shown on the status line.
	message string
}

// New creates an App drawing on an initialized screen.
func New(s tcell.Screen, e *gridpaint.Engine) *App {
	if e == nil {
		e = gridpaint.NewEngine()
	}
	return &App{
		screen:  s,
		engine:  e,
		palette: gridpaint.Palette(paletteSize),
	}
}

// Engine returns the session driven by the App.
func (a *App) Engine() *gridpaint.Engine {
	return a.engine
}

// Run draws the screen and handles the incoming events until the user quits.
func (a *App) Run() error {
	a.screen.EnableMouse()
	for {
		a.Draw()
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if a.HandleEvent(ev) {
			return nil
		}
	}
}

// HandleEvent applies a terminal event to the session. It returns true when the user asked to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return false
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}

	e := a.engine
	a.message = ""

	switch r := ev.Rune(); r {
	case 'q':
		return true
	case 'r':
		e.AddRow()
	case 'R':
		e.RemoveRow()
	case 'c':
		e.AddColumn()
	case 'C':
		e.RemoveColumn()
	case 'm':
		e.TogglePaintMode()
	case 'f':
		e.FillAll()
	case 'u':
		e.FillUnpainted()
	case 'x':
		e.ClearAll()
	default:
		if r >= '1' && r <= '9' {
			if i := int(r - '1'); i < len(a.palette) {
				e.SetActiveColor(a.palette[i])
			}
		}
	}
	return false
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		return
	}
	row, col, ok := a.CellAt(ev.Position())
	if !ok {
		return
	}
	if _, err := a.engine.PaintCell(row, col); err != nil {
		a.message = err.Error()
		return
	}
	a.message = ""
}

// CellAt converts a screen position into grid coordinates.
func (a *App) CellAt(x, y int) (row, col int, ok bool) {
	if x < 0 || y < gridTop {
		return 0, 0, false
	}
	row, col = y-gridTop, x/cellWidth
	if row >= a.engine.RowCount() || col >= a.engine.ColumnCount() {
		return 0, 0, false
	}
	return row, col, true
}
