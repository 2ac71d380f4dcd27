package tui

import (
	"fmt"

	"github.com/esimov/gridpaint"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const helpLine = "r/R row  c/C column  m mode  f fill  u unpainted  x clear  1-9 color  q quit"

var (
	unpaintedStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	errorStyle     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	helpStyle      = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
)

// Draw renders the status line, the palette and the grid.
func (a *App) Draw() {
	a.screen.Clear()

	x := a.drawStatus(0)
	if a.message != "" {
		a.drawText(x+1, 0, a.message, errorStyle)
	}
	a.drawPalette(1)
	a.drawText(0, 2, helpLine, helpStyle)
	a.drawGrid()

	a.screen.Show()
}

// drawStatus draws the grid dimension, the paint mode and the active color swatch.
// It returns the screen column after the last drawn character.
func (a *App) drawStatus(y int) int {
	e := a.engine
	x := a.drawText(0, y, fmt.Sprintf("%s  mode: %-6s ", e.Status(), e.Mode()), tcell.StyleDefault)
	return a.drawSwatch(x, y, e.Swatch())
}

// drawSwatch draws the active color with the classifier's text color.
// Light colors are framed by brackets in the outline color.
func (a *App) drawSwatch(x, y int, sw gridpaint.Swatch) int {
	left, right := ' ', ' '
	frame := tcell.StyleDefault
	if sw.Outline {
		left, right = '[', ']'
		frame = frame.Foreground(toColor(sw.OutlineColor))
	}
	style := tcell.StyleDefault.
		Background(toColor(sw.Background)).
		Foreground(toColor(sw.Text))

	x = a.drawText(x, y, string(left), frame)
	x = a.drawText(x, y, " "+sw.Background.Hex()+" ", style)
	return a.drawText(x, y, string(right), frame)
}

// drawPalette draws the colors selectable with the digit keys.
func (a *App) drawPalette(y int) {
	x := 0
	for i, c := range a.palette {
		sw := gridpaint.Classify(c)
		style := tcell.StyleDefault.
			Background(toColor(c)).
			Foreground(toColor(sw.Text))
		x = a.drawText(x, y, fmt.Sprintf(" %d ", i+1), style)
		x++
	}
}

// drawGrid draws every cell as cellWidth terminal columns.
func (a *App) drawGrid() {
	g := a.engine.CurrentGrid()
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			cell, err := g.At(row, col)
			if err != nil {
				continue
			}
			x, y := col*cellWidth, gridTop+row
			if c, ok := cell.Color(); ok {
				style := tcell.StyleDefault.Background(toColor(c))
				for i := 0; i < cellWidth; i++ {
					a.screen.SetContent(x+i, y, ' ', nil, style)
				}
				continue
			}
			a.screen.SetContent(x, y, '·', nil, unpaintedStyle)
			for i := 1; i < cellWidth; i++ {
				a.screen.SetContent(x+i, y, ' ', nil, unpaintedStyle)
			}
		}
	}
}

// drawText writes s starting at (x, y) and returns the column after the last character.
func (a *App) drawText(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		a.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

func toColor(c gridpaint.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
