package gui

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/esimov/gridpaint"
)

// draw lays out the menu row, the color row and the grid of cells.
func (g *Gui) draw(gtx C) D {
	paint.Fill(gtx.Ops, g.cfg.color.background)

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(g.drawMenu),
		layout.Rigid(g.drawColorRow),
		layout.Flexed(1, g.drawGrid),
	)
}

// drawMenu draws the status label together with the structural and fill buttons.
func (g *Gui) drawMenu(gtx C) D {
	e := g.engine
	mode := "Mode: " + e.Mode().String()

	children := []layout.FlexChild{
		layout.Rigid(func(gtx C) D {
			return layout.UniformInset(unit.Dp(8)).Layout(gtx,
				material.Body1(g.theme, e.Status()).Layout,
			)
		}),
		g.button(&g.menu.addRow, "Add Row"),
		g.button(&g.menu.addCol, "Add Column"),
		g.button(&g.menu.removeRow, "Remove Row"),
		g.button(&g.menu.removeCol, "Remove Column"),
		g.button(&g.menu.fillAll, "Fill All"),
		g.button(&g.menu.fillEmpty, "Fill Unpainted"),
		g.button(&g.menu.clear, "Clear"),
		g.button(&g.menu.mode, mode),
	}
	if g.message != "" {
		children = append(children, layout.Rigid(func(gtx C) D {
			lbl := material.Body2(g.theme, g.message)
			lbl.Color = defaultErrColor
			return layout.UniformInset(unit.Dp(8)).Layout(gtx, lbl.Layout)
		}))
	}
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx, children...)
}

// button returns a menu button styled with the accent color.
func (g *Gui) button(btn *widget.Clickable, txt string) layout.FlexChild {
	return layout.Rigid(func(gtx C) D {
		return layout.UniformInset(unit.Dp(4)).Layout(gtx, func(gtx C) D {
			b := material.Button(g.theme, btn, txt)
			b.Background = gridpaint.Accent.NRGBA()
			b.Color = gridpaint.White.NRGBA()
			return b.Layout(gtx)
		})
	})
}

// drawColorRow draws the hex editor, the Pick Color swatch and the palette.
func (g *Gui) drawColorRow(gtx C) D {
	children := []layout.FlexChild{
		layout.Rigid(func(gtx C) D {
			return layout.UniformInset(unit.Dp(4)).Layout(gtx, func(gtx C) D {
				return widget.Border{
					Color: g.cfg.color.line,
					Width: unit.Dp(1),
				}.Layout(gtx, func(gtx C) D {
					width := gtx.Dp(unit.Dp(96))
					gtx.Constraints.Min.X, gtx.Constraints.Max.X = width, width
					return layout.UniformInset(unit.Dp(6)).Layout(gtx,
						material.Editor(g.theme, &g.editor, "#rrggbb").Layout,
					)
				})
			})
		}),
		layout.Rigid(g.drawPicker),
	}
	for i := range g.palette {
		i := i
		children = append(children, layout.Rigid(func(gtx C) D {
			return layout.UniformInset(unit.Dp(4)).Layout(gtx, func(gtx C) D {
				return g.swatches[i].Layout(gtx, func(gtx C) D {
					return g.drawSwatch(gtx, gridpaint.Classify(g.palette[i]), unit.Dp(24), "")
				})
			})
		}))
	}
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx, children...)
}

// drawPicker draws the active color swatch. The text color and the outline
// are decided by the luminance of the active color.
func (g *Gui) drawPicker(gtx C) D {
	return layout.UniformInset(unit.Dp(4)).Layout(gtx, func(gtx C) D {
		return g.picker.Layout(gtx, func(gtx C) D {
			return g.drawSwatch(gtx, g.engine.Swatch(), unit.Dp(32), "Pick Color")
		})
	})
}

// drawSwatch fills a rectangle with the swatch background and frames it when an outline is required.
func (g *Gui) drawSwatch(gtx C, sw gridpaint.Swatch, height unit.Dp, txt string) D {
	fill := func(gtx C) D {
		size := image.Pt(gtx.Dp(height), gtx.Dp(height))
		if txt != "" {
			size.X = gtx.Dp(unit.Dp(96))
		}
		paint.FillShape(gtx.Ops, sw.Background.NRGBA(), clip.Rect{Max: size}.Op())

		if txt != "" {
			gtx.Constraints = layout.Exact(size)
			layout.Center.Layout(gtx, func(gtx C) D {
				lbl := material.Body2(g.theme, txt)
				lbl.Color = sw.Text.NRGBA()
				return lbl.Layout(gtx)
			})
		}
		return D{Size: size}
	}
	if !sw.Outline {
		return fill(gtx)
	}
	return widget.Border{
		Color: sw.OutlineColor.NRGBA(),
		Width: unit.Dp(2),
	}.Layout(gtx, fill)
}

// drawGrid draws the grid of clickable cells, one row per list element.
func (g *Gui) drawGrid(gtx C) D {
	grid := g.engine.CurrentGrid()
	if grid.IsEmpty() {
		return layout.Center.Layout(gtx,
			material.Body1(g.theme, "Add a row or a column to start painting").Layout,
		)
	}
	return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx C) D {
		return g.rows.Layout(gtx, grid.Rows(), func(gtx C, row int) D {
			children := make([]layout.FlexChild, grid.Cols())
			for col := range children {
				col := col
				cell, _ := grid.At(row, col)
				children[col] = layout.Rigid(func(gtx C) D {
					return g.cells[row][col].Layout(gtx, func(gtx C) D {
						return g.drawCell(gtx, cell)
					})
				})
			}
			return layout.Flex{}.Layout(gtx, children...)
		})
	})
}

// drawCell paints a single cell with its color and a thin separator border.
func (g *Gui) drawCell(gtx C, cell gridpaint.Cell) D {
	bg := g.cfg.color.background
	if c, ok := cell.Color(); ok {
		bg = c.NRGBA()
	}
	return widget.Border{
		Color: g.cfg.color.line,
		Width: unit.Dp(1),
	}.Layout(gtx, func(gtx C) D {
		size := gtx.Dp(g.cfg.cellSize)
		rect := image.Pt(size, size)
		paint.FillShape(gtx.Ops, bg, clip.Rect{Max: rect}.Op())
		return D{Size: rect}
	})
}
