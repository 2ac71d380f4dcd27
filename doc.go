/*
Package gridpaint is a grid painting library: a resizable two dimensional grid of cells
which can be painted one by one or in a cross pattern with the active color, filled in bulk and cleared.
Every operation returns a new immutable grid snapshot, which makes the engine trivial to test
and to share between the front ends.

The package also provides a command line interface which runs grid scripts and renders the
resulting grid into an image file, and an interactive painter with a Gio based GUI.
To check the supported commands type:

	$ gridpaint --help

A grid script contains one command per line:

	add-row
	add-column
	color #ff0000
	paint 0 0
	fill-unpainted #ffffff

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"
		"github.com/esimov/gridpaint"
	)

	func main() {
		e := gridpaint.NewEngine()
		e.AddRow()
		e.AddColumn()
		e.SetActiveColor(gridpaint.MustParseHex("#ff0000"))

		g, err := e.PaintCell(0, 0)
		if err != nil {
			fmt.Printf("Error painting the cell: %s", err.Error())
		}
		fmt.Println(g)
	}
*/
package gridpaint
