package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/esimov/gridpaint"
	"github.com/esimov/gridpaint/tui"
	"github.com/esimov/gridpaint/utils"
	"github.com/gdamore/tcell/v2"
)

const HelpBanner = `
┌─┐┬─┐┬┌┬┐┌┬┐┌─┐┬─┐┌┬┐
│ ┬├┬┘│ ││ │ ├┤ ├┬┘│││
└─┘┴└─┴─┴┘ ┴ └─┘┴└─┴ ┴

Grid painter for the terminal.
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	rows  = flag.Int("rows", 0, "Initial number of rows")
	cols  = flag.Int("cols", 0, "Initial number of columns")
	color = flag.String("color", gridpaint.DefaultColor.Hex(), "Initial active color")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	c, err := gridpaint.ParseHex(*color)
	if err != nil {
		log.Fatal(utils.DecorateText(fmt.Sprintf("Invalid -color flag: %v\n", err), utils.ErrorMessage))
	}
	e := gridpaint.NewEngineWithGrid(gridpaint.NewGrid(*rows, *cols))
	e.SetActiveColor(c)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(utils.DecorateText(fmt.Sprintf("Unable to create the screen: %v\n", err), utils.ErrorMessage))
	}
	if err := screen.Init(); err != nil {
		log.Fatal(utils.DecorateText(fmt.Sprintf("Unable to initialize the screen: %v\n", err), utils.ErrorMessage))
	}

	err = tui.New(screen, e).Run()
	screen.Fini()
	if err != nil {
		log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
	}
	fmt.Fprintln(os.Stderr, utils.Banner("GRIDTERM", e.Status(), utils.SuccessMessage))
}
