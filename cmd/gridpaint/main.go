package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"gioui.org/app"
	"github.com/esimov/gridpaint"
	"github.com/esimov/gridpaint/gui"
	"github.com/esimov/gridpaint/imop"
	"github.com/esimov/gridpaint/utils"
)

const HelpBanner = `
┌─┐┬─┐┬┌┬┐┌─┐┌─┐┬┌┐┌┌┬┐
│ ┬├┬┘│ ││├─┘├─┤││││ │
└─┘┴└─┴─┴┘┴  ┴ ┴┴┘└┘ ┴

Grid painting scripts rendered into images.
    Version: %s

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	source      = flag.String("in", pipeName, "Source script, directory of scripts or URL")
	destination = flag.String("out", pipeName, "Destination image or directory")
	format      = flag.String("format", ".png", "Output image format used in directory mode")
	cellSize    = flag.Int("cell", gridpaint.DefaultCellSize, "Cell size in pixels")
	gridLines   = flag.Bool("lines", true, "Draw the grid lines")
	lineColor   = flag.String("line-color", "#cccccc", "Grid line color")
	bgColor     = flag.String("bg", "#ffffff", "Color of the unpainted cells")
	blendMode   = flag.String("blend", imop.Normal, "Blend mode of the grid lines")
	grayscale   = flag.Bool("gray", false, "Render the luminance of the cells to check the contrast")
	workers     = flag.Int("conc", runtime.NumCPU(), "Number of scripts to process concurrently")
	showGui     = flag.Bool("gui", false, "Open the interactive painter")
	width       = flag.Int("width", 1024, "Painter window width")
	height      = flag.Int("height", 768, "Painter window height")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showGui {
		runGui()
		return
	}

	renderer := gridpaint.NewRenderer()
	renderer.CellSize = *cellSize
	renderer.GridLines = *gridLines
	renderer.Grayscale = *grayscale
	renderer.Background = parseColor("bg", *bgColor).NRGBA()
	renderer.LineColor = parseColor("line-color", *lineColor).NRGBA()

	if !utils.Contains(imop.BlendModes, *blendMode) {
		log.Fatal(utils.DecorateText(fmt.Sprintf("Unsupported blend mode: %q\n", *blendMode), utils.ErrorMessage))
	}
	renderer.Blend = *blendMode

	proc := gridpaint.NewProcessor()
	proc.Renderer = renderer

	op := &gridpaint.Ops{
		Src:      *source,
		Dst:      *destination,
		PipeName: pipeName,
		Format:   *format,
		Workers:  *workers,
	}
	if err := proc.Execute(op); err != nil {
		log.Fatalf("%s%s",
			utils.DecorateText("\nError rendering the grid: ", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}
}

// runGui opens the painter window. When a source script is provided the
// session starts from the grid produced by the script.
func runGui() {
	e := gridpaint.NewEngine()
	if *source != pipeName {
		f, err := os.Open(*source)
		if err != nil {
			log.Fatal(utils.DecorateText(fmt.Sprintf("Unable to open the source script: %v\n", err), utils.ErrorMessage))
		}
		e, err = gridpaint.NewProcessor().RunScript(f)
		f.Close()
		if err != nil {
			log.Fatal(utils.DecorateText(fmt.Sprintf("Unable to run the source script: %v\n", err), utils.ErrorMessage))
		}
	}

	go func() {
		if err := gui.NewGUI(e, *width, *height).Run(); err != nil {
			log.Fatal(utils.DecorateText(fmt.Sprintf("Painter window error: %v\n", err), utils.ErrorMessage))
		}
		os.Exit(0)
	}()
	app.Main()
}

func parseColor(name, hex string) gridpaint.Color {
	c, err := gridpaint.ParseHex(hex)
	if err != nil {
		log.Fatal(utils.DecorateText(fmt.Sprintf("Invalid -%s flag: %v\n", name, err), utils.ErrorMessage))
	}
	return c
}
