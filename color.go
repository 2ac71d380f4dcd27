package gridpaint

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned when a color is not a fixed-width #rrggbb hex triplet.
var ErrInvalidColor = errors.New("invalid color")

// blank is the serialized form of an unpainted cell.
const blank = " "

// Color is a fully opaque RGB color.
type Color struct {
	R, G, B uint8
}

// Predefined colors used across the package.
var (
	Black  = Color{R: 0x00, G: 0x00, B: 0x00}
	White  = Color{R: 0xff, G: 0xff, B: 0xff}
	Accent = Color{R: 0x00, G: 0x7b, B: 0xff}
)

// ParseHex parses a "#rrggbb" color. Short forms and named colors are rejected.
func ParseHex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if len(s) != 7 || s[0] != '#' || !isHex(s[1:]) {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	r, g, b := c.RGB255()

	return Color{R: r, G: g, B: b}, nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// It should be used only for compile time constants.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the lower case "#rrggbb" form of the color.
func (c Color) Hex() string {
	return c.colorful().Hex()
}

// String implements the fmt.Stringer interface.
func (c Color) String() string {
	return c.Hex()
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA converts the color to an opaque color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// isHex reports whether s consists of hexadecimal digits only.
func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// Cell holds the value of a single grid cell: either Unpainted or a Color.
// The zero value is Unpainted.
type Cell struct {
	color   Color
	painted bool
}

// Unpainted marks a cell that has not been assigned a color yet.
var Unpainted = Cell{}

// Painted returns a cell holding c.
func Painted(c Color) Cell {
	return Cell{color: c, painted: true}
}

// IsPainted reports whether the cell holds a color.
func (c Cell) IsPainted() bool {
	return c.painted
}

// Color returns the cell color and whether the cell is painted at all.
func (c Cell) Color() (Color, bool) {
	return c.color, c.painted
}

// String returns "#rrggbb" for painted cells and a single blank otherwise.
func (c Cell) String() string {
	if !c.painted {
		return blank
	}
	return c.color.Hex()
}

// ParseCell is the inverse of Cell.String.
func ParseCell(s string) (Cell, error) {
	if s == blank || s == "" {
		return Unpainted, nil
	}
	col, err := ParseHex(s)
	if err != nil {
		return Unpainted, err
	}
	return Painted(col), nil
}
