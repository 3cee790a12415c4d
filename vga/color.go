package vga

import (
	"fmt"
	"image/color"
)

// Color is one of the 16 standard text mode colors.
type Color uint8

// Standard colors.
const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGrey
	DarkGrey
	LightBlue
	LightGreen
	LightCyan
	LightRed
	LightMagenta
	LightBrown
	White
)

var colorNames = [...]string{
	"black",
	"blue",
	"green",
	"cyan",
	"red",
	"magenta",
	"brown",
	"light-grey",
	"dark-grey",
	"light-blue",
	"light-green",
	"light-cyan",
	"light-red",
	"light-magenta",
	"light-brown",
	"white",
}

// Palette is the default EGA palette, indexed by Color.
var Palette = color.Palette{
	color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	color.RGBA{R: 0x00, G: 0x00, B: 0xaa, A: 0xff},
	color.RGBA{R: 0x00, G: 0xaa, B: 0x00, A: 0xff},
	color.RGBA{R: 0x00, G: 0xaa, B: 0xaa, A: 0xff},
	color.RGBA{R: 0xaa, G: 0x00, B: 0x00, A: 0xff},
	color.RGBA{R: 0xaa, G: 0x00, B: 0xaa, A: 0xff},
	color.RGBA{R: 0xaa, G: 0x55, B: 0x00, A: 0xff},
	color.RGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff},
	color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff},
	color.RGBA{R: 0x55, G: 0x55, B: 0xff, A: 0xff},
	color.RGBA{R: 0x55, G: 0xff, B: 0x55, A: 0xff},
	color.RGBA{R: 0x55, G: 0xff, B: 0xff, A: 0xff},
	color.RGBA{R: 0xff, G: 0x55, B: 0x55, A: 0xff},
	color.RGBA{R: 0xff, G: 0x55, B: 0xff, A: 0xff},
	color.RGBA{R: 0xff, G: 0xff, B: 0x55, A: 0xff},
	color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
}

// Model converts any color to the nearest text mode Color.
var Model color.Model = color.ModelFunc(model)

func (c Color) RGBA() (r, g, b, a uint32) {
	return Palette[c&0x0f].RGBA()
}

func (c Color) String() string {
	return colorNames[c&0x0f]
}

func model(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	return Color(Palette.Index(c))
}

// ParseColor returns the Color for a name as returned by [Color.String].
func ParseColor(name string) (Color, error) {
	for i, n := range colorNames {
		if n == name {
			return Color(i), nil
		}
	}
	return Black, fmt.Errorf("vga: unknown color %q", name)
}
