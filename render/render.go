// Package render rasterizes a text mode frame buffer into an image.
//
// Glyphs are drawn from a TrueType font (Go Mono unless configured otherwise),
// cell bytes are interpreted as code page 437 like the VGA character ROM.
package render

import (
	"errors"
	"image"
	"image/color"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/encoding/charmap"

	"github.com/BeatGlow/console/framebuffer"
	"github.com/BeatGlow/console/vga"
)

// Errors
var (
	ErrNoAdvance = errors.New("render: font has no glyph advance for 'M'")
)

// cursorHeight is the underline cursor height in pixels.
const cursorHeight = 2

// Options for a Renderer.
type Options struct {
	// Font is a TrueType font, nil uses Go Mono.
	Font []byte

	// Size is the font size in points.
	Size float64

	// DPI is the rendering resolution.
	DPI float64

	// Palette maps the 16 text mode colors, nil uses vga.Palette.
	Palette color.Palette
}

// DefaultOptions are the default rendering options.
var DefaultOptions = Options{
	Size: 14,
	DPI:  72,
}

// Renderer draws cells with a fixed cell size.
type Renderer struct {
	face    font.Face
	palette color.Palette
	cell    image.Point
	ascent  int
}

// New loads the font and measures the cell size.
func New(opts *Options) (*Renderer, error) {
	if opts == nil {
		opts = new(Options)
		*opts = DefaultOptions
	}
	if opts.Size == 0 {
		opts.Size = DefaultOptions.Size
	}
	if opts.DPI == 0 {
		opts.DPI = DefaultOptions.DPI
	}

	ttf := opts.Font
	if ttf == nil {
		ttf = gomono.TTF
	}
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}

	face := truetype.NewFace(f, &truetype.Options{
		Size:    opts.Size,
		DPI:     opts.DPI,
		Hinting: font.HintingFull,
	})
	advance, ok := face.GlyphAdvance('M')
	if !ok {
		return nil, ErrNoAdvance
	}

	r := &Renderer{
		face:    face,
		palette: opts.Palette,
		ascent:  face.Metrics().Ascent.Ceil(),
	}
	r.cell = image.Pt(advance.Ceil(), face.Metrics().Height.Ceil())
	if len(r.palette) < 16 {
		r.palette = vga.Palette
	}
	return r, nil
}

// CellSize is the size of one cell in pixels.
func (r *Renderer) CellSize() image.Point {
	return r.cell
}

// Render draws cols x rows cells of buf. The cell at the linear position
// cursor gets an underline, a negative cursor draws none.
func (r *Renderer) Render(buf framebuffer.Buffer, cols, rows, cursor int) *image.RGBA {
	var (
		img = image.NewRGBA(image.Rect(0, 0, cols*r.cell.X, rows*r.cell.Y))
		d   = &font.Drawer{Dst: img, Face: r.face}
	)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			var (
				cell = buf.At(y*cols + x)
				attr = cell.Attr()
				at   = image.Pt(x*r.cell.X, y*r.cell.Y)
				box  = image.Rectangle{Min: at, Max: at.Add(r.cell)}
			)
			draw.Draw(img, box, image.NewUniform(r.palette[attr.Background()]), image.Point{}, draw.Src)

			if ch := cell.Char(); ch != 0 && ch != ' ' {
				d.Src = image.NewUniform(r.palette[attr.Foreground()])
				d.Dot = fixed.P(at.X, at.Y+r.ascent)
				d.DrawString(string(charmap.CodePage437.DecodeByte(ch)))
			}
		}
	}

	if cursor >= 0 && cursor < cols*rows {
		var (
			x, y = cursor % cols, cursor / cols
			fg   = r.palette[buf.At(cursor).Attr().Foreground()]
			line = image.Rect(x*r.cell.X, (y+1)*r.cell.Y-cursorHeight, (x+1)*r.cell.X, (y+1)*r.cell.Y)
		)
		draw.Draw(img, line, image.NewUniform(fg), image.Point{}, draw.Src)
	}
	return img
}
