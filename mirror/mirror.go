// Package mirror shows a text mode frame buffer on a host terminal.
package mirror

import (
	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/encoding/charmap"

	"github.com/BeatGlow/console/framebuffer"
	"github.com/BeatGlow/console/vga"
)

// ansi maps text mode colors to the ANSI palette, which orders red and blue
// the other way around.
var ansi = [16]int{0, 4, 2, 6, 1, 5, 3, 7, 8, 12, 10, 14, 9, 13, 11, 15}

// Color converts a text mode color to a terminal palette color.
func Color(c vga.Color) tcell.Color {
	return tcell.PaletteColor(ansi[c&0x0f])
}

// Style converts a color attribute to a terminal style.
func Style(attr vga.Attr) tcell.Style {
	return tcell.StyleDefault.
		Foreground(Color(attr.Foreground())).
		Background(Color(attr.Background()))
}

// Rune decodes a cell character as code page 437.
func Rune(ch byte) rune {
	if ch == 0 {
		return ' '
	}
	return charmap.CodePage437.DecodeByte(ch)
}

// Draw copies cols x rows cells of buf to s and shows it. The terminal
// cursor is placed at the linear position cursor, a negative cursor hides it.
func Draw(s tcell.Screen, buf framebuffer.Buffer, cols, rows, cursor int) {
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			cell := buf.At(y*cols + x)
			s.SetContent(x, y, Rune(cell.Char()), nil, Style(cell.Attr()))
		}
	}
	if cursor >= 0 && cursor < cols*rows {
		s.ShowCursor(cursor%cols, cursor/cols)
	} else {
		s.HideCursor()
	}
	s.Show()
}
