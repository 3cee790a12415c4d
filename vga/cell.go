package vga

// Attr is an encoded foreground/background color pair.
type Attr uint8

// Cell is an encoded character plus its color attribute.
type Cell uint16

var (
	// DefaultAttr is white text on a black background.
	DefaultAttr = EntryColor(White, Black)

	// Blank is a space in the default colors.
	Blank = Entry(' ', DefaultAttr)
)

// EntryColor encodes a foreground and background color.
func EntryColor(fg, bg Color) Attr {
	return Attr(fg&0x0f) | Attr(bg&0x0f)<<4
}

func (a Attr) Foreground() Color {
	return Color(a & 0x0f)
}

func (a Attr) Background() Color {
	return Color(a >> 4)
}

// Entry encodes a character with a color attribute.
func Entry(c byte, attr Attr) Cell {
	return Cell(c) | Cell(attr)<<8
}

// Char is the character byte.
func (c Cell) Char() byte {
	return byte(c)
}

// Attr is the color attribute.
func (c Cell) Attr() Attr {
	return Attr(c >> 8)
}
