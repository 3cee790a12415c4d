// Package console is a character cell text console driver for VGA text mode.
//
// A [Console] owns a grid of cells in a [framebuffer.Buffer], tracks the
// writing position and the current color, and keeps the hardware cursor in
// sync after every character. It is meant for early boot output: there are
// no escape sequences, no scrollback and no locking. A Console must have a
// single writer.
package console

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/BeatGlow/console/framebuffer"
	"github.com/BeatGlow/console/vga"
)

// Text mode defaults.
const (
	Width    = 80
	Height   = 25
	PhysAddr = 0xb8000
)

var debug bool

func init() {
	debug = os.Getenv("CONSOLE_DEBUG") != ""
}

// Errors
var (
	ErrBufferSize = errors.New("console: frame buffer too small")
	ErrDimensions = errors.New("console: invalid dimensions")
)

// Config is the console configuration.
type Config struct {
	// Width of the console in cells.
	Width int

	// Height of the console in cells.
	Height int

	// Buffer holds the cells, nil allocates one in memory.
	Buffer framebuffer.Buffer

	// Cursor moves the hardware cursor, nil disables cursor updates.
	Cursor Cursor
}

// DefaultConfig is an 80x25 console in memory.
var DefaultConfig = Config{
	Width:  Width,
	Height: Height,
}

// Console is a text console.
type Console struct {
	buf    framebuffer.Buffer
	cursor Cursor
	width  int
	height int
	row    int
	column int
	color  vga.Attr
	err    error
}

// New binds a console to its frame buffer and clears it.
func New(config *Config) (*Console, error) {
	if config == nil {
		config = new(Config)
		*config = DefaultConfig
	}

	c := &Console{
		buf:    config.Buffer,
		cursor: config.Cursor,
		width:  config.Width,
		height: config.Height,
	}
	if c.width == 0 {
		c.width = Width
	}
	if c.height == 0 {
		c.height = Height
	}
	if c.width < 0 || c.height < 0 || c.width*c.height > 0xffff {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, c.width, c.height)
	}
	if c.buf == nil {
		c.buf = framebuffer.NewMemory(c.width * c.height)
	} else if n := c.buf.Len(); n < c.width*c.height {
		return nil, fmt.Errorf("%w: %d cells for %dx%d", ErrBufferSize, n, c.width, c.height)
	}
	if c.cursor == nil {
		c.cursor = NopCursor
	}

	if debug {
		log.Printf("console: %dx%d on %s", c.width, c.height, describe(c.buf))
	}

	c.Clear()
	return c, nil
}

func (c *Console) String() string {
	return fmt.Sprintf("text console %dx%d", c.width, c.height)
}

// Close the frame buffer and the cursor.
func (c *Console) Close() error {
	var err error
	if closer, ok := c.cursor.(io.Closer); ok && closer != io.Closer(c.buf) {
		err = closer.Close()
	}
	if cerr := c.buf.Close(); err == nil {
		err = cerr
	}
	return err
}

// Size returns the console dimensions in cells.
func (c *Console) Size() (width, height int) {
	return c.width, c.height
}

// Position returns the next write position.
func (c *Console) Position() (x, y int) {
	return c.column, c.row
}

// Color returns the current color attribute.
func (c *Console) Color() vga.Attr {
	return c.color
}

// Cell returns the cell at (x, y).
func (c *Console) Cell(x, y int) vga.Cell {
	return c.buf.At(y*c.width + x)
}

// Buffer returns the frame buffer.
func (c *Console) Buffer() framebuffer.Buffer {
	return c.buf
}

// Err returns the first hardware cursor error, if any.
func (c *Console) Err() error {
	return c.err
}

// Clear blanks the screen, resets the color to white on black and moves
// the cursor home.
func (c *Console) Clear() {
	c.row = 0
	c.column = 0
	c.color = vga.DefaultAttr

	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			c.PutEntryAt(' ', c.color, x, y)
		}
	}

	c.SetCursor(0)
}

// Scroll moves every row up by one line and blanks the last row.
//
// The last row always uses the default colors. Scroll is unconditional,
// callers invoke it when the row just moved past the bottom edge.
func (c *Console) Scroll() {
	for i, n := 0, (c.height-1)*c.width; i < n; i++ {
		c.buf.Set(i, c.buf.At(i+c.width))
	}
	for x := 0; x < c.width; x++ {
		c.PutEntryAt(' ', vga.DefaultAttr, x, c.height-1)
	}

	c.row--
}

// SetColor sets the foreground color for future writes on a black background.
func (c *Console) SetColor(fg vga.Color) {
	c.color = vga.EntryColor(fg, vga.Black)
}

// SetCursor moves the hardware cursor to the linear position row*width+column.
func (c *Console) SetCursor(pos int) {
	if err := c.cursor.MoveCursor(uint16(pos)); err != nil {
		if c.err == nil {
			c.err = err
		}
		if debug {
			log.Printf("console: move cursor to %d: %v", pos, err)
		}
	}
}

// PutEntryAt writes one cell at (x, y).
//
// The caller must ensure 0 <= x < width and 0 <= y < height; coordinates
// are not checked.
func (c *Console) PutEntryAt(ch byte, attr vga.Attr, x, y int) {
	c.buf.Set(y*c.width+x, vga.Entry(ch, attr))
}

// PutChar writes one byte at the cursor and advances it. A newline moves
// to the start of the next line.
func (c *Console) PutChar(ch byte) {
	if ch == '\n' {
		c.column = 0
		c.row++
	} else {
		c.PutEntryAt(ch, c.color, c.column, c.row)
		if c.column++; c.column == c.width {
			c.column = 0
			c.row++
		}
	}

	if c.row == c.height {
		c.Scroll()
	}

	c.SetCursor(c.row*c.width + c.column)
}

// WriteByte implements [io.ByteWriter], it never fails.
func (c *Console) WriteByte(ch byte) error {
	c.PutChar(ch)
	return nil
}

// Write implements [io.Writer], it never fails.
func (c *Console) Write(p []byte) (int, error) {
	for _, ch := range p {
		c.PutChar(ch)
	}
	return len(p), nil
}

// WriteString implements [io.StringWriter], it never fails.
func (c *Console) WriteString(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		c.PutChar(s[i])
	}
	return len(s), nil
}

func describe(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", v)
}
