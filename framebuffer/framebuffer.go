// Package framebuffer provides access to text mode cell memory.
//
// A [Buffer] is a fixed size, row-major array of [vga.Cell] values. Writes
// are visible to the display hardware immediately, in program order; there
// is no caching or batching at this layer.
//
// Buffers can be backed by plain memory ([NewMemory]), by a physical memory
// mapping of the VGA text buffer ([Map]), or by a Linux virtual console
// attribute device ([OpenVCSA]).
package framebuffer

import (
	"errors"
	"log"
	"os"

	"github.com/BeatGlow/console/vga"
)

// Errors
var (
	ErrNotSupported = errors.New("framebuffer: not supported")
	ErrShortHeader  = errors.New("framebuffer: short vcsa header")
)

var debug bool

func init() {
	debug = os.Getenv("CONSOLE_DEBUG") != ""
}

func logf(format string, args ...any) {
	log.Printf("framebuffer: "+format, args...)
}

// Buffer is an array of encoded cells.
type Buffer interface {
	// Len is the number of cells.
	Len() int

	// At returns the cell at index i.
	At(i int) vga.Cell

	// Set the cell at index i.
	Set(i int, c vga.Cell)

	// Close releases the buffer.
	Close() error
}

// Memory is a buffer in ordinary memory.
type Memory struct {
	Cells []vga.Cell
}

// NewMemory allocates a buffer of n blank cells.
func NewMemory(n int) *Memory {
	m := &Memory{Cells: make([]vga.Cell, n)}
	for i := range m.Cells {
		m.Cells[i] = vga.Blank
	}
	return m
}

func (m *Memory) Len() int {
	return len(m.Cells)
}

func (m *Memory) At(i int) vga.Cell {
	return m.Cells[i]
}

func (m *Memory) Set(i int, c vga.Cell) {
	m.Cells[i] = c
}

func (m *Memory) Close() error {
	return nil
}
