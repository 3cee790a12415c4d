package framebuffer

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BeatGlow/console/vga"
)

const vcsaHeaderSize = 4

// VCSA is a Linux virtual console attribute device (vcsa).
//
// The device starts with a 4 byte header (lines, columns, cursor x,
// cursor y) followed by (character, attribute) pairs. VCSA also moves the
// console cursor by rewriting the header cursor bytes.
type VCSA struct {
	f    *os.File
	name string
	cols int
	rows int
	err  error
}

// OpenVCSA opens a vcsa device by name, typically /dev/vcsa[1..x].
func OpenVCSA(name string) (*VCSA, error) {
	f, err := os.OpenFile(name, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, err
	}

	var header [vcsaHeaderSize]byte
	if n, err := f.ReadAt(header[:], 0); n < vcsaHeaderSize {
		_ = f.Close()
		if err == nil || errors.Is(err, io.EOF) {
			err = ErrShortHeader
		}
		return nil, fmt.Errorf("framebuffer: %s: %w", name, err)
	}

	v := &VCSA{
		f:    f,
		name: name,
		rows: int(header[0]),
		cols: int(header[1]),
	}
	if debug {
		logf("opened %s (%dx%d)", name, v.cols, v.rows)
	}
	return v, nil
}

func (v *VCSA) String() string {
	return fmt.Sprintf("%s (%dx%d)", v.name, v.cols, v.rows)
}

// Size returns the console dimensions in cells.
func (v *VCSA) Size() (cols, rows int) {
	return v.cols, v.rows
}

func (v *VCSA) Len() int {
	return v.cols * v.rows
}

func (v *VCSA) At(i int) vga.Cell {
	var b [2]byte
	if _, err := v.f.ReadAt(b[:], vcsaHeaderSize+int64(i)*2); err != nil {
		v.fail(err)
		return vga.Blank
	}
	return vga.Entry(b[0], vga.Attr(b[1]))
}

func (v *VCSA) Set(i int, c vga.Cell) {
	if _, err := v.f.WriteAt([]byte{c.Char(), byte(c.Attr())}, vcsaHeaderSize+int64(i)*2); err != nil {
		v.fail(err)
	}
}

// MoveCursor moves the console cursor to the linear position pos.
func (v *VCSA) MoveCursor(pos uint16) error {
	if v.cols == 0 {
		return nil
	}
	x, y := int(pos)%v.cols, int(pos)/v.cols
	_, err := v.f.WriteAt([]byte{byte(x), byte(y)}, 2)
	return err
}

// Err returns the first read or write error, if any.
func (v *VCSA) Err() error {
	return v.err
}

func (v *VCSA) Close() error {
	return v.f.Close()
}

func (v *VCSA) fail(err error) {
	if v.err == nil {
		v.err = err
	}
	if debug {
		logf("%s: %v", v.name, err)
	}
}
