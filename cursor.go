package console

import (
	"fmt"
	"io"

	"periph.io/x/conn/v3"

	ioport "github.com/BeatGlow/console/conn"
)

// CRT controller registers.
const (
	crtcCursorHigh = 0x0e
	crtcCursorLow  = 0x0f
)

// Cursor moves the hardware cursor indicator.
type Cursor interface {
	// MoveCursor moves the cursor to the linear position row*width+column.
	MoveCursor(pos uint16) error
}

type nopCursor struct{}

func (nopCursor) MoveCursor(uint16) error { return nil }

// NopCursor ignores cursor updates.
var NopCursor Cursor = nopCursor{}

// CRTCConfig describes the CRT controller port configuration.
type CRTCConfig struct {
	// Device is the I/O port device.
	Device string

	// Index is the CRTC index port, the data port follows it.
	Index uint16
}

// DefaultCRTCConfig is the color CRTC at 0x3d4/0x3d5.
var DefaultCRTCConfig = CRTCConfig{
	Device: ioport.DefaultPortDevice,
	Index:  0x3d4,
}

// CRTC drives the hardware cursor through the VGA CRT controller.
type CRTC struct {
	c conn.Conn
}

// NewCRTC returns a CRTC cursor using c; each Tx selects a register with the
// first byte and writes the rest to it.
func NewCRTC(c conn.Conn) *CRTC {
	return &CRTC{c: c}
}

// OpenCRTC opens the CRTC port pair.
func OpenCRTC(config *CRTCConfig) (*CRTC, error) {
	if config == nil {
		config = new(CRTCConfig)
		*config = DefaultCRTCConfig
	}
	if config.Index == 0 {
		config.Index = DefaultCRTCConfig.Index
	}

	p, err := ioport.OpenPort(config.Device, config.Index)
	if err != nil {
		return nil, err
	}
	return NewCRTC(p), nil
}

func (c *CRTC) String() string {
	return fmt.Sprintf("CRTC on %s", c.c)
}

func (c *CRTC) Close() error {
	if closer, ok := c.c.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (c *CRTC) MoveCursor(pos uint16) (err error) {
	if err = c.c.Tx([]byte{crtcCursorLow, byte(pos)}, nil); err != nil {
		return
	}
	return c.c.Tx([]byte{crtcCursorHigh, byte(pos >> 8)}, nil)
}
