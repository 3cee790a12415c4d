package framebuffer

import (
	"encoding/binary"
	"fmt"
	"os"

	"periph.io/x/host/v3/pmem"

	"github.com/BeatGlow/console/internal/ioctl"
	"github.com/BeatGlow/console/vga"
)

// From <linux/vt.h>
const vtGetState = 0x5603

type vtStat struct {
	Active uint16 // Active VT
	Signal uint16 // Signal to send
	State  uint16 // VT bitmask
}

type physBuffer struct {
	view *pmem.View
	pix  []byte
}

// Map the physical text mode memory at physAddr, holding n cells.
//
// This requires access to /dev/mem, typically as root.
func Map(physAddr uint64, n int) (Buffer, error) {
	view, err := pmem.Map(physAddr, n*2)
	if err != nil {
		return nil, fmt.Errorf("framebuffer: map %#x: %w", physAddr, err)
	}
	pix := view.Bytes()
	if len(pix) < n*2 {
		_ = view.Close()
		return nil, fmt.Errorf("framebuffer: mapped %d bytes at %#x, need %d", len(pix), physAddr, n*2)
	}
	if debug {
		logf("mapped %d cells at %#x", n, physAddr)
	}
	return &physBuffer{
		view: view,
		pix:  pix[:n*2],
	}, nil
}

func (b *physBuffer) Len() int {
	return len(b.pix) / 2
}

// The character is the low byte, the attribute the high byte.
func (b *physBuffer) At(i int) vga.Cell {
	return vga.Cell(binary.LittleEndian.Uint16(b.pix[i*2:]))
}

func (b *physBuffer) Set(i int, c vga.Cell) {
	binary.LittleEndian.PutUint16(b.pix[i*2:], uint16(c))
}

func (b *physBuffer) Close() error {
	return b.view.Close()
}

// ActiveVCSA returns the vcsa device name of the active virtual terminal.
func ActiveVCSA() (string, error) {
	f, err := os.OpenFile("/dev/tty0", os.O_RDONLY, os.ModeDevice)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var state vtStat
	if err = ioctl.Do(f.Fd(), ioctl.Command(vtGetState), &state); err != nil {
		return "", err
	}
	return fmt.Sprintf("/dev/vcsa%d", state.Active), nil
}
