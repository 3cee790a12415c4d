// Package conn implements I/O port transports for display controllers.
package conn

import (
	"errors"
	"fmt"
	"os"

	"periph.io/x/conn/v3"
)

// DefaultPortDevice is the Linux I/O port device.
const DefaultPortDevice = "/dev/port"

// ErrEmptyWrite is returned by [Port.Tx] when no register index is given.
var ErrEmptyWrite = errors.New("conn: port write needs a register index")

// Port is an index/data I/O port pair, as used by the VGA CRT controller.
//
// Port implements [conn.Conn]: the first byte written selects a register
// through the index port, the remaining bytes go to the data port.
type Port struct {
	f     *os.File
	name  string
	index int64
}

// OpenPort opens the port pair starting at index on the named port device.
func OpenPort(name string, index uint16) (*Port, error) {
	if name == "" {
		name = DefaultPortDevice
	}
	f, err := os.OpenFile(name, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, err
	}
	return &Port{
		f:     f,
		name:  name,
		index: int64(index),
	}, nil
}

func (p *Port) String() string {
	return fmt.Sprintf("%s index=%#x data=%#x", p.name, p.index, p.index+1)
}

func (p *Port) Close() error {
	return p.f.Close()
}

// Duplex always returns [conn.Half].
func (p *Port) Duplex() conn.Duplex {
	return conn.Half
}

// Tx selects register w[0], writes w[1:] to the data port, then reads r from it.
func (p *Port) Tx(w, r []byte) (err error) {
	if len(w) == 0 {
		return ErrEmptyWrite
	}
	if _, err = p.f.WriteAt(w[:1], p.index); err != nil {
		return
	}
	for i := range w[1:] {
		if _, err = p.f.WriteAt(w[1+i:2+i], p.index+1); err != nil {
			return
		}
	}
	for i := range r {
		if _, err = p.f.ReadAt(r[i:i+1], p.index+1); err != nil {
			return
		}
	}
	return
}

var _ conn.Conn = (*Port)(nil)
