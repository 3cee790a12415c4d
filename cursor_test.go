package console

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/conntest"
)

func TestCRTCMoveCursor(t *testing.T) {
	tests := []struct {
		pos  uint16
		want [][]byte
	}{
		{0, [][]byte{{crtcCursorLow, 0x00}, {crtcCursorHigh, 0x00}}},
		{Width + 1, [][]byte{{crtcCursorLow, 0x51}, {crtcCursorHigh, 0x00}}},
		{Width*Height - 1, [][]byte{{crtcCursorLow, 0xcf}, {crtcCursorHigh, 0x07}}},
	}
	for _, test := range tests {
		t.Run("", func(t *testing.T) {
			r := new(conntest.Record)
			require.NoError(t, NewCRTC(r).MoveCursor(test.pos))

			require.Len(t, r.Ops, len(test.want))
			for i, op := range r.Ops {
				assert.Equal(t, test.want[i], op.W)
			}
		})
	}
}

func TestCRTCConsole(t *testing.T) {
	r := new(conntest.Record)
	c, err := New(&Config{Cursor: NewCRTC(r)})
	require.NoError(t, err)

	_, _ = c.WriteString("AB\nC")

	// clear, then one update per character
	require.Len(t, r.Ops, 2*5)
	last := r.Ops[len(r.Ops)-2:]
	assert.Equal(t, []byte{crtcCursorLow, Width + 1}, last[0].W)
	assert.Equal(t, []byte{crtcCursorHigh, 0}, last[1].W)
}

func TestOpenCRTC(t *testing.T) {
	name := filepath.Join(t.TempDir(), "port")
	require.NoError(t, os.WriteFile(name, make([]byte, 0x400), 0o600))

	crtc, err := OpenCRTC(&CRTCConfig{Device: name})
	require.NoError(t, err)
	require.NoError(t, crtc.MoveCursor(0x0123))
	require.NoError(t, crtc.Close())

	data, err := os.ReadFile(name)
	require.NoError(t, err)
	// the high byte register is written last
	assert.Equal(t, byte(crtcCursorHigh), data[0x3d4])
	assert.Equal(t, byte(0x01), data[0x3d5])
}

func TestNopCursor(t *testing.T) {
	assert.NoError(t, NopCursor.MoveCursor(1234))
}
