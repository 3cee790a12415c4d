package framebuffer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BeatGlow/console/vga"
)

func TestMemory(t *testing.T) {
	m := NewMemory(80 * 25)
	require.Equal(t, 80*25, m.Len())
	for i := 0; i < m.Len(); i++ {
		if m.At(i) != vga.Blank {
			t.Fatalf("expected cell %d to be blank, got %#04x", i, m.At(i))
		}
	}

	c := vga.Entry('x', vga.EntryColor(vga.Red, vga.Blue))
	m.Set(81, c)
	assert.Equal(t, c, m.At(81))
	assert.Equal(t, c, m.Cells[81])
	assert.NoError(t, m.Close())
}

func testVCSA(t *testing.T, cols, rows int) string {
	t.Helper()
	data := make([]byte, vcsaHeaderSize+cols*rows*2)
	data[0] = byte(rows)
	data[1] = byte(cols)
	name := filepath.Join(t.TempDir(), "vcsa1")
	require.NoError(t, os.WriteFile(name, data, 0o600))
	return name
}

func TestVCSA(t *testing.T) {
	name := testVCSA(t, 3, 2)

	v, err := OpenVCSA(name)
	require.NoError(t, err)
	defer v.Close()

	cols, rows := v.Size()
	assert.Equal(t, 3, cols)
	assert.Equal(t, 2, rows)
	assert.Equal(t, 6, v.Len())

	c := vga.Entry('Z', vga.EntryColor(vga.LightBrown, vga.Black))
	v.Set(4, c)
	assert.Equal(t, c, v.At(4))
	require.NoError(t, v.MoveCursor(5))
	require.NoError(t, v.Err())

	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 3, 2, 1}, data[:vcsaHeaderSize], "header")
	assert.Equal(t, []byte{'Z', byte(c.Attr())}, data[vcsaHeaderSize+8:vcsaHeaderSize+10])
}

func TestVCSAShortHeader(t *testing.T) {
	name := filepath.Join(t.TempDir(), "vcsa2")
	require.NoError(t, os.WriteFile(name, []byte{25}, 0o600))

	_, err := OpenVCSA(name)
	assert.ErrorIs(t, err, ErrShortHeader)
}
