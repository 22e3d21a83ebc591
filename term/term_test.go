package term

import (
	"fmt"
	"strings"
	"testing"

	"gopfb/display"
	"gopfb/hal"
	"gopfb/sink"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConsole(t *testing.T, f sink.PixelFormat) (*Console, []byte) {
	t.Helper()
	g := sink.Geometry{Width: 96, Height: 40, Stride: 100, Format: f}
	size, err := g.RegionSize()
	require.NoError(t, err)
	r := hal.NewMemRegion(size)
	s, err := sink.New(g, r.Bytes())
	require.NoError(t, err)
	return New(display.New(s)), r.Bytes()
}

func litCells(buf []byte) int {
	n := 0
	for i := 0; i < len(buf); i += sink.CellSize {
		if buf[i] != 0 || buf[i+1] != 0 || buf[i+2] != 0 {
			n++
		}
	}
	return n
}

func TestConsoleWrite(t *testing.T) {
	c, buf := newConsole(t, sink.FormatRGB)

	_, err := fmt.Fprint(c, "hello")
	require.NoError(t, err)
	require.NoError(t, c.Flush())
	assert.Positive(t, litCells(buf))

	require.NoError(t, c.Clear())
	assert.Zero(t, litCells(buf))
}

func TestConsoleScrolls(t *testing.T) {
	// The console is 40 pixels tall: four rows of 10.
	lines := []string{"oldest", "one", "two", "three", "newest"}

	scrolled, buf := newConsole(t, sink.FormatBGR)
	_, err := scrolled.Write([]byte(strings.Join(lines, "\n")))
	require.NoError(t, err)
	require.NoError(t, scrolled.Flush())

	// Same text without the first line never reaches the bottom.
	direct, want := newConsole(t, sink.FormatBGR)
	_, err = direct.Write([]byte(strings.Join(lines[1:], "\n")))
	require.NoError(t, err)
	assert.Equal(t, want, buf)

	unscrolled, old := newConsole(t, sink.FormatBGR)
	_, err = unscrolled.Write([]byte(strings.Join(lines[:4], "\n")))
	require.NoError(t, err)
	assert.NotEqual(t, old, buf)

	// The newest line sits on the last row.
	lastRow := buf[30*100*sink.CellSize:]
	assert.Positive(t, litCells(lastRow))
}

func TestConsoleLogLines(t *testing.T) {
	c, buf := newConsole(t, sink.FormatRGB)
	for i := 0; i < 20; i++ {
		c.WriteLineString(fmt.Sprintf("line %d", i))
	}
	c.WriteLineBytes([]byte("done"))
	require.NoError(t, c.Flush())
	assert.Positive(t, litCells(buf))
}

func TestConsoleUnsupportedFormat(t *testing.T) {
	c, buf := newConsole(t, 0)
	_, err := c.Write([]byte("x"))
	assert.True(t, sink.IsUnsupported(err), "%v", err)
	assert.Zero(t, litCells(buf))
}
