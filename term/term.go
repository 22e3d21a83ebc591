// Package term runs a text console on top of a framebuffer display.
package term

import (
	"image/color"

	"gopfb/display"

	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

var background = color.RGBA{A: 0xFF}

// Console is a VT100-style terminal drawing through a display.
type Console struct {
	d *display.Display
	t *tinyterm.Terminal
}

func New(d *display.Display) *Console {
	c := &Console{d: d}
	c.reset()
	return c
}

// Write feeds p to the terminal. Drawing errors surface here.
func (c *Console) Write(p []byte) (int, error) {
	n, err := c.t.Write(p)
	if err != nil {
		return n, err
	}
	return n, c.d.Err()
}

// WriteLineString prints s followed by a newline, making a Console usable as
// a hal.Logger.
func (c *Console) WriteLineString(s string) {
	_, _ = c.Write([]byte(s + "\n"))
}

func (c *Console) WriteLineBytes(b []byte) {
	_, _ = c.Write(b)
	_, _ = c.Write([]byte{'\n'})
}

// Clear blanks the console area and moves the cursor home.
func (c *Console) Clear() error {
	w, h := c.d.Size()
	if err := c.d.FillRectangle(0, 0, w, h, background); err != nil {
		return err
	}
	c.reset()
	return nil
}

// Flush reports any pending drawing error.
func (c *Console) Flush() error { return c.d.Display() }

func (c *Console) reset() {
	c.t = tinyterm.NewTerminal(c.d)
	c.t.Configure(&tinyterm.Config{
		Font:              &proggy.TinySZ8pt7b,
		FontHeight:        10,
		FontOffset:        6,
		UseSoftwareScroll: true,
	})
}
