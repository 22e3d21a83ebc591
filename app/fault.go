package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"gopfb/display"
	"gopfb/sink"

	"github.com/juju/errors"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	faultFontHeight = 10
	faultFontOffset = 7
)

// Guard wraps step so that a panic is reported as an error and painted on
// the framebuffer instead of tearing down the runner.
func (sc *Scene) Guard(step func() error) func() error {
	return func() (err error) {
		defer func() {
			if v := recover(); v != nil {
				err = errors.Errorf("panic: %v", v)
				sc.Fault(err, strings.Split(string(debug.Stack()), "\n"))
			}
		}()
		return step()
	}
}

// Fault clears the screen to white and prints err and detail in black,
// wrapping long lines. Lines past the bottom edge are dropped.
func (sc *Scene) Fault(err error, detail []string) {
	if sc.cfg.Log != nil {
		sc.cfg.Log.WriteLineString(fmt.Sprintf("fault: %v", err))
	}
	if sc.sink.Fill(sink.RGB{R: 0xFF, G: 0xFF, B: 0xFF}) != nil {
		return
	}

	font := &proggy.TinySZ8pt7b
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	fontWidth := int16(outboxWidth)
	if fontWidth <= 0 {
		return
	}

	d := display.New(sc.sink)
	maxW, maxH := d.Size()
	cols := maxW / fontWidth
	if cols <= 0 {
		cols = 1
	}

	lines := append([]string{"gopfb fault:", err.Error()}, detail...)
	fg := color.RGBA{A: 0xFF}
	y := int16(0)
	for _, line := range lines {
		if line == "" {
			continue
		}
		for len(line) > 0 {
			if y+faultFontHeight > maxH {
				return
			}
			chunk, rest := takeRunes(line, cols)
			drawTextLine(d, font, fontWidth, 0, y, chunk, fg)
			y += faultFontHeight
			line = strings.TrimLeft(rest, " \t")
		}
	}
}

func drawTextLine(d *display.Display, font tinyfont.Fonter, fontWidth, x0, y0 int16, s string, fg color.RGBA) {
	x := x0
	for _, r := range s {
		tinyfont.DrawChar(d, font, x, y0+faultFontOffset, r, fg)
		x += fontWidth
	}
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
