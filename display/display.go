// Package display exposes a pixel sink as a TinyGo drivers.Displayer so that
// tinyfont, tinyterm and other drawing code can render into it.
package display

import (
	"image"
	"image/color"
	"math"

	"gopfb/sink"

	"github.com/juju/errors"
	"tinygo.org/x/drivers"
)

// Display draws into a sink, optionally through a clipped, translated window.
type Display struct {
	s      *sink.Sink
	bounds image.Rectangle
	err    *error
}

var _ drivers.Displayer = (*Display)(nil)

// New returns a Display covering the whole sink.
func New(s *sink.Sink) *Display {
	w, h := s.Size()
	return &Display{
		s:      s,
		bounds: image.Rect(0, 0, clampDim(w), clampDim(h)),
		err:    new(error),
	}
}

// Sub returns a Display whose origin is r.Min and whose pixels are clipped
// to r. It shares its error state with d.
func (d *Display) Sub(r image.Rectangle) *Display {
	return &Display{
		s:      d.s,
		bounds: r.Add(d.bounds.Min).Intersect(d.bounds),
		err:    d.err,
	}
}

// Bounds returns the area of the sink d draws into.
func (d *Display) Bounds() image.Rectangle { return d.bounds }

func (d *Display) Size() (x, y int16) {
	return int16(d.bounds.Dx()), int16(d.bounds.Dy())
}

// SetPixel cannot report errors; the first one is kept and returned by
// Display and Err.
func (d *Display) SetPixel(x, y int16, c color.RGBA) {
	p := image.Pt(int(x), int(y)).Add(d.bounds.Min)
	if !p.In(d.bounds) {
		return
	}
	d.latch(d.s.WritePixel(p, sink.RGB{R: c.R, G: c.G, B: c.B}))
}

// Display returns the first error seen while drawing. Writes reach the
// framebuffer as they happen, so there is nothing to flush.
func (d *Display) Display() error { return *d.err }

// Err is the first drawing error, if any.
func (d *Display) Err() error { return *d.err }

func (d *Display) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	r := image.Rect(int(x), int(y), int(x)+int(width), int(y)+int(height)).
		Add(d.bounds.Min).
		Intersect(d.bounds)
	if r.Empty() {
		return nil
	}

	pixels := make([]sink.Pixel, 0, r.Dx())
	col := sink.RGB{R: c.R, G: c.G, B: c.B}
	for py := r.Min.Y; py < r.Max.Y; py++ {
		pixels = pixels[:0]
		for px := r.Min.X; px < r.Max.X; px++ {
			pixels = append(pixels, sink.Pixel{Point: image.Pt(px, py), Color: col})
		}
		if err := d.s.Draw(pixels); err != nil {
			d.latch(err)
			return err
		}
	}
	return nil
}

// ScrollUp moves the contents of the display up by lines pixel rows and
// clears the rows that open at the bottom with bg.
func (d *Display) ScrollUp(lines int16, bg color.RGBA) error {
	if lines <= 0 {
		return nil
	}
	if err := d.s.ScrollUp(d.bounds, int(lines)); err != nil {
		d.latch(err)
		return err
	}
	w, h := d.Size()
	if lines > h {
		lines = h
	}
	return d.FillRectangle(0, h-lines, w, lines, bg)
}

// SetScroll is a no-op; firmware framebuffers have no hardware scrolling.
func (d *Display) SetScroll(line int16) {
	_ = line
}

func (d *Display) SetRotation(rotation drivers.Rotation) error {
	if rotation != drivers.Rotation0 {
		return errors.NotSupportedf("rotation %d", rotation)
	}
	return nil
}

func (d *Display) latch(err error) {
	if err != nil && *d.err == nil {
		*d.err = err
	}
}

func clampDim(v uint32) int {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	return int(v)
}
