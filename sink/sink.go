// Package sink writes pixels into a firmware-provided linear framebuffer.
//
// A Sink owns a byte region laid out as Height rows of Stride four-byte cells.
// It drops points outside the visible resolution, converts colors to the
// hardware channel order and stores each cell through a primitive the compiler
// may not elide or reorder.
//
// A Sink has no internal locking. Callers that share one across goroutines
// must serialize access themselves.
package sink

import (
	"image"
	"math"
)

// Pixel is one point of a draw batch.
type Pixel struct {
	Point image.Point
	Color Color
}

// Sink is the pixel sink over a framebuffer region.
type Sink struct {
	geom Geometry
	buf  []byte
}

// New returns a sink writing into region with geometry g.
//
// The region, stride and address range are checked here once. The pixel
// format is not: a sink with an undeclared format reports unsupported from
// every draw call and never writes.
//
// The sink does not unmap or clear region when it is no longer used.
func New(g Geometry, region []byte) (*Sink, error) {
	if g.Width > g.Stride {
		return nil, unsupportedf("stride %d narrower than width %d", g.Stride, g.Width)
	}
	need, err := g.RegionSize()
	if err != nil {
		return nil, err
	}
	// Every visible cell offset is below need, so it also fits in an int.
	if len(region) < need {
		return nil, unsupportedf("region of %d bytes for %d", len(region), need)
	}
	if !cellAligned(region) {
		return nil, unsupportedf("unaligned framebuffer region")
	}
	return &Sink{geom: g, buf: region[:need:need]}, nil
}

// Geometry returns the geometry the sink was built with.
func (s *Sink) Geometry() Geometry { return s.geom }

// Size returns the visible width and height in pixels.
func (s *Sink) Size() (width, height uint32) { return s.geom.Size() }

// WritePixel stores c at p. Points outside the visible area are skipped
// without error.
func (s *Sink) WritePixel(p image.Point, c Color) error {
	px, err := Convert(c, s.geom.Format)
	if err != nil {
		return err
	}
	return s.put(p, px)
}

// Draw writes pixels in order. An undeclared format fails the whole batch
// before any write. Any other per-pixel failure skips that pixel, and the
// first such error is returned once the batch is done.
func (s *Sink) Draw(pixels []Pixel) error {
	if !s.geom.Format.Valid() {
		return unsupportedf("pixel format %s", s.geom.Format)
	}
	var first error
	for _, p := range pixels {
		if err := s.WritePixel(p.Point, p.Color); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Fill sets every visible pixel to c.
func (s *Sink) Fill(c Color) error {
	px, err := Convert(c, s.geom.Format)
	if err != nil {
		return err
	}
	for y := uint32(0); y < s.geom.Height; y++ {
		for x := uint32(0); x < s.geom.Width; x++ {
			off, err := Offset(x, y, s.geom.Stride)
			if err != nil {
				return err
			}
			storeCell(s.buf, off, px)
		}
	}
	return nil
}

// ScrollUp moves the pixels inside r up by n rows. r is clipped to the
// visible area. Rows shifted past the top of r are lost and the bottom n rows
// of r keep their old contents.
func (s *Sink) ScrollUp(r image.Rectangle, n int) error {
	if !s.geom.Format.Valid() {
		return unsupportedf("pixel format %s", s.geom.Format)
	}
	r = r.Intersect(s.bounds())
	if r.Empty() || n <= 0 {
		return nil
	}
	for y := r.Min.Y; y+n < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			src, err := Offset(uint32(x), uint32(y+n), s.geom.Stride)
			if err != nil {
				return err
			}
			dst, err := Offset(uint32(x), uint32(y), s.geom.Stride)
			if err != nil {
				return err
			}
			storeCell(s.buf, dst, loadCell(s.buf, src))
		}
	}
	return nil
}

func (s *Sink) bounds() image.Rectangle {
	w, h := uint64(s.geom.Width), uint64(s.geom.Height)
	if w > math.MaxInt32 {
		w = math.MaxInt32
	}
	if h > math.MaxInt32 {
		h = math.MaxInt32
	}
	return image.Rect(0, 0, int(w), int(h))
}

func (s *Sink) put(p image.Point, px [3]byte) error {
	if p.X < 0 || p.Y < 0 {
		return nil
	}
	if uint64(p.X) >= uint64(s.geom.Width) || uint64(p.Y) >= uint64(s.geom.Height) {
		return nil
	}
	off, err := Offset(uint32(p.X), uint32(p.Y), s.geom.Stride)
	if err != nil {
		return err
	}
	storeCell(s.buf, off, px)
	return nil
}
