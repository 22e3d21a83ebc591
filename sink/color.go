package sink

import "image/color"

// Color is any color value that can report 8-bit red, green and blue channels.
type Color interface {
	RGB888() (r, g, b uint8)
}

// RGB is a plain 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

func (c RGB) RGB888() (r, g, b uint8) { return c.R, c.G, c.B }

// FromColor adapts an image/color value. Channels wider than 8 bits lose
// their low byte.
func FromColor(c color.Color) Color {
	switch v := c.(type) {
	case nil:
		return nil
	case color.RGBA:
		return RGB{R: v.R, G: v.G, B: v.B}
	case color.NRGBA:
		return RGB{R: v.R, G: v.G, B: v.B}
	}
	return stdColor{c: c}
}

type stdColor struct {
	c color.Color
}

func (s stdColor) RGB888() (r, g, b uint8) {
	rr, gg, bb, _ := s.c.RGBA()
	return uint8(rr >> 8), uint8(gg >> 8), uint8(bb >> 8)
}

// Convert returns the three significant bytes of a cell holding c, in the
// channel order of f.
func Convert(c Color, f PixelFormat) ([3]byte, error) {
	if !f.Valid() {
		return [3]byte{}, unsupportedf("pixel format %s", f)
	}
	if c == nil {
		return [3]byte{}, unsupportedf("nil color")
	}
	r, g, b := c.RGB888()
	if f == FormatBGR {
		return [3]byte{b, g, r}, nil
	}
	return [3]byte{r, g, b}, nil
}
