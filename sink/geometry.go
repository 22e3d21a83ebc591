package sink

import (
	"math"
	"math/bits"
	"strconv"
)

// CellSize is the width of one framebuffer cell in bytes. Only the first three
// bytes carry color; the fourth is reserved and never changed.
const CellSize = 4

// PixelFormat is the channel order of a framebuffer cell.
type PixelFormat uint8

const (
	// FormatRGB stores cells as R, G, B, reserved.
	FormatRGB PixelFormat = iota + 1
	// FormatBGR stores cells as B, G, R, reserved.
	FormatBGR
)

func (f PixelFormat) Valid() bool { return f == FormatRGB || f == FormatBGR }

func (f PixelFormat) String() string {
	switch f {
	case FormatRGB:
		return "rgb"
	case FormatBGR:
		return "bgr"
	default:
		return "format(" + strconv.Itoa(int(f)) + ")"
	}
}

// Geometry describes a framebuffer as reported by firmware.
//
// Stride counts pixel cells per row and may exceed Width.
type Geometry struct {
	Width  uint32
	Height uint32
	Stride uint32
	Format PixelFormat
}

// Size returns the visible resolution.
func (g Geometry) Size() (width, height uint32) { return g.Width, g.Height }

// RegionSize returns the number of bytes the framebuffer region must span.
func (g Geometry) RegionSize() (int, error) {
	cells, ok := mul64(uint64(g.Height), uint64(g.Stride))
	if !ok {
		return 0, unsupportedf("region of %dx%d cells", g.Stride, g.Height)
	}
	n, ok := mul64(cells, CellSize)
	if !ok || n > math.MaxInt {
		return 0, unsupportedf("region of %dx%d cells", g.Stride, g.Height)
	}
	return int(n), nil
}

func mul64(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi == 0
}
