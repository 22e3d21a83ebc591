package hal

import (
	"gopfb/sink"

	"github.com/juju/errors"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// PixelFormat is the firmware's pixel-format tag for a graphics mode.
type PixelFormat uint32

const (
	// PixelRedGreenBlueReserved8BitPerColor lays a cell out as R, G, B, reserved.
	PixelRedGreenBlueReserved8BitPerColor PixelFormat = iota
	// PixelBlueGreenRedReserved8BitPerColor lays a cell out as B, G, R, reserved.
	PixelBlueGreenRedReserved8BitPerColor
	// PixelBitMask describes cells through per-channel masks.
	PixelBitMask
	// PixelBltOnly has no linear framebuffer.
	PixelBltOnly
)

func (f PixelFormat) String() string {
	switch f {
	case PixelRedGreenBlueReserved8BitPerColor:
		return "rgb"
	case PixelBlueGreenRedReserved8BitPerColor:
		return "bgr"
	case PixelBitMask:
		return "bitmask"
	case PixelBltOnly:
		return "blt-only"
	}
	return "unknown"
}

// ModeInfo is the mode information firmware reports for the active graphics
// mode.
type ModeInfo struct {
	Version              uint32
	HorizontalResolution uint32
	VerticalResolution   uint32
	PixelFormat          PixelFormat
	PixelsPerScanLine    uint32
}

// Geometry translates the mode into a sink geometry. Formats the sink cannot
// write are rejected here, before a sink is built.
func (m ModeInfo) Geometry() (sink.Geometry, error) {
	g := sink.Geometry{
		Width:  m.HorizontalResolution,
		Height: m.VerticalResolution,
		Stride: m.PixelsPerScanLine,
	}
	switch m.PixelFormat {
	case PixelRedGreenBlueReserved8BitPerColor:
		g.Format = sink.FormatRGB
	case PixelBlueGreenRedReserved8BitPerColor:
		g.Format = sink.FormatBGR
	default:
		return sink.Geometry{}, errors.NotSupportedf("pixel format %s", m.PixelFormat)
	}
	return g, nil
}

// Region is a framebuffer memory region owned by its provider.
//
// Bytes stays valid until Close. A sink built over Bytes must not be used
// after Close.
type Region interface {
	Bytes() []byte
	Close() error
}
