package sink

import (
	"math"
	"math/bits"
)

// Offset returns the byte offset of cell (x, y) in a region with stride cells
// per row: (y*stride + x) * CellSize.
//
// The arithmetic runs in 64 bits; a result that overflows, or does not fit in
// an int on this platform, is unsupported.
func Offset(x, y, stride uint32) (int, error) {
	row, ok := mul64(uint64(y), uint64(stride))
	if !ok {
		return 0, unsupportedf("offset of cell (%d,%d) with stride %d", x, y, stride)
	}
	cell, carry := bits.Add64(row, uint64(x), 0)
	if carry != 0 {
		return 0, unsupportedf("offset of cell (%d,%d) with stride %d", x, y, stride)
	}
	off, ok := mul64(cell, CellSize)
	if !ok || off > math.MaxInt {
		return 0, unsupportedf("offset of cell (%d,%d) with stride %d", x, y, stride)
	}
	return int(off), nil
}
