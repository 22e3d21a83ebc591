//go:build tinygo

package sink

import "runtime/volatile"

// storeCell is the only code that writes framebuffer memory. Each color byte
// goes through a volatile store; the reserved byte is not touched.
func storeCell(region []byte, off int, px [3]byte) {
	_ = region[off+CellSize-1]
	volatile.StoreUint8(&region[off], px[0])
	volatile.StoreUint8(&region[off+1], px[1])
	volatile.StoreUint8(&region[off+2], px[2])
}

func loadCell(region []byte, off int) [3]byte {
	_ = region[off+CellSize-1]
	return [3]byte{
		volatile.LoadUint8(&region[off]),
		volatile.LoadUint8(&region[off+1]),
		volatile.LoadUint8(&region[off+2]),
	}
}

func cellAligned(region []byte) bool { return true }
