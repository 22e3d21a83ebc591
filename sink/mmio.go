//go:build !tinygo

package sink

import (
	"encoding/binary"
	"sync/atomic"
	"unsafe"
)

// storeCell is the only code that writes framebuffer memory.
//
// The cell is accessed as one aligned 32-bit word through sync/atomic. The Go
// compiler never removes, merges or reorders atomic accesses, so every call
// reaches the region in program order. The reserved byte is read and stored
// back unchanged.
//
// off must be a cell offset inside region and region must satisfy cellAligned;
// New guarantees both.
func storeCell(region []byte, off int, px [3]byte) {
	_ = region[off+CellSize-1]
	word := (*uint32)(unsafe.Pointer(&region[off]))

	var cell [CellSize]byte
	binary.NativeEndian.PutUint32(cell[:], atomic.LoadUint32(word))
	cell[0], cell[1], cell[2] = px[0], px[1], px[2]
	atomic.StoreUint32(word, binary.NativeEndian.Uint32(cell[:]))
}

// loadCell reads the three color bytes of the cell at off.
func loadCell(region []byte, off int) [3]byte {
	_ = region[off+CellSize-1]
	var cell [CellSize]byte
	binary.NativeEndian.PutUint32(cell[:], atomic.LoadUint32((*uint32)(unsafe.Pointer(&region[off]))))
	return [3]byte{cell[0], cell[1], cell[2]}
}

func cellAligned(region []byte) bool {
	if len(region) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(region)))%CellSize == 0
}
