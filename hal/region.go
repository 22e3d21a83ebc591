package hal

import "unsafe"

// MemRegion is a framebuffer region in ordinary memory, used on hosts without
// a display device and in tests.
type MemRegion struct {
	buf []byte
}

// NewMemRegion returns a zeroed, word-aligned region of size bytes.
func NewMemRegion(size int) *MemRegion {
	if size <= 0 {
		return &MemRegion{}
	}
	words := make([]uint32, (size+3)/4)
	return &MemRegion{buf: unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), size)}
}

func (r *MemRegion) Bytes() []byte { return r.buf }
func (r *MemRegion) Close() error  { return nil }
