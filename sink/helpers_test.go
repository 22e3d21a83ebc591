package sink

import "unsafe"

// alignedRegion returns a word-aligned byte region filled with fill.
func alignedRegion(size int, fill byte) []byte {
	words := make([]uint32, (size+CellSize-1)/CellSize+1)
	buf := unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), size)
	for i := range buf {
		buf[i] = fill
	}
	return buf
}

func mustNew(t interface {
	Helper()
	Fatalf(string, ...any)
}, g Geometry, region []byte) *Sink {
	t.Helper()
	s, err := New(g, region)
	if err != nil {
		t.Fatalf("New(%+v): %v", g, err)
	}
	return s
}
