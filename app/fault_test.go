package app

import (
	"image/color"
	"testing"

	"gopfb/hal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTakeRunes(t *testing.T) {
	cases := []struct {
		s          string
		n          int16
		head, tail string
	}{
		{"hello", 3, "hel", "lo"},
		{"hi", 5, "hi", ""},
		{"", 2, "", ""},
		{"abc", 0, "", "abc"},
		{"żółw", 2, "żó", "łw"},
	}
	for _, c := range cases {
		head, tail := takeRunes(c.s, c.n)
		assert.Equal(t, c.head, head, "%q/%d", c.s, c.n)
		assert.Equal(t, c.tail, tail, "%q/%d", c.s, c.n)
	}
}

func TestGuardPaintsFault(t *testing.T) {
	mode := hal.ModeInfo{
		HorizontalResolution: 120,
		VerticalResolution:   60,
		PixelsPerScanLine:    120,
		PixelFormat:          hal.PixelRedGreenBlueReserved8BitPerColor,
	}
	r := newRegion(t, mode)
	log := &memLogger{}
	sc, err := New(mode, r, Config{Log: log})
	require.NoError(t, err)

	step := sc.Guard(func() error { panic("boom") })
	err = step()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Contains(t, log.lines[len(log.lines)-1], "fault: panic: boom")

	img, err := hal.Snapshot(r.Bytes(), sc.Sink().Geometry())
	require.NoError(t, err)
	white, dark := 0, 0
	for y := 0; y < 60; y++ {
		for x := 0; x < 120; x++ {
			switch img.RGBAAt(x, y) {
			case color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}:
				white++
			case color.RGBA{A: 0xFF}:
				dark++
			}
		}
	}
	assert.Positive(t, dark)
	assert.Greater(t, white, dark)
	assert.Equal(t, 120*60, white+dark)
}

func TestGuardPassesThrough(t *testing.T) {
	mode := hal.ModeInfo{
		HorizontalResolution: 8,
		VerticalResolution:   8,
		PixelsPerScanLine:    8,
		PixelFormat:          hal.PixelRedGreenBlueReserved8BitPerColor,
	}
	sc, err := New(mode, newRegion(t, mode), Config{})
	require.NoError(t, err)

	calls := 0
	require.NoError(t, sc.Guard(func() error { calls++; return nil })())
	assert.Equal(t, 1, calls)
}
