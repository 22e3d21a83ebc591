package sink

import (
	"bytes"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sentinel = 0xA5

func TestSinglePixelBGR(t *testing.T) {
	g := Geometry{Width: 4, Height: 4, Stride: 4, Format: FormatBGR}
	region := alignedRegion(64, sentinel)
	s := mustNew(t, g, region)

	require.NoError(t, s.Draw([]Pixel{{Point: image.Pt(2, 2), Color: RGB{R: 255}}}))

	want := bytes.Repeat([]byte{sentinel}, 64)
	want[40], want[41], want[42] = 0, 0, 255
	assert.Equal(t, want, region)
}

func TestWritePixelLayout(t *testing.T) {
	g := Geometry{Width: 800, Height: 600, Stride: 1024, Format: FormatRGB}
	size, err := g.RegionSize()
	require.NoError(t, err)
	region := alignedRegion(size, 0)
	s := mustNew(t, g, region)

	require.NoError(t, s.WritePixel(image.Pt(10, 5), RGB{R: 1, G: 2, B: 3}))
	assert.Equal(t, []byte{1, 2, 3, 0}, region[20520:20524])

	w, h := s.Size()
	assert.Equal(t, uint32(800), w)
	assert.Equal(t, uint32(600), h)
	assert.Equal(t, g, s.Geometry())
}

func TestReservedByteKept(t *testing.T) {
	g := Geometry{Width: 2, Height: 1, Stride: 2, Format: FormatRGB}
	region := alignedRegion(8, 0)
	region[3] = 0x7f
	s := mustNew(t, g, region)

	require.NoError(t, s.WritePixel(image.Pt(0, 0), RGB{R: 9, G: 8, B: 7}))
	assert.Equal(t, []byte{9, 8, 7, 0x7f, 0, 0, 0, 0}, region)
}

func TestOutOfRangeIsNoop(t *testing.T) {
	g := Geometry{Width: 3, Height: 2, Stride: 5, Format: FormatRGB}
	region := alignedRegion(2*5*CellSize, sentinel)
	s := mustNew(t, g, region)

	points := []image.Point{
		{X: -1, Y: 0},
		{X: 0, Y: -1},
		{X: 3, Y: 0},
		{X: 4, Y: 1}, // inside the stride padding
		{X: 0, Y: 2},
		{X: -1 << 40, Y: 1 << 40},
	}
	for _, p := range points {
		require.NoError(t, s.WritePixel(p, RGB{G: 1}), "%v", p)
	}
	assert.Equal(t, bytes.Repeat([]byte{sentinel}, len(region)), region)
}

func TestDrawSkipsOutOfRange(t *testing.T) {
	g := Geometry{Width: 4, Height: 1, Stride: 4, Format: FormatRGB}
	region := alignedRegion(16, 0)
	s := mustNew(t, g, region)

	batch := []Pixel{
		{Point: image.Pt(0, 0), Color: RGB{R: 1}},
		{Point: image.Pt(1, 0), Color: RGB{R: 2}},
		{Point: image.Pt(9, 0), Color: RGB{R: 3}},
		{Point: image.Pt(2, 0), Color: RGB{R: 4}},
		{Point: image.Pt(3, 0), Color: RGB{R: 5}},
	}
	require.NoError(t, s.Draw(batch))
	assert.Equal(t, []byte{
		1, 0, 0, 0,
		2, 0, 0, 0,
		4, 0, 0, 0,
		5, 0, 0, 0,
	}, region)
}

func TestDrawNilColorContinues(t *testing.T) {
	g := Geometry{Width: 2, Height: 1, Stride: 2, Format: FormatRGB}
	region := alignedRegion(8, 0)
	s := mustNew(t, g, region)

	err := s.Draw([]Pixel{
		{Point: image.Pt(0, 0), Color: nil},
		{Point: image.Pt(1, 0), Color: RGB{B: 6}},
	})
	assert.True(t, IsUnsupported(err))
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 6, 0}, region)
}

func TestUnsupportedFormat(t *testing.T) {
	for _, f := range []PixelFormat{0, 3, 200} {
		g := Geometry{Width: 2, Height: 2, Stride: 2, Format: f}
		region := alignedRegion(16, sentinel)
		s := mustNew(t, g, region)

		err := s.Draw([]Pixel{{Point: image.Pt(0, 0), Color: RGB{R: 1}}})
		assert.True(t, IsUnsupported(err), "Draw %s: %v", f, err)

		err = s.Draw(nil)
		assert.True(t, IsUnsupported(err), "empty Draw %s: %v", f, err)

		err = s.WritePixel(image.Pt(1, 1), RGB{R: 1})
		assert.True(t, IsUnsupported(err), "WritePixel %s: %v", f, err)

		err = s.Fill(RGB{R: 1})
		assert.True(t, IsUnsupported(err), "Fill %s: %v", f, err)

		assert.Equal(t, bytes.Repeat([]byte{sentinel}, 16), region)
	}
}

func TestNewRejects(t *testing.T) {
	aligned := alignedRegion(64, 0)

	cases := []struct {
		name   string
		g      Geometry
		region []byte
	}{
		{"stride below width", Geometry{Width: 5, Height: 1, Stride: 4, Format: FormatRGB}, aligned},
		{"region too small", Geometry{Width: 4, Height: 5, Stride: 4, Format: FormatRGB}, aligned},
		{"unaligned region", Geometry{Width: 2, Height: 2, Stride: 2, Format: FormatRGB}, aligned[1:]},
		{"region overflows", Geometry{Width: 1, Height: 1 << 31, Stride: 1 << 31, Format: FormatRGB}, aligned},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := New(c.g, c.region)
			assert.Nil(t, s)
			assert.True(t, IsUnsupported(err), "%v", err)
		})
	}
}

func TestNewEmpty(t *testing.T) {
	s, err := New(Geometry{Format: FormatRGB}, nil)
	require.NoError(t, err)
	require.NoError(t, s.WritePixel(image.Pt(0, 0), RGB{R: 1}))
	require.NoError(t, s.Fill(RGB{R: 1}))
}

func TestFill(t *testing.T) {
	g := Geometry{Width: 2, Height: 2, Stride: 3, Format: FormatBGR}
	region := alignedRegion(2*3*CellSize, sentinel)
	s := mustNew(t, g, region)

	require.NoError(t, s.Fill(RGB{R: 1, G: 2, B: 3}))
	cell := []byte{3, 2, 1, sentinel}
	pad := []byte{sentinel, sentinel, sentinel, sentinel}
	var want []byte
	for y := 0; y < 2; y++ {
		want = append(want, cell...)
		want = append(want, cell...)
		want = append(want, pad...)
	}
	assert.Equal(t, want, region)
}

func TestScrollUp(t *testing.T) {
	g := Geometry{Width: 4, Height: 4, Stride: 5, Format: FormatRGB}
	region := alignedRegion(80, sentinel)
	s := mustNew(t, g, region)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			require.NoError(t, s.WritePixel(image.Pt(x, y), RGB{R: byte(y + 1), G: byte(x + 1)}))
		}
	}

	require.NoError(t, s.ScrollUp(image.Rect(1, 0, 3, 9), 1))

	cell := func(x, y int) []byte { return region[(y*5+x)*CellSize : (y*5+x+1)*CellSize] }
	for y := 0; y < 4; y++ {
		// Columns outside the rectangle stay put.
		assert.Equal(t, []byte{byte(y + 1), 1, 0, sentinel}, cell(0, y), "row %d", y)
		assert.Equal(t, []byte{byte(y + 1), 4, 0, sentinel}, cell(3, y), "row %d", y)
	}
	for x := 1; x < 3; x++ {
		for y := 0; y < 3; y++ {
			assert.Equal(t, []byte{byte(y + 2), byte(x + 1), 0, sentinel}, cell(x, y), "cell %d,%d", x, y)
		}
		// The bottom row keeps its old contents.
		assert.Equal(t, []byte{4, byte(x + 1), 0, sentinel}, cell(x, 3))
	}
	// Stride padding is untouched.
	assert.Equal(t, []byte{sentinel, sentinel, sentinel, sentinel}, cell(4, 0))

	before := append([]byte(nil), region...)
	require.NoError(t, s.ScrollUp(image.Rect(0, 0, 4, 4), 0))
	require.NoError(t, s.ScrollUp(image.Rect(5, 5, 9, 9), 1))
	assert.Equal(t, before, region)
}

func TestScrollUpUnsupportedFormat(t *testing.T) {
	region := alignedRegion(64, sentinel)
	s := mustNew(t, Geometry{Width: 4, Height: 4, Stride: 4, Format: 9}, region)
	err := s.ScrollUp(image.Rect(0, 0, 4, 4), 1)
	assert.True(t, IsUnsupported(err), "%v", err)
	assert.Equal(t, bytes.Repeat([]byte{sentinel}, 64), region)
}
