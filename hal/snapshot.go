package hal

import (
	"image"

	"gopfb/sink"

	"github.com/juju/errors"
)

// Snapshot decodes the visible part of a framebuffer region into an image.
func Snapshot(region []byte, g sink.Geometry) (*image.RGBA, error) {
	if !g.Format.Valid() {
		return nil, errors.NotSupportedf("pixel format %s", g.Format)
	}
	if g.Width > g.Stride {
		return nil, errors.NotSupportedf("stride %d narrower than width %d", g.Stride, g.Width)
	}
	need, err := g.RegionSize()
	if err != nil {
		return nil, err
	}
	if len(region) < need {
		return nil, errors.NotValidf("region of %d bytes for %d", len(region), need)
	}

	w, h := int(g.Width), int(g.Height)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	snapshotInto(img.Pix, region, g)
	return img, nil
}

func snapshotInto(dst, region []byte, g sink.Geometry) {
	w, h := int(g.Width), int(g.Height)
	stride := int(g.Stride) * sink.CellSize
	for y := 0; y < h; y++ {
		src := region[y*stride:]
		row := dst[y*w*4:]
		for x := 0; x < w; x++ {
			c := src[x*sink.CellSize:]
			p := row[x*4:]
			if g.Format == sink.FormatBGR {
				p[0], p[1], p[2] = c[2], c[1], c[0]
			} else {
				p[0], p[1], p[2] = c[0], c[1], c[2]
			}
			p[3] = 0xFF
		}
	}
}
