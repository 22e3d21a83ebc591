//go:build !tinygo && cgo

package hal

import (
	"image"

	"gopfb/sink"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/juju/errors"
)

// RunWindow opens a desktop window that shows the framebuffer region and
// calls step once per frame. It blocks until the window closes.
func RunWindow(title string, region []byte, g sink.Geometry, step func() error) error {
	if !g.Format.Valid() {
		return errors.NotSupportedf("pixel format %s", g.Format)
	}
	need, err := g.RegionSize()
	if err != nil {
		return err
	}
	if len(region) < need || g.Width == 0 || g.Height == 0 {
		return errors.NotValidf("window over %dx%d region of %d bytes", g.Width, g.Height, len(region))
	}

	w := &hostWindow{region: region, g: g, step: step}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(int(g.Width)*scaleFor(g), int(g.Height)*scaleFor(g))
	ebiten.SetTPS(60)
	return ebiten.RunGame(w)
}

type hostWindow struct {
	region []byte
	g      sink.Geometry
	img    *image.RGBA
	fbImg  *ebiten.Image
	step   func() error
}

func (w *hostWindow) Update() error {
	if w.step != nil {
		if err := w.step(); err != nil {
			return err
		}
	}
	return nil
}

func (w *hostWindow) Draw(screen *ebiten.Image) {
	width, height := int(w.g.Width), int(w.g.Height)
	if w.img == nil {
		w.img = image.NewRGBA(image.Rect(0, 0, width, height))
		w.fbImg = ebiten.NewImage(width, height)
	}

	snapshotInto(w.img.Pix, w.region, w.g)

	w.fbImg.WritePixels(w.img.Pix)
	screen.DrawImage(w.fbImg, nil)
}

func (w *hostWindow) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(w.g.Width), int(w.g.Height)
}

// scaleFor doubles small framebuffers so they stay readable on the desktop.
func scaleFor(g sink.Geometry) int {
	if g.Width <= 640 && g.Height <= 480 {
		return 2
	}
	return 1
}
