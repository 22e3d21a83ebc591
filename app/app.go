// Package app draws the demo scene: a color test pattern, a banner and a
// console that receives a status line every few ticks.
package app

import (
	"fmt"
	"image"
	"image/color"

	"gopfb/display"
	"gopfb/hal"
	"gopfb/internal/buildinfo"
	"gopfb/sink"
	"gopfb/term"

	"github.com/juju/errors"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Config controls the demo scene.
type Config struct {
	// Banner is printed under the color bars.
	Banner string
	// Log, when set, receives a copy of every console line.
	Log hal.Logger
	// LineEvery is the number of ticks between status lines (default 60).
	LineEvery uint64
}

// Scene is the running demo.
type Scene struct {
	cfg  Config
	sink *sink.Sink
	disp *display.Display
	con  *term.Console
	tick uint64
}

var bars = []sink.RGB{
	{R: 0xFF, G: 0xFF, B: 0xFF},
	{R: 0xFF, G: 0xFF},
	{G: 0xFF, B: 0xFF},
	{G: 0xFF},
	{R: 0xFF, B: 0xFF},
	{R: 0xFF},
	{B: 0xFF},
	{},
}

const (
	bannerHeight = 16

	// Smallest area that holds one console line.
	consoleMinWidth  = 16
	consoleMinHeight = 10
)

// New builds a sink over region for the firmware mode and draws the static
// part of the scene.
func New(mode hal.ModeInfo, region hal.Region, cfg Config) (*Scene, error) {
	if cfg.LineEvery == 0 {
		cfg.LineEvery = 60
	}
	if cfg.Banner == "" {
		cfg.Banner = "gopfb " + buildinfo.Short()
	}

	g, err := mode.Geometry()
	if err != nil {
		return nil, errors.Annotate(err, "firmware mode")
	}
	s, err := sink.New(g, region.Bytes())
	if err != nil {
		return nil, errors.Annotate(err, "framebuffer")
	}

	sc := &Scene{cfg: cfg, sink: s, disp: display.New(s)}
	if err := sc.drawStatic(); err != nil {
		return nil, err
	}

	w, h := sc.disp.Size()
	top := int(sc.barHeight()) + bannerHeight
	if int(w) >= consoleMinWidth && top+consoleMinHeight <= int(h) {
		sc.con = term.New(sc.disp.Sub(image.Rect(0, top, int(w), int(h))))
	}
	sc.println(fmt.Sprintf("%dx%d stride %d %s", g.Width, g.Height, g.Stride, g.Format))
	return sc, nil
}

// Sink returns the scene's pixel sink.
func (sc *Scene) Sink() *sink.Sink { return sc.sink }

// Step advances the scene by one tick.
func (sc *Scene) Step() error {
	sc.tick++
	if sc.tick%sc.cfg.LineEvery == 0 {
		sc.println(fmt.Sprintf("tick %d", sc.tick))
	}
	if sc.con == nil {
		return sc.disp.Err()
	}
	return sc.con.Flush()
}

func (sc *Scene) println(line string) {
	if sc.con != nil {
		sc.con.WriteLineString(line)
	}
	if sc.cfg.Log != nil {
		sc.cfg.Log.WriteLineString(line)
	}
}

func (sc *Scene) barHeight() int16 {
	_, h := sc.disp.Size()
	return h / 4
}

func (sc *Scene) drawStatic() error {
	if err := sc.sink.Fill(sink.RGB{}); err != nil {
		return errors.Annotate(err, "clear")
	}

	w, _ := sc.disp.Size()
	bh := int(sc.barHeight())
	width := int(w)
	row := make([]sink.Pixel, width)
	for y := 0; y < bh; y++ {
		for x := 0; x < width; x++ {
			row[x] = sink.Pixel{Point: image.Pt(x, y), Color: bars[x*len(bars)/width]}
		}
		if err := sc.sink.Draw(row); err != nil {
			return errors.Annotate(err, "color bars")
		}
	}

	fg := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	tinyfont.WriteLine(sc.disp, &proggy.TinySZ8pt7b, 2, int16(bh)+12, sc.cfg.Banner, fg)
	return errors.Annotate(sc.disp.Err(), "banner")
}
