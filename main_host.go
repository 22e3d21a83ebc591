//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"os/signal"

	"gopfb/app"
	"gopfb/config"
	"gopfb/hal"
	"gopfb/internal/buildinfo"

	"github.com/juju/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML configuration file.")
		source     = flag.String("source", "", "Framebuffer source: memory|device.")
		device     = flag.String("device", "", "Framebuffer device node (device source).")
		sysfs      = flag.String("sysfs", "", "Read the mode from this sysfs dir (device source), e.g. "+hal.DefaultSysfsDir+".")
		width      = flag.Uint("width", 0, "Horizontal resolution.")
		height     = flag.Uint("height", 0, "Vertical resolution.")
		stride     = flag.Uint("stride", 0, "Pixels per scan line (0 = width).")
		format     = flag.String("format", "", "Pixel format: rgb|bgr.")
		window     = flag.Bool("window", false, "Show the framebuffer in a window instead of running headless.")
		hz         = flag.Int("hz", 0, "Tick rate in headless mode.")
		ticks      = flag.Uint64("ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
		snapshot   = flag.String("snapshot", "", "Write a PNG of the framebuffer after a headless run.")
		logLevel   = flag.String("log-level", "", "trace|debug|info|warn|error.")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fatalf("config: %v", err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "source":
			cfg.Source = *source
		case "device":
			cfg.Device = *device
		case "sysfs":
			cfg.Sysfs = *sysfs
		case "width":
			cfg.Mode.Width = uint32(*width)
		case "height":
			cfg.Mode.Height = uint32(*height)
		case "stride":
			cfg.Mode.Stride = uint32(*stride)
		case "format":
			cfg.Mode.Format = *format
		case "window":
			if *window {
				cfg.Run = "window"
			} else {
				cfg.Run = "headless"
			}
		case "hz":
			cfg.Hz = *hz
		case "ticks":
			cfg.Ticks = *ticks
		case "snapshot":
			cfg.Snapshot = *snapshot
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		fatalf("config: %v", err)
	}

	log := newLogger(cfg.LogLevel)
	if err := run(cfg, log); err != nil {
		if errors.Cause(err) == context.Canceled {
			return
		}
		log.Error().Err(err).Msg("exit")
		os.Exit(1)
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().
		Timestamp().
		Str("build", buildinfo.Short()).
		Logger()
}

func run(cfg config.Config, log zerolog.Logger) error {
	mode := cfg.ModeInfo()
	if cfg.Source == "device" && cfg.Sysfs != "" {
		var err error
		if mode, err = hal.ReadSysfsMode(afero.NewOsFs(), cfg.Sysfs, cfg.PixelFormat()); err != nil {
			return errors.Annotate(err, "sysfs mode")
		}
	}
	g, err := mode.Geometry()
	if err != nil {
		return errors.Annotate(err, "mode")
	}
	size, err := g.RegionSize()
	if err != nil {
		return errors.Annotate(err, "mode")
	}

	var region hal.Region
	switch cfg.Source {
	case "device":
		dev, err := hal.MapDevice(cfg.Device, size)
		if err != nil {
			return err
		}
		region = dev
	default:
		region = hal.NewMemRegion(size)
	}
	defer func() {
		if err := region.Close(); err != nil {
			log.Warn().Err(err).Msg("release framebuffer")
		}
	}()

	log.Info().
		Str("source", cfg.Source).
		Uint32("width", g.Width).
		Uint32("height", g.Height).
		Uint32("stride", g.Stride).
		Stringer("format", g.Format).
		Int("bytes", size).
		Msg("framebuffer")

	scene, err := app.New(mode, region, app.Config{Log: hal.NewLogger(log.With().Str("from", "console").Logger())})
	if err != nil {
		return err
	}

	step := scene.Guard(scene.Step)
	if cfg.Run == "window" {
		return hal.RunWindow("gopfb ("+buildinfo.Short()+")", region.Bytes(), g, step)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := hal.RunHeadless(ctx, step, hal.HeadlessConfig{Hz: cfg.Hz, Ticks: cfg.Ticks}); err != nil {
		return err
	}
	if cfg.Snapshot != "" {
		if err := writeSnapshot(cfg.Snapshot, region, scene); err != nil {
			return err
		}
		log.Info().Str("path", cfg.Snapshot).Msg("snapshot written")
	}
	return nil
}

func writeSnapshot(path string, region hal.Region, scene *app.Scene) error {
	img, err := hal.Snapshot(region.Bytes(), scene.Sink().Geometry())
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Annotate(err, "snapshot")
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return errors.Annotate(err, "snapshot")
	}
	return errors.Annotate(f.Close(), "snapshot")
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
