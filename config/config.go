// Package config loads the runtime configuration from a TOML file.
package config

import (
	"bytes"
	"os"

	"gopfb/hal"

	"github.com/go-playground/validator/v10"
	"github.com/juju/errors"
	"github.com/pelletier/go-toml/v2"
)

// Mode describes the framebuffer when it is not read from sysfs.
type Mode struct {
	Width  uint32 `toml:"width" validate:"gte=1"`
	Height uint32 `toml:"height" validate:"gte=1"`
	// Stride is in pixels; 0 means Width.
	Stride uint32 `toml:"stride" validate:"omitempty,gtefield=Width"`
	Format string `toml:"format" validate:"oneof=rgb bgr"`
}

type Config struct {
	Mode Mode `toml:"mode"`

	// Source selects where the framebuffer lives: "memory" or "device".
	Source string `toml:"source" validate:"oneof=memory device"`
	Device string `toml:"device" validate:"required_if=Source device"`
	// Sysfs, when set with a device source, supplies the mode instead of Mode.
	Sysfs string `toml:"sysfs"`

	// Run is "headless" or "window".
	Run      string `toml:"run" validate:"oneof=headless window"`
	Hz       int    `toml:"hz" validate:"gte=1,lte=1000"`
	Ticks    uint64 `toml:"ticks"`
	Snapshot string `toml:"snapshot"`
	LogLevel string `toml:"log_level" validate:"oneof=trace debug info warn error"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Mode: Mode{
			Width:  320,
			Height: 240,
			Format: "bgr",
		},
		Source:   "memory",
		Device:   "/dev/fb0",
		Run:      "headless",
		Hz:       60,
		Ticks:    120,
		LogLevel: "info",
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Annotate(err, "read config")
	}
	d := toml.NewDecoder(bytes.NewReader(b))
	d.DisallowUnknownFields()
	if err := d.Decode(&cfg); err != nil {
		return Config{}, errors.Annotatef(err, "parse %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks field ranges and cross-field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.NewNotValid(err, "config")
	}
	return nil
}

// ModeInfo returns the configured mode in firmware terms.
func (c Config) ModeInfo() hal.ModeInfo {
	stride := c.Mode.Stride
	if stride == 0 {
		stride = c.Mode.Width
	}
	return hal.ModeInfo{
		HorizontalResolution: c.Mode.Width,
		VerticalResolution:   c.Mode.Height,
		PixelFormat:          c.PixelFormat(),
		PixelsPerScanLine:    stride,
	}
}

// PixelFormat maps the configured format name to the firmware tag.
func (c Config) PixelFormat() hal.PixelFormat {
	if c.Mode.Format == "rgb" {
		return hal.PixelRedGreenBlueReserved8BitPerColor
	}
	return hal.PixelBlueGreenRedReserved8BitPerColor
}
