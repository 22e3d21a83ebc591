//go:build !tinygo

package hal

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/juju/errors"
	"github.com/spf13/afero"
)

// DefaultSysfsDir is the sysfs directory of the first framebuffer device.
const DefaultSysfsDir = "/sys/class/graphics/fb0"

// ReadSysfsMode builds mode information from a Linux framebuffer's sysfs
// attributes. Sysfs does not expose the channel order, so format is supplied
// by the caller.
func ReadSysfsMode(fs afero.Fs, dir string, format PixelFormat) (ModeInfo, error) {
	bpp, err := readSysfsUint(fs, dir, "bits_per_pixel")
	if err != nil {
		return ModeInfo{}, err
	}
	if bpp != 32 {
		return ModeInfo{}, errors.NotSupportedf("%d bits per pixel", bpp)
	}

	size, err := readSysfs(fs, dir, "virtual_size")
	if err != nil {
		return ModeInfo{}, err
	}
	ws, hs, ok := strings.Cut(size, ",")
	if !ok {
		return ModeInfo{}, errors.NotValidf("virtual_size %q", size)
	}
	w, err := strconv.ParseUint(ws, 10, 32)
	if err != nil {
		return ModeInfo{}, errors.Annotate(err, "virtual_size width")
	}
	h, err := strconv.ParseUint(hs, 10, 32)
	if err != nil {
		return ModeInfo{}, errors.Annotate(err, "virtual_size height")
	}

	stride, err := readSysfsUint(fs, dir, "stride")
	if err != nil {
		return ModeInfo{}, err
	}
	if stride%4 != 0 {
		return ModeInfo{}, errors.NotSupportedf("stride of %d bytes", stride)
	}

	return ModeInfo{
		HorizontalResolution: uint32(w),
		VerticalResolution:   uint32(h),
		PixelFormat:          format,
		PixelsPerScanLine:    uint32(stride / 4),
	}, nil
}

func readSysfs(fs afero.Fs, dir, name string) (string, error) {
	b, err := afero.ReadFile(fs, filepath.Join(dir, name))
	if err != nil {
		return "", errors.Annotatef(err, "read %s", name)
	}
	return strings.TrimSpace(string(b)), nil
}

func readSysfsUint(fs afero.Fs, dir, name string) (uint64, error) {
	s, err := readSysfs(fs, dir, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, errors.Annotatef(err, "parse %s", name)
	}
	return v, nil
}
