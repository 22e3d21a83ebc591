//go:build !linux && !tinygo

package hal

import (
	"runtime"

	"github.com/juju/errors"
)

// DeviceRegion is unavailable on this platform.
type DeviceRegion struct{}

// MapDevice always fails outside Linux.
func MapDevice(path string, size int) (*DeviceRegion, error) {
	return nil, errors.NotSupportedf("framebuffer device %s on %s", path, runtime.GOOS)
}

func (r *DeviceRegion) Bytes() []byte { return nil }
func (r *DeviceRegion) Close() error  { return nil }
