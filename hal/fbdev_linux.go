//go:build linux && !tinygo

package hal

import (
	"os"

	"github.com/juju/errors"
	"golang.org/x/sys/unix"
)

// DeviceRegion is a framebuffer device node mapped into memory.
type DeviceRegion struct {
	f   *os.File
	buf []byte
}

// MapDevice maps the first size bytes of a framebuffer device such as
// /dev/fb0 for shared read/write access.
func MapDevice(path string, size int) (*DeviceRegion, error) {
	if size <= 0 {
		return nil, errors.NotValidf("mapping of %d bytes", size)
	}
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, errors.Annotate(err, "open framebuffer")
	}
	buf, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, errors.Annotatef(err, "mmap %s", path)
	}
	return &DeviceRegion{f: f, buf: buf}, nil
}

func (r *DeviceRegion) Bytes() []byte { return r.buf }

// Close unmaps the region and closes the device.
func (r *DeviceRegion) Close() error {
	if r.buf == nil {
		return nil
	}
	err := unix.Munmap(r.buf)
	r.buf = nil
	if cerr := r.f.Close(); err == nil {
		err = cerr
	}
	return errors.Trace(err)
}
