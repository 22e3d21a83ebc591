//go:build !tinygo && !cgo

package hal

import (
	"gopfb/sink"

	"github.com/juju/errors"
)

func RunWindow(_ string, _ []byte, _ sink.Geometry, _ func() error) error {
	return errors.NotSupportedf("window mode without cgo (build/run with CGO_ENABLED=1)")
}
