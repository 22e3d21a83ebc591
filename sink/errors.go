package sink

import "github.com/juju/errors"

// IsUnsupported reports whether err is the sink's only error kind: a pixel
// format or an address computation the sink cannot honor.
func IsUnsupported(err error) bool {
	return err != nil && errors.IsNotSupported(err)
}

func unsupportedf(format string, args ...interface{}) error {
	return errors.NotSupportedf(format, args...)
}
