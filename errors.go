package sweep

import (
	"fmt"

	"github.com/pkg/errors"

	"go.viam.com/sweep/libsweep"
)

// ErrClosed is returned by operations attempted after Close.
var ErrClosed = errors.New("device is closed")

// An ArgumentError indicates a malformed call. It is always detected before
// any native call is made.
type ArgumentError struct {
	msg string
}

func newArgumentError(format string, args ...interface{}) *ArgumentError {
	return &ArgumentError{msg: fmt.Sprintf(format, args...)}
}

func (e *ArgumentError) Error() string {
	return e.msg
}

// A ConstructionError indicates the native driver failed to detect or open
// a device.
type ConstructionError struct {
	Err error
}

func (e *ConstructionError) Error() string {
	return "device construction failed: " + e.Err.Error()
}

// Unwrap returns the underlying driver failure.
func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// A DeviceError is any failure reported by the native driver. Message
// carries the driver's message verbatim.
type DeviceError struct {
	Op      string
	Message string
}

func (e *DeviceError) Error() string {
	return e.Op + ": " + e.Message
}

// takeError consumes a native error object, if any. The message is read
// first and the object destructed immediately after, so no return path can
// leak it or free it twice.
func takeError(op string, nerr libsweep.Error) error {
	if nerr == nil {
		return nil
	}
	msg := nerr.Message()
	nerr.Destruct()
	return &DeviceError{Op: op, Message: msg}
}
