//go:build !libsweep

package libsweep

// New returns a Driver that fails all constructions. Talking to real
// hardware requires the native library to be installed and the module to be
// built with the libsweep tag.
func New() Driver {
	return notSupportedDriver{}
}

type notSupportedDriver struct{}

func (notSupportedDriver) ConstructSimple() (Device, Error) {
	return nil, notSupportedError{}
}

func (notSupportedDriver) Construct(port string, baudRate, timeoutMs int) (Device, Error) {
	return nil, notSupportedError{}
}

type notSupportedError struct{}

func (notSupportedError) Message() string {
	return "libsweep support not compiled in; rebuild with -tags libsweep"
}

func (notSupportedError) Destruct() {}
