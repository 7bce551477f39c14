//go:build !libsweep

package libsweep

import (
	"testing"

	"go.viam.com/test"
)

func TestNotSupported(t *testing.T) {
	drv := New()

	_, nerr := drv.ConstructSimple()
	test.That(t, nerr, test.ShouldNotBeNil)
	test.That(t, nerr.Message(), test.ShouldContainSubstring, "libsweep")
	nerr.Destruct()

	_, nerr = drv.Construct("/dev/ttyUSB0", 115200, 1000)
	test.That(t, nerr, test.ShouldNotBeNil)
	test.That(t, nerr.Message(), test.ShouldContainSubstring, "-tags libsweep")
	nerr.Destruct()
}
