package sweep_test

import (
	"errors"
	"testing"

	"github.com/edaniels/golog"
	"go.viam.com/test"

	"go.viam.com/sweep"
	"go.viam.com/sweep/inject"
	"go.viam.com/sweep/libsweep"
	"go.viam.com/sweep/usb"
)

func TestCheckProductDeviceIDs(t *testing.T) {
	test.That(t, sweep.CheckProductDeviceIDs(0x0403, 0x6015), test.ShouldEqual, sweep.TypeSweep)
	test.That(t, sweep.CheckProductDeviceIDs(0x1111, 0x2222), test.ShouldEqual, sweep.TypeUnknown)
}

func TestNewFromDescription(t *testing.T) {
	logger := golog.NewTestLogger(t)

	_, err := sweep.NewFromDescription(sweep.Description{Type: "imaginary"}, logger)
	var argErr *sweep.ArgumentError
	test.That(t, errors.As(err, &argErr), test.ShouldBeTrue)

	custom := sweep.Type("testdev")
	var gotDesc sweep.Description
	sweep.RegisterType(custom, sweep.TypeRegistration{
		USBInfo: &usb.Identifier{Vendor: 0x1234, Product: 0x5678},
		New: func(desc sweep.Description, logger golog.Logger) (*sweep.Sweep, error) {
			gotDesc = desc
			dev := &inject.Device{}
			dev.DestructFunc = func() {}
			drv := &inject.Driver{}
			drv.ConstructSimpleFunc = func() (libsweep.Device, libsweep.Error) {
				return dev, nil
			}
			return sweep.NewFromDriver(drv, logger)
		},
	})
	test.That(t, sweep.CheckProductDeviceIDs(0x1234, 0x5678), test.ShouldEqual, custom)

	device, err := sweep.NewFromDescription(sweep.Description{Type: custom, Path: "somewhere"}, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, gotDesc, test.ShouldResemble, sweep.Description{Type: custom, Path: "somewhere"})
	test.That(t, device.Close(), test.ShouldBeNil)
}
