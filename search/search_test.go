package search

import (
	"testing"

	"github.com/pkg/errors"
	"go.bug.st/serial/enumerator"
	"go.viam.com/test"

	"go.viam.com/sweep"
)

func TestDevices(t *testing.T) {
	old := enumeratePorts
	defer func() {
		enumeratePorts = old
	}()

	enumeratePorts = func() ([]*enumerator.PortDetails, error) {
		return nil, errors.New("no ports for you")
	}
	_, err := Devices()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "no ports for you")

	enumeratePorts = func() ([]*enumerator.PortDetails, error) {
		return []*enumerator.PortDetails{
			{Name: "/dev/ttyUSB0", IsUSB: true, VID: "0403", PID: "6015"},
			{Name: "/dev/ttyS0", IsUSB: false},
			{Name: "/dev/ttyUSB1", IsUSB: true, VID: "dead", PID: "beef"},
			{Name: "/dev/ttyUSB2", IsUSB: true, VID: "nope", PID: "6015"},
		}, nil
	}
	descs, err := Devices()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, descs, test.ShouldResemble, []sweep.Description{
		{Type: sweep.TypeSweep, Path: "/dev/ttyUSB0"},
	})
}
