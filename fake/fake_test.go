package fake_test

import (
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	"go.viam.com/test"

	"go.viam.com/sweep"
	"go.viam.com/sweep/fake"
)

func TestDeviceLifecycle(t *testing.T) {
	drv := fake.NewDriver(clock.New())
	dev, nerr := drv.ConstructSimple()
	test.That(t, nerr, test.ShouldBeNil)

	speed, nerr := dev.MotorSpeed()
	test.That(t, nerr, test.ShouldBeNil)
	test.That(t, speed, test.ShouldEqual, fake.DefaultMotorSpeedHz)

	rate, nerr := dev.SampleRate()
	test.That(t, nerr, test.ShouldBeNil)
	test.That(t, rate, test.ShouldEqual, fake.DefaultSampleRate)

	// scans require scanning to have been started
	_, nerr = dev.GetScan(1000)
	test.That(t, nerr, test.ShouldNotBeNil)
	test.That(t, nerr.Message(), test.ShouldContainSubstring, "not scanning")
	nerr.Destruct()

	test.That(t, dev.SetMotorSpeed(11), test.ShouldNotBeNil)
	test.That(t, dev.SetMotorSpeed(10), test.ShouldBeNil)

	test.That(t, dev.StartScanning(), test.ShouldBeNil)
	nerr = dev.StartScanning()
	test.That(t, nerr, test.ShouldNotBeNil)
	test.That(t, nerr.Message(), test.ShouldContainSubstring, "already scanning")

	// a timeout shorter than one rotation cannot be satisfied
	_, nerr = dev.GetScan(50)
	test.That(t, nerr, test.ShouldNotBeNil)
	test.That(t, nerr.Message(), test.ShouldContainSubstring, "timed out")

	scan, nerr := dev.GetScan(1000)
	test.That(t, nerr, test.ShouldBeNil)
	n := scan.NumberOfSamples()
	test.That(t, n, test.ShouldEqual, fake.DefaultSampleRate/10)
	lastAngle := -1
	for i := 0; i < n; i++ {
		angle := scan.AngleMilliDeg(i)
		test.That(t, angle, test.ShouldBeGreaterThan, lastAngle)
		test.That(t, angle, test.ShouldBeLessThan, 360000)
		test.That(t, scan.Distance(i), test.ShouldBeGreaterThan, 0)
		lastAngle = angle
	}
	scan.Destruct()

	test.That(t, dev.Reset(), test.ShouldBeNil)
	speed, nerr = dev.MotorSpeed()
	test.That(t, nerr, test.ShouldBeNil)
	test.That(t, speed, test.ShouldEqual, fake.DefaultMotorSpeedHz)
	_, nerr = dev.GetScan(1000)
	test.That(t, nerr, test.ShouldNotBeNil)
	test.That(t, nerr.Message(), test.ShouldContainSubstring, "not scanning")

	dev.Destruct()
	_, nerr = dev.MotorSpeed()
	test.That(t, nerr, test.ShouldNotBeNil)
	test.That(t, nerr.Message(), test.ShouldContainSubstring, "destructed")
}

func TestThroughWrapper(t *testing.T) {
	logger := golog.NewTestLogger(t)
	device, err := sweep.NewFromDescription(sweep.Description{Type: sweep.TypeFake}, logger)
	test.That(t, err, test.ShouldBeNil)

	test.That(t, device.SetMotorSpeed(10), test.ShouldBeNil)
	test.That(t, device.StartScanning(), test.ShouldBeNil)

	type scanResult struct {
		measurements sweep.Measurements
		err          error
	}
	results := make(chan scanResult, 1)
	err = device.Scan(1000, func(scanErr error, ms sweep.Measurements) {
		results <- scanResult{measurements: ms, err: scanErr}
	})
	test.That(t, err, test.ShouldBeNil)

	res := <-results
	test.That(t, res.err, test.ShouldBeNil)
	test.That(t, res.measurements, test.ShouldHaveLength, fake.DefaultSampleRate/10)
	test.That(t, res.measurements[0].AngleDeg(), test.ShouldEqual, 0.0)

	test.That(t, device.StopScanning(), test.ShouldBeNil)
	test.That(t, device.Close(), test.ShouldBeNil)
}
