// Package fake implements a simulated sweep device for tests and demos.
package fake

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"

	"go.viam.com/sweep"
	"go.viam.com/sweep/libsweep"
)

func init() {
	sweep.RegisterType(sweep.TypeFake, sweep.TypeRegistration{
		New: func(desc sweep.Description, logger golog.Logger) (*sweep.Sweep, error) {
			return sweep.NewFromDriver(NewDriver(clock.New()), logger)
		},
	})
}

// Characteristics of a freshly constructed simulated scanner.
const (
	DefaultMotorSpeedHz = 5
	DefaultSampleRate   = 500
)

const maxMotorSpeedHz = 10

// NewDriver returns a driver whose devices are simulated. The clock paces
// scan rotations; pass a mock clock for deterministic tests.
func NewDriver(c clock.Clock) libsweep.Driver {
	return &driver{clock: c}
}

type driver struct {
	clock clock.Clock
}

func (d *driver) ConstructSimple() (libsweep.Device, libsweep.Error) {
	return newDevice(d.clock), nil
}

func (d *driver) Construct(port string, baudRate, timeoutMs int) (libsweep.Device, libsweep.Error) {
	return newDevice(d.clock), nil
}

type device struct {
	clock clock.Clock

	mu         sync.Mutex
	scanning   bool
	motorSpeed int
	sampleRate int
	destructed bool
}

func newDevice(c clock.Clock) *device {
	return &device{
		clock:      c,
		motorSpeed: DefaultMotorSpeedHz,
		sampleRate: DefaultSampleRate,
	}
}

func (d *device) StartScanning() libsweep.Error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.destructed {
		return newError("device is destructed")
	}
	if d.scanning {
		return newError("device is already scanning")
	}
	d.scanning = true
	return nil
}

func (d *device) StopScanning() libsweep.Error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.destructed {
		return newError("device is destructed")
	}
	d.scanning = false
	return nil
}

// GetScan blocks for one motor rotation and then returns evenly spaced
// samples of a synthetic room.
func (d *device) GetScan(timeoutMs int) (libsweep.Scan, libsweep.Error) {
	d.mu.Lock()
	scanning, speed, rate, destructed := d.scanning, d.motorSpeed, d.sampleRate, d.destructed
	d.mu.Unlock()

	if destructed {
		return nil, newError("device is destructed")
	}
	if !scanning {
		return nil, newError("device is not scanning")
	}
	if speed == 0 {
		return nil, newError("motor is stationary")
	}

	rotation := time.Second / time.Duration(speed)
	if timeoutMs > 0 && time.Duration(timeoutMs)*time.Millisecond < rotation {
		return nil, newError(fmt.Sprintf("timed out after %dms waiting for scan", timeoutMs))
	}
	d.clock.Sleep(rotation)

	n := rate / speed
	samples := make([]sample, 0, n)
	for i := 0; i < n; i++ {
		angleMilliDeg := i * 360000 / n
		// a round room, 3m across, with a gentle bulge
		angleRad := float64(angleMilliDeg) / 1000 * math.Pi / 180
		distance := 300 + 50*math.Sin(2*angleRad)
		samples = append(samples, sample{angleMilliDeg: angleMilliDeg, distance: int(distance)})
	}
	return &scan{samples: samples}, nil
}

func (d *device) MotorSpeed() (int, libsweep.Error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.destructed {
		return 0, newError("device is destructed")
	}
	return d.motorSpeed, nil
}

func (d *device) SetMotorSpeed(speedHz int) libsweep.Error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.destructed {
		return newError("device is destructed")
	}
	if speedHz < 0 || speedHz > maxMotorSpeedHz {
		return newError(fmt.Sprintf("motor speed %dHz is out of range [0,%d]", speedHz, maxMotorSpeedHz))
	}
	d.motorSpeed = speedHz
	return nil
}

func (d *device) SampleRate() (int, libsweep.Error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.destructed {
		return 0, newError("device is destructed")
	}
	return d.sampleRate, nil
}

func (d *device) Reset() libsweep.Error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.destructed {
		return newError("device is destructed")
	}
	d.scanning = false
	d.motorSpeed = DefaultMotorSpeedHz
	d.sampleRate = DefaultSampleRate
	return nil
}

func (d *device) Destruct() {
	d.mu.Lock()
	d.destructed = true
	d.scanning = false
	d.mu.Unlock()
}

type sample struct {
	angleMilliDeg int
	distance      int
}

type scan struct {
	samples []sample
}

func (s *scan) NumberOfSamples() int {
	return len(s.samples)
}

func (s *scan) AngleMilliDeg(i int) int {
	return s.samples[i].angleMilliDeg
}

func (s *scan) Distance(i int) int {
	return s.samples[i].distance
}

func (s *scan) Destruct() {}

type fakeError struct {
	msg string
}

func newError(msg string) libsweep.Error {
	return &fakeError{msg: msg}
}

func (e *fakeError) Message() string {
	return e.msg
}

func (e *fakeError) Destruct() {}
