// Package sweep exposes the Scanse Sweep scanning LIDAR to Go programs on
// top of the vendor's native driver library.
//
// A Sweep forwards simple commands (scanning on/off, motor speed, sample
// rate, reset) directly to the driver. Scans are fetched asynchronously:
// the blocking native call runs on a background worker and the converted
// samples are handed to a callback on a single dispatch goroutine. The
// native device handle is shared between the wrapper and any in-flight
// scans, so it stays alive past Close until the last user is done with it.
package sweep

import (
	"github.com/edaniels/golog"
	"go.uber.org/atomic"
	goutils "go.viam.com/utils"

	"go.viam.com/sweep/libsweep"
	"go.viam.com/sweep/usb"
)

// Default serial settings for the device, used when a description carries
// no explicit ones.
const (
	DefaultBaudRate  = 115200
	DefaultTimeoutMs = 2000
)

func init() {
	RegisterType(TypeSweep, TypeRegistration{
		USBInfo: &usb.Identifier{Vendor: 0x0403, Product: 0x6015}, // FTDI FT230X
		New: func(desc Description, logger golog.Logger) (*Sweep, error) {
			if desc.Path == "" {
				return New(logger)
			}
			return NewSerial(logger, desc.Path, DefaultBaudRate, DefaultTimeoutMs)
		},
	})
}

// A ScanCallback receives the outcome of one Scan call. Exactly one of err
// and measurements is set.
type ScanCallback func(err error, measurements Measurements)

// A Sweep is an open connection to one scanner.
type Sweep struct {
	logger      golog.Logger
	handle      *handle
	closed      *atomic.Bool
	completions chan completion
}

type completion struct {
	callback     ScanCallback
	measurements Measurements
	err          error
}

// New connects to the first device the driver auto-detects.
func New(logger golog.Logger) (*Sweep, error) {
	return NewFromDriver(libsweep.New(), logger)
}

// NewFromDriver is like New but opens the device through an explicit
// driver.
func NewFromDriver(drv libsweep.Driver, logger golog.Logger) (*Sweep, error) {
	dev, nerr := drv.ConstructSimple()
	if nerr != nil {
		return nil, &ConstructionError{Err: takeError("construct", nerr)}
	}
	return newSweep(dev, logger), nil
}

// NewSerial connects to the device on the given serial port.
func NewSerial(logger golog.Logger, port string, baudRate, timeoutMs int) (*Sweep, error) {
	return NewSerialFromDriver(libsweep.New(), logger, port, baudRate, timeoutMs)
}

// NewSerialFromDriver is like NewSerial but opens the device through an
// explicit driver.
func NewSerialFromDriver(
	drv libsweep.Driver,
	logger golog.Logger,
	port string,
	baudRate, timeoutMs int,
) (*Sweep, error) {
	if port == "" {
		return nil, newArgumentError("port must be non-empty")
	}
	if baudRate <= 0 {
		return nil, newArgumentError("baud rate must be positive; got %d", baudRate)
	}
	if timeoutMs < 0 {
		return nil, newArgumentError("timeout must be non-negative; got %dms", timeoutMs)
	}
	dev, nerr := drv.Construct(port, baudRate, timeoutMs)
	if nerr != nil {
		return nil, &ConstructionError{Err: takeError("construct", nerr)}
	}
	return newSweep(dev, logger), nil
}

func newSweep(dev libsweep.Device, logger golog.Logger) *Sweep {
	s := &Sweep{
		logger:      logger,
		closed:      atomic.NewBool(false),
		completions: make(chan completion),
	}
	s.handle = newHandle(dev, func() { close(s.completions) })
	goutils.PanicCapturingGo(s.dispatch)
	return s
}

// dispatch delivers scan completions one at a time, in completion order. It
// exits once the handle's last reference is gone and all pending
// completions have been handed out.
func (s *Sweep) dispatch() {
	for c := range s.completions {
		c.callback(c.err, c.measurements)
	}
}

// ref takes a reference on the device for the duration of one operation,
// reporting whether the device is still usable.
func (s *Sweep) ref() bool {
	if s.closed.Load() {
		return false
	}
	return s.handle.acquire()
}

// StartScanning tells the device to spin up and begin producing scans.
func (s *Sweep) StartScanning() error {
	if !s.ref() {
		return ErrClosed
	}
	defer s.handle.release()
	return takeError("start scanning", s.handle.dev.StartScanning())
}

// StopScanning tells the device to stop producing scans.
func (s *Sweep) StopScanning() error {
	if !s.ref() {
		return ErrClosed
	}
	defer s.handle.release()
	return takeError("stop scanning", s.handle.dev.StopScanning())
}

// MotorSpeed returns the motor's rotation speed in Hz.
func (s *Sweep) MotorSpeed() (int, error) {
	if !s.ref() {
		return 0, ErrClosed
	}
	defer s.handle.release()
	speed, nerr := s.handle.dev.MotorSpeed()
	if nerr != nil {
		return 0, takeError("get motor speed", nerr)
	}
	return speed, nil
}

// SetMotorSpeed changes the motor's rotation speed, in Hz.
func (s *Sweep) SetMotorSpeed(speedHz int) error {
	if speedHz < 0 {
		return newArgumentError("motor speed must be non-negative; got %dHz", speedHz)
	}
	if !s.ref() {
		return ErrClosed
	}
	defer s.handle.release()
	return takeError("set motor speed", s.handle.dev.SetMotorSpeed(speedHz))
}

// SampleRate returns the device's sample rate in samples per second.
func (s *Sweep) SampleRate() (int, error) {
	if !s.ref() {
		return 0, ErrClosed
	}
	defer s.handle.release()
	rate, nerr := s.handle.dev.SampleRate()
	if nerr != nil {
		return 0, takeError("get sample rate", nerr)
	}
	return rate, nil
}

// Reset restores the device to its power-on state.
func (s *Sweep) Reset() error {
	if !s.ref() {
		return ErrClosed
	}
	defer s.handle.release()
	return takeError("reset", s.handle.dev.Reset())
}

// Scan fetches one full rotation of samples. The blocking driver call runs
// in the background and the callback is invoked exactly once with either
// the samples, in the driver's own order, or the driver's error. Argument
// problems are reported synchronously and no scan is attempted.
//
// Overlapping scans are not serialized against each other or against other
// commands; the native driver arbitrates concurrent use of the device. The
// timeout is handed straight to the driver and not enforced here.
func (s *Sweep) Scan(timeoutMs int, callback ScanCallback) error {
	if callback == nil {
		return newArgumentError("scan callback must be non-nil")
	}
	if timeoutMs < 0 {
		return newArgumentError("scan timeout must be non-negative; got %dms", timeoutMs)
	}
	if !s.ref() {
		return ErrClosed
	}
	goutils.PanicCapturingGo(func() {
		defer s.handle.release()

		scan, nerr := s.handle.dev.GetScan(timeoutMs)
		if nerr != nil {
			err := takeError("get scan", nerr)
			s.logger.Debugw("scan failed", "error", err)
			s.completions <- completion{callback: callback, err: err}
			return
		}
		s.completions <- completion{callback: callback, measurements: measurementsFromScan(scan)}
	})
	return nil
}

// measurementsFromScan converts a native scan into measurements, preserving
// the driver's ordering and count, and destructs the native scan.
func measurementsFromScan(scan libsweep.Scan) Measurements {
	defer scan.Destruct()
	n := scan.NumberOfSamples()
	ms := make(Measurements, 0, n)
	for i := 0; i < n; i++ {
		angleDeg := float64(scan.AngleMilliDeg(i)) / 1000
		ms = append(ms, NewMeasurement(angleDeg, float64(scan.Distance(i))))
	}
	return ms
}

// Close releases this wrapper's reference to the native device. In-flight
// scans hold their own references and still complete and deliver their
// callbacks; the native device is destructed once the last reference is
// gone. Close never waits for that to happen.
func (s *Sweep) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	s.handle.release()
	return nil
}

// A handle owns the native device and counts its users so the device is
// destructed exactly once, only after its last user is done.
type handle struct {
	dev     libsweep.Device
	refs    *atomic.Int32
	onFinal func()
}

func newHandle(dev libsweep.Device, onFinal func()) *handle {
	return &handle{dev: dev, refs: atomic.NewInt32(1), onFinal: onFinal}
}

// acquire takes a new reference, reporting whether the device is still
// alive to be used.
func (h *handle) acquire() bool {
	for {
		refs := h.refs.Load()
		if refs <= 0 {
			return false
		}
		if h.refs.CompareAndSwap(refs, refs+1) {
			return true
		}
	}
}

// release drops a reference, destructing the native device when the last
// one is gone.
func (h *handle) release() {
	if h.refs.Dec() == 0 {
		h.dev.Destruct()
		if h.onFinal != nil {
			h.onFinal()
		}
	}
}
