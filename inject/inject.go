// Package inject provides injectable mocks of the native driver surface
// for use in tests.
package inject

import "go.viam.com/sweep/libsweep"

// Driver is an injectable libsweep.Driver.
type Driver struct {
	libsweep.Driver
	ConstructSimpleFunc func() (libsweep.Device, libsweep.Error)
	ConstructFunc       func(port string, baudRate, timeoutMs int) (libsweep.Device, libsweep.Error)
}

// ConstructSimple calls the injected ConstructSimple or the real version.
func (d *Driver) ConstructSimple() (libsweep.Device, libsweep.Error) {
	if d.ConstructSimpleFunc == nil {
		return d.Driver.ConstructSimple()
	}
	return d.ConstructSimpleFunc()
}

// Construct calls the injected Construct or the real version.
func (d *Driver) Construct(port string, baudRate, timeoutMs int) (libsweep.Device, libsweep.Error) {
	if d.ConstructFunc == nil {
		return d.Driver.Construct(port, baudRate, timeoutMs)
	}
	return d.ConstructFunc(port, baudRate, timeoutMs)
}

// Device is an injectable libsweep.Device.
type Device struct {
	libsweep.Device
	StartScanningFunc func() libsweep.Error
	StopScanningFunc  func() libsweep.Error
	GetScanFunc       func(timeoutMs int) (libsweep.Scan, libsweep.Error)
	MotorSpeedFunc    func() (int, libsweep.Error)
	SetMotorSpeedFunc func(speedHz int) libsweep.Error
	SampleRateFunc    func() (int, libsweep.Error)
	ResetFunc         func() libsweep.Error
	DestructFunc      func()
}

// StartScanning calls the injected StartScanning or the real version.
func (d *Device) StartScanning() libsweep.Error {
	if d.StartScanningFunc == nil {
		return d.Device.StartScanning()
	}
	return d.StartScanningFunc()
}

// StopScanning calls the injected StopScanning or the real version.
func (d *Device) StopScanning() libsweep.Error {
	if d.StopScanningFunc == nil {
		return d.Device.StopScanning()
	}
	return d.StopScanningFunc()
}

// GetScan calls the injected GetScan or the real version.
func (d *Device) GetScan(timeoutMs int) (libsweep.Scan, libsweep.Error) {
	if d.GetScanFunc == nil {
		return d.Device.GetScan(timeoutMs)
	}
	return d.GetScanFunc(timeoutMs)
}

// MotorSpeed calls the injected MotorSpeed or the real version.
func (d *Device) MotorSpeed() (int, libsweep.Error) {
	if d.MotorSpeedFunc == nil {
		return d.Device.MotorSpeed()
	}
	return d.MotorSpeedFunc()
}

// SetMotorSpeed calls the injected SetMotorSpeed or the real version.
func (d *Device) SetMotorSpeed(speedHz int) libsweep.Error {
	if d.SetMotorSpeedFunc == nil {
		return d.Device.SetMotorSpeed(speedHz)
	}
	return d.SetMotorSpeedFunc(speedHz)
}

// SampleRate calls the injected SampleRate or the real version.
func (d *Device) SampleRate() (int, libsweep.Error) {
	if d.SampleRateFunc == nil {
		return d.Device.SampleRate()
	}
	return d.SampleRateFunc()
}

// Reset calls the injected Reset or the real version.
func (d *Device) Reset() libsweep.Error {
	if d.ResetFunc == nil {
		return d.Device.Reset()
	}
	return d.ResetFunc()
}

// Destruct calls the injected Destruct or the real version.
func (d *Device) Destruct() {
	if d.DestructFunc == nil {
		d.Device.Destruct()
		return
	}
	d.DestructFunc()
}

// Scan is an injectable libsweep.Scan.
type Scan struct {
	libsweep.Scan
	NumberOfSamplesFunc func() int
	AngleMilliDegFunc   func(i int) int
	DistanceFunc        func(i int) int
	DestructFunc        func()
}

// NumberOfSamples calls the injected NumberOfSamples or the real version.
func (s *Scan) NumberOfSamples() int {
	if s.NumberOfSamplesFunc == nil {
		return s.Scan.NumberOfSamples()
	}
	return s.NumberOfSamplesFunc()
}

// AngleMilliDeg calls the injected AngleMilliDeg or the real version.
func (s *Scan) AngleMilliDeg(i int) int {
	if s.AngleMilliDegFunc == nil {
		return s.Scan.AngleMilliDeg(i)
	}
	return s.AngleMilliDegFunc(i)
}

// Distance calls the injected Distance or the real version.
func (s *Scan) Distance(i int) int {
	if s.DistanceFunc == nil {
		return s.Scan.Distance(i)
	}
	return s.DistanceFunc(i)
}

// Destruct calls the injected Destruct or the real version.
func (s *Scan) Destruct() {
	if s.DestructFunc == nil {
		s.Scan.Destruct()
		return
	}
	s.DestructFunc()
}

// Error is an injectable libsweep.Error.
type Error struct {
	libsweep.Error
	MessageFunc  func() string
	DestructFunc func()
}

// Message calls the injected Message or the real version.
func (e *Error) Message() string {
	if e.MessageFunc == nil {
		return e.Error.Message()
	}
	return e.MessageFunc()
}

// Destruct calls the injected Destruct or the real version.
func (e *Error) Destruct() {
	if e.DestructFunc == nil {
		e.Error.Destruct()
		return
	}
	e.DestructFunc()
}
