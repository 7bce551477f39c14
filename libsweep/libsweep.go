// Package libsweep provides low-level access to the Scanse Sweep scanner's
// native driver library.
//
// The interfaces mirror the C API of libsweep one to one. Failures follow
// the library's out-parameter convention: a non-nil Error means the call
// failed, its Message must be read before the object is destructed, and
// Destruct must be called exactly once on every failure path. Callers
// almost always want the sweep package instead, which folds this convention
// into ordinary Go errors.
package libsweep

// A Driver opens scanning devices.
type Driver interface {
	// ConstructSimple opens the first auto-detected device.
	ConstructSimple() (Device, Error)

	// Construct opens the device on an explicit serial port.
	Construct(port string, baudRate, timeoutMs int) (Device, Error)
}

// A Device is an open connection to one scanner. It is not usable after
// Destruct.
type Device interface {
	StartScanning() Error
	StopScanning() Error

	// GetScan blocks until a full rotation of samples is available or the
	// given timeout elapses.
	GetScan(timeoutMs int) (Scan, Error)

	// MotorSpeed returns the motor's rotation speed in Hz.
	MotorSpeed() (int, Error)
	SetMotorSpeed(speedHz int) Error

	// SampleRate returns the device's sample rate in samples per second.
	SampleRate() (int, Error)

	// Reset restores the device to its power-on state.
	Reset() Error

	// Destruct releases the native device.
	Destruct()
}

// A Scan is one full rotation's worth of samples. It is not usable after
// Destruct.
type Scan interface {
	NumberOfSamples() int

	// AngleMilliDeg returns the angle of sample i in milli-degrees.
	AngleMilliDeg(i int) int

	// Distance returns the distance of sample i in centimeters.
	Distance(i int) int

	// Destruct releases the native scan.
	Destruct()
}

// An Error is a failure reported by the native library.
type Error interface {
	Message() string
	Destruct()
}
